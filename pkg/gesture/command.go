// Package gesture reads and replays small line-based scripts of pointer and
// state commands, e.g.:
//
//	size 400 330
//	down 150 131 ; start on the wheel
//	move 232 131
//	up 232 131
//	gain 0.5
package gesture

import (
	"strconv"
	"strings"
)

// Verb names a command.
type Verb string

const (
	VerbSize       Verb = "size"
	VerbDown       Verb = "down"
	VerbMove       Verb = "move"
	VerbUp         Verb = "up"
	VerbBrightness Verb = "brightness"
	VerbGain       Verb = "gain"
	VerbSelect     Verb = "select"
)

// arity is the number of arguments each verb takes.
var arity = map[Verb]int{
	VerbSize:       2,
	VerbDown:       2,
	VerbMove:       2,
	VerbUp:         2,
	VerbBrightness: 1,
	VerbGain:       1,
	VerbSelect:     2,
}

// Command is one script line.
type Command struct {
	Verb    Verb
	Args    []float64
	Comment string
	// Line is the 1-based source line, 0 for commands built in code.
	Line int
}

// String formats c back into script syntax.
func (c *Command) String(comments bool) string {
	parts := []string{string(c.Verb)}
	for _, arg := range c.Args {
		parts = append(parts, strconv.FormatFloat(arg, 'g', -1, 64))
	}

	result := strings.Join(parts, " ")
	if c.Comment != "" && comments {
		result += " ; " + c.Comment
	}

	return result
}

// Script is a list of commands.
type Script []Command

// String formats the whole script, one command per line.
func (s Script) String() string {
	lines := make([]string, len(s))
	for i := range s {
		lines[i] = s[i].String(true)
	}

	return strings.Join(lines, "\n")
}
