package gesture

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads a script. Everything after ';' is a comment; blank lines are
// skipped. Errors name the offending line.
func Parse(data []byte) (Script, error) {
	var result Script

	for i, line := range strings.Split(string(data), "\n") {
		lineNo := i + 1

		command, comment, _ := strings.Cut(line, ";")
		fields := strings.Fields(command)
		if len(fields) == 0 {
			continue
		}

		verb := Verb(strings.ToLower(fields[0]))
		n, known := arity[verb]
		if !known {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, fields[0], ErrUnknownVerb)
		}

		if len(fields)-1 != n {
			return nil, fmt.Errorf("line %d: %s takes %d arguments, got %d: %w", lineNo, verb, n, len(fields)-1, ErrBadArgument)
		}

		args := make([]float64, n)
		for j, field := range fields[1:] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				return nil, fmt.Errorf("line %d: %s: %q is not a number: %w", lineNo, verb, field, ErrBadArgument)
			}

			args[j] = value
		}

		result = append(result, Command{
			Verb:    verb,
			Args:    args,
			Comment: strings.TrimSpace(comment),
			Line:    lineNo,
		})
	}

	return result, nil
}
