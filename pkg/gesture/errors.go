package gesture

import "errors"

var (
	ErrUnknownVerb = errors.New("unknown verb")
	ErrBadArgument = errors.New("bad argument")
	ErrNoSurface   = errors.New("pointer command before size")
)
