package preset

import "errors"

var (
	// ErrUnknownPreset is returned when no embedded preset has the given name.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset is returned by Validate.
	ErrInvalidPreset = errors.New("invalid preset")
)
