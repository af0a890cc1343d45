package seq

import "errors"

// error kinds, test with errors.Is
var (
	// ErrInvalidArgument covers blank identifiers, empty data, characters
	// outside the alphabet, bad mutation characters and partial codons.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a mutation position falls outside the sequence.
	ErrOutOfRange = errors.New("position out of range")
)
