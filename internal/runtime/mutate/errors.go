package mutate

import "errors"

// Errors returned by mutation operations.
var (
	// ErrProtected indicates a mutation was attempted on a protected series.
	ErrProtected = errors.New("mutate: series is protected")

	// ErrInvalidSkip indicates a sort skip that is non-positive, larger than
	// the sorted length, or not a divisor of it.
	ErrInvalidSkip = errors.New("mutate: invalid skip size")

	// ErrBinaryWiden indicates a codepoint above 0xFF written into a binary
	// series, which is fixed at byte width.
	ErrBinaryWiden = errors.New("mutate: binary series cannot hold codepoint above 0xFF")

	// ErrBadSource indicates a source value that cannot be inserted into the
	// target.
	ErrBadSource = errors.New("mutate: unsupported source value")
)
