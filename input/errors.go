package input

import "errors"

var (
	// ErrNoRows indicates the input contained no non-blank line.
	ErrNoRows = errors.New("input: no rows")
	// ErrRowLength indicates row i does not hold exactly i values.
	ErrRowLength = errors.New("input: row i must have exactly i values")
	// ErrBadNumber indicates a token that is not a base-10 integer.
	ErrBadNumber = errors.New("input: not an integer")
	// ErrOpenFile indicates the input file could not be opened.
	ErrOpenFile = errors.New("input: can not open input file")
	// ErrBadLevelCount indicates an interactive level count below 1.
	ErrBadLevelCount = errors.New("input: level count must be at least 1")
	// ErrUnexpectedEOF indicates the interactive stream ended before all values were read.
	ErrUnexpectedEOF = errors.New("input: unexpected end of input")
)
