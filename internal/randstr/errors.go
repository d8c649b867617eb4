package randstr

import "errors"

var (
	// ErrInvalidLength is returned when the requested length is zero or negative.
	ErrInvalidLength = errors.New("length must be a positive integer")

	// ErrEmptyPool is returned when the character pool contains no characters.
	ErrEmptyPool = errors.New("character pool can not be empty")

	// ErrEntropyUnavailable is returned when the secure randomness source can
	// not be read. This is fatal and never retried.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrUnknownCharset is returned when a charset selector does not match any
	// of the named character sets.
	ErrUnknownCharset = errors.New("unknown charset selector")

	// ErrEmptyCustomChars is returned when the custom charset is selected
	// without providing any custom characters.
	ErrEmptyCustomChars = errors.New("custom charset requires a non-empty custom character set")
)
