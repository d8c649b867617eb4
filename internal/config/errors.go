package config

import (
	"errors"
)

// ErrInvalidConfig is returned when the decoded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")
