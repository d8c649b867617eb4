// Package clipboard copies generated output to the system clipboard.
// Clipboard failure is non-fatal by contract: the caller reports it and
// continues, the generated value is still printed.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// ErrUnavailable is returned when no clipboard mechanism is usable on the
// host, for example a headless Linux box without xclip or xsel.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}

	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(ErrUnavailable, err.Error())
	}

	return nil
}
