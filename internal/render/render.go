// Package render fills a code-generation template with the generated string.
// Templates use text/template syntax; output is code or config, so no HTML
// escaping is applied.
package render

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
)

// ErrTemplate is returned for a missing or malformed template file. It is a
// user-facing error kind distinct from generator errors.
var ErrTemplate = errors.New("template error")

// Context carries the substitution values available inside a template.
type Context struct {
	// RandomString is the freshly generated string, referenced in templates
	// as {{.RandomString}}.
	RandomString string
}

// File renders the template at path with ctx and returns the result.
func File(path string, ctx Context) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", errors.Wrapf(ErrTemplate, "can not read template %s: %v", path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).Option("missingkey=error").ParseFiles(path)
	if err != nil {
		return "", errors.Wrapf(ErrTemplate, "can not parse template %s: %v", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", errors.Wrapf(ErrTemplate, "can not render template %s: %v", path, err)
	}

	return buf.String(), nil
}
