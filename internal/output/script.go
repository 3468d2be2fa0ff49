package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/akshara-doc/SwaggerForge/internal/models"
)

// scriptTemplate renders one pytest-style function per operation. Each
// function issues the operation's method against the fixed base URL,
// with no path parameters substituted.
const scriptTemplate = `# Generated tests for {{ .Title }}
import requests

BASE_URL = "{{ .BaseURL }}"

{{ range .Tests }}
def test_{{ .Name }}():
    response = requests.{{ .Method | lower }}(BASE_URL + "{{ .Path }}")
    assert response.status_code in [200, 201]

{{ end }}`

type scriptTest struct {
	Name   string
	Method string
	Path   string
}

func exportScript(w io.Writer, operations []models.Operation, opts Options) error {
	tests := make([]scriptTest, 0, len(operations))
	for i, op := range operations {
		name := sanitizeTestName(op.Summary)
		if name == "" {
			name = fmt.Sprintf("endpoint_%d", i+1)
		}
		tests = append(tests, scriptTest{Name: name, Method: op.Method, Path: op.Path})
	}

	tmpl, err := template.New("script").Funcs(sprig.TxtFuncMap()).Parse(scriptTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse script template: %w", err)
	}

	data := struct {
		Title   string
		BaseURL string
		Tests   []scriptTest
	}{
		Title:   artifactName(opts),
		BaseURL: opts.BaseURL,
		Tests:   tests,
	}

	return tmpl.Execute(w, data)
}

// sanitizeTestName lowercases the summary and maps every
// non-alphanumeric rune to an underscore. Returns "" when nothing
// identifier-safe survives, so callers can fall back to an index-based
// name.
func sanitizeTestName(summary string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(summary) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if strings.Trim(b.String(), "_") == "" {
		return ""
	}
	return b.String()
}
