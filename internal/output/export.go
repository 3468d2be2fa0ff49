package output

import (
	"fmt"
	"io"
	"os"

	"github.com/akshara-doc/SwaggerForge/internal/models"
	"gopkg.in/yaml.v3"
)

// Format represents the export format type
type Format string

const (
	FormatExcel   Format = "excel"
	FormatPostman Format = "postman"
	FormatSoapUI  Format = "soapui"
	FormatScript  Format = "script"
)

// Options carries caller-supplied settings shared by the exporters.
type Options struct {
	// Title names the exported artifact; empty falls back to a generic name.
	Title string

	// BaseURL is the fixed base URL the collection and script exports
	// issue requests against. No path parameters are substituted.
	BaseURL string

	// SampleBody renders a JSON sample for a request body schema. When
	// nil, collection requests carry no body.
	SampleBody func(schema *yaml.Node) string
}

// DefaultFilename returns the fixed output filename for a format
func DefaultFilename(format Format) string {
	switch format {
	case FormatPostman:
		return "postman-collection.json"
	case FormatSoapUI:
		return "soapui-project.xml"
	case FormatScript:
		return "api_tests.py"
	default:
		return "test-cases.xlsx"
	}
}

// Export serializes one conversion run into the specified format
func Export(format Format, filePath string, operations []models.Operation, cases []models.TestCase, opts Options) error {
	w, closer, err := getWriter(filePath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	switch format {
	case FormatExcel:
		return exportExcel(w, cases)
	case FormatPostman:
		return exportPostman(w, operations, opts)
	case FormatSoapUI:
		return exportSoapUI(w, operations, opts)
	case FormatScript:
		return exportScript(w, operations, opts)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// getWriter returns an io.Writer for output (stdout or file)
func getWriter(filePath string) (io.Writer, io.Closer, error) {
	if filePath == "" {
		return os.Stdout, nil, nil
	}

	f, err := os.Create(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f, nil
}

// ParseFormat parses a string into a Format, returning error if invalid
func ParseFormat(s string) (Format, error) {
	switch s {
	case "excel":
		return FormatExcel, nil
	case "postman":
		return FormatPostman, nil
	case "soapui":
		return FormatSoapUI, nil
	case "script":
		return FormatScript, nil
	default:
		return "", fmt.Errorf("invalid format '%s': must be one of 'excel', 'postman', 'soapui', 'script'", s)
	}
}

func artifactName(opts Options) string {
	if opts.Title != "" {
		return opts.Title
	}
	return "API Collection"
}
