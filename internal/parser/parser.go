package parser

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pb33f/libopenapi"
	"gopkg.in/yaml.v3"
)

// Document is an immutable view over a parsed OpenAPI document. The raw
// node tree keeps the document's own key order, which operation
// extraction and sample generation rely on.
type Document struct {
	root     *yaml.Node
	specType string
	version  string
}

// ParseFile parses an OpenAPI document from a local file
func ParseFile(filePath string) (*Document, error) {
	specBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI file: %w", err)
	}

	return Parse(specBytes)
}

// ParseURL fetches an OpenAPI document over HTTP and parses it. The
// fetch happens exactly once, before any conversion work starts.
func ParseURL(specURL string, timeout time.Duration) (*Document, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(specURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch OpenAPI document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch OpenAPI document: unexpected status %s", resp.Status)
	}

	specBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	return Parse(specBytes)
}

// Parse validates raw document bytes and builds the traversable tree.
// libopenapi rejects input that is not an OpenAPI document at all; the
// node tree below it is what the converter actually walks, so reference
// resolution and key order stay under our control.
func Parse(specBytes []byte) (*Document, error) {
	document, err := libopenapi.NewDocument(specBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(specBytes, &root); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("OpenAPI document root is not an object")
	}

	d := &Document{root: node}
	if info := document.GetSpecInfo(); info != nil {
		d.specType = info.SpecType
		d.version = info.Version
	}

	return d, nil
}

// SpecType returns the detected document type (openapi or swagger)
func (d *Document) SpecType() string {
	return d.specType
}

// SpecVersion returns the declared specification version
func (d *Document) SpecVersion() string {
	return d.version
}

// Title returns the document's info.title, or an empty string
func (d *Document) Title() string {
	return StringValue(Lookup(Lookup(d.root, "info"), "title"))
}

// Root returns the document's root mapping node
func (d *Document) Root() *yaml.Node {
	return d.root
}

// Resolve interprets a reference pointer of the form #/a/b/c as a
// slash-delimited path from the document root. A missing or malformed
// pointer is not an error: it resolves to nil and downstream sample
// generation treats it as an empty object.
func (d *Document) Resolve(pointer string) *yaml.Node {
	if d == nil || !strings.HasPrefix(pointer, "#/") {
		return nil
	}

	node := d.root
	for _, segment := range strings.Split(strings.TrimPrefix(pointer, "#/"), "/") {
		node = Lookup(node, segment)
		if node == nil {
			return nil
		}
	}
	return node
}

// Lookup returns the value node stored under key in a mapping node.
// Returns nil for non-mapping nodes and absent keys.
func Lookup(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// StringValue returns the string value of a scalar node, or ""
func StringValue(node *yaml.Node) string {
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}
	return node.Value
}
