package generator

import (
	"encoding/json"
	"time"

	"github.com/akshara-doc/SwaggerForge/internal/parser"
	"github.com/pb33f/libopenapi/orderedmap"
	"gopkg.in/yaml.v3"
)

// ErrorPlaceholder is the value Sample degrades to when traversal hits
// an unexpected condition. Sample data is advisory and must never block
// an export.
const ErrorPlaceholder = "error generating sample data"

const (
	placeholderString = "test-string"
	exampleEmail      = "test@example.com"
	exampleUUID       = "123e4567-e89b-12d3-a456-426614174000"
	exampleURI        = "https://example.com"
)

// Generator synthesizes representative JSON values from schema nodes
type Generator struct {
	doc *parser.Document
}

// NewGenerator creates a generator bound to one document
func NewGenerator(doc *parser.Document) *Generator {
	return &Generator{doc: doc}
}

// Sample synthesizes a representative JSON value for a schema node.
// It never returns an error: a panic anywhere in the traversal is
// converted to ErrorPlaceholder.
func (g *Generator) Sample(schema *yaml.Node) (value interface{}) {
	defer func() {
		if r := recover(); r != nil {
			value = ErrorPlaceholder
		}
	}()
	// The in-flight set is scoped to this call tree so concurrent or
	// nested Sample calls cannot interfere with each other's cycle guard.
	return g.sample(schema, map[string]bool{})
}

// SampleJSON renders a synthesized sample as indented JSON text
func (g *Generator) SampleJSON(schema *yaml.Node) string {
	data, err := json.MarshalIndent(g.Sample(schema), "", "  ")
	if err != nil {
		return ErrorPlaceholder
	}
	return string(data)
}

func (g *Generator) sample(schema *yaml.Node, inFlight map[string]bool) interface{} {
	if schema == nil || schema.Kind != yaml.MappingNode {
		return nil
	}

	// 1. Reference. A pointer already being resolved on this call path
	// yields an empty object instead of recursing; the pointer is
	// released on return so sibling branches may still resolve it.
	if ref := parser.Lookup(schema, "$ref"); ref != nil {
		pointer := ref.Value
		if inFlight[pointer] {
			return orderedmap.New[string, interface{}]()
		}
		inFlight[pointer] = true
		defer delete(inFlight, pointer)

		target := g.doc.Resolve(pointer)
		if target == nil {
			return orderedmap.New[string, interface{}]()
		}
		return g.sample(target, inFlight)
	}

	// 2. allOf: members synthesized independently, shallow-merged left
	// to right with later keys overwriting; non-object members dropped.
	if members := parser.Lookup(schema, "allOf"); members != nil && members.Kind == yaml.SequenceNode {
		merged := orderedmap.New[string, interface{}]()
		for _, member := range members.Content {
			obj, ok := g.sample(member, inFlight).(*orderedmap.Map[string, interface{}])
			if !ok {
				continue
			}
			for pair := obj.First(); pair != nil; pair = pair.Next() {
				merged.Set(pair.Key(), pair.Value())
			}
		}
		return merged
	}

	// 3. oneOf/anyOf: first member only, deliberately.
	for _, keyword := range []string{"oneOf", "anyOf"} {
		if members := parser.Lookup(schema, keyword); members != nil &&
			members.Kind == yaml.SequenceNode && len(members.Content) > 0 {
			return g.sample(members.Content[0], inFlight)
		}
	}

	schemaType := parser.StringValue(parser.Lookup(schema, "type"))
	properties := parser.Lookup(schema, "properties")

	// 4. Object: every declared property, in declaration order.
	if schemaType == "object" || (schemaType == "" && properties != nil) {
		obj := orderedmap.New[string, interface{}]()
		if properties != nil && properties.Kind == yaml.MappingNode {
			for i := 0; i+1 < len(properties.Content); i += 2 {
				obj.Set(properties.Content[i].Value, g.sample(properties.Content[i+1], inFlight))
			}
		}
		return obj
	}

	// 5. Array: a one-element sequence of the item sample.
	if schemaType == "array" {
		if items := parser.Lookup(schema, "items"); items != nil {
			return []interface{}{g.sample(items, inFlight)}
		}
	}

	// 6. Explicit example or default, verbatim.
	for _, keyword := range []string{"example", "default"} {
		if node := parser.Lookup(schema, keyword); node != nil {
			var v interface{}
			if err := node.Decode(&v); err == nil {
				return v
			}
		}
	}

	// 7. Primitive dispatch.
	switch schemaType {
	case "string":
		return g.sampleString(schema)
	case "number", "integer":
		return 0
	case "boolean":
		return true
	}

	return nil
}

// sampleString picks a format-specific sentinel, then the first enum
// value, then a fixed placeholder.
func (g *Generator) sampleString(schema *yaml.Node) string {
	switch parser.StringValue(parser.Lookup(schema, "format")) {
	case "date-time":
		return time.Now().Format(time.RFC3339)
	case "date":
		return time.Now().Format("2006-01-02")
	case "email":
		return exampleEmail
	case "uuid":
		return exampleUUID
	case "uri":
		return exampleURI
	}

	if enum := parser.Lookup(schema, "enum"); enum != nil &&
		enum.Kind == yaml.SequenceNode && len(enum.Content) > 0 {
		return enum.Content[0].Value
	}

	return placeholderString
}
