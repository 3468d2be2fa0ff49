package models

import "gopkg.in/yaml.v3"

// Operation represents a single path+method entry extracted from an
// OpenAPI document, together with the schema fragments test generation
// needs. Schema fields are read-only views into the document tree.
type Operation struct {
	Path        string
	Method      string
	OperationID string
	Summary     string
	Tags        []string
	Parameters  []Parameter

	// RequestBody is the JSON request body schema, nil when the
	// operation declares none.
	RequestBody *yaml.Node

	// Responses maps a status code to the JSON response schema
	// declared for it. Codes without a JSON schema are absent.
	Responses map[string]*yaml.Node
}

// Parameter represents a single operation parameter
type Parameter struct {
	Name     string
	In       string
	Required bool
	Example  interface{}
}

// FirstRequiredParameter returns the name of the first required
// parameter and whether one exists.
func (o Operation) FirstRequiredParameter() (string, bool) {
	for _, p := range o.Parameters {
		if p.Required {
			return p.Name, true
		}
	}
	return "", false
}

// HasBodyMethod reports whether the operation's method is one that
// carries a request body (POST, PUT or PATCH).
func (o Operation) HasBodyMethod() bool {
	switch o.Method {
	case "POST", "PUT", "PATCH":
		return true
	}
	return false
}
