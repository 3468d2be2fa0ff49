package parser

import (
	"strings"

	"github.com/akshara-doc/SwaggerForge/internal/models"
	"gopkg.in/yaml.v3"
)

// httpMethods are the path-item keys treated as operations. Iteration
// order still follows the document, not this table.
var httpMethods = map[string]bool{
	"get":     true,
	"post":    true,
	"put":     true,
	"patch":   true,
	"delete":  true,
	"head":    true,
	"options": true,
	"trace":   true,
}

// Operations flattens the document's paths tree into a uniform list of
// operation records. Paths iterate in the document's own key order,
// then each path item's method keys in their own order; method names
// are normalized to uppercase. A path item that is not a mapping is
// skipped rather than failing the whole run.
func (d *Document) Operations() []models.Operation {
	var operations []models.Operation

	paths := Lookup(d.root, "paths")
	if paths == nil || paths.Kind != yaml.MappingNode {
		return operations
	}

	for i := 0; i+1 < len(paths.Content); i += 2 {
		path := paths.Content[i].Value
		item := paths.Content[i+1]
		if item == nil || item.Kind != yaml.MappingNode {
			continue
		}

		// Path-item level parameters apply to every operation below it
		sharedParams, sharedBody := d.parseParameters(Lookup(item, "parameters"))

		for j := 0; j+1 < len(item.Content); j += 2 {
			key := strings.ToLower(item.Content[j].Value)
			if !httpMethods[key] {
				continue
			}
			opNode := item.Content[j+1]
			if opNode == nil || opNode.Kind != yaml.MappingNode {
				continue
			}
			operations = append(operations,
				d.buildOperation(path, strings.ToUpper(key), opNode, sharedParams, sharedBody))
		}
	}

	return operations
}

func (d *Document) buildOperation(path, method string, opNode *yaml.Node,
	sharedParams []models.Parameter, sharedBody *yaml.Node) models.Operation {

	op := models.Operation{
		Path:        path,
		Method:      method,
		OperationID: StringValue(Lookup(opNode, "operationId")),
		Summary:     StringValue(Lookup(opNode, "summary")),
		Tags:        []string{},
		Parameters:  append([]models.Parameter{}, sharedParams...),
	}

	if op.Summary == "" {
		op.Summary = StringValue(Lookup(opNode, "description"))
	}
	if op.Summary == "" {
		op.Summary = method + " " + path
	}

	if tags := Lookup(opNode, "tags"); tags != nil && tags.Kind == yaml.SequenceNode {
		for _, t := range tags.Content {
			if t.Kind == yaml.ScalarNode {
				op.Tags = append(op.Tags, t.Value)
			}
		}
	}

	params, bodySchema := d.parseParameters(Lookup(opNode, "parameters"))
	op.Parameters = append(op.Parameters, params...)

	// An OpenAPI 3 requestBody wins over a Swagger 2 body parameter
	if schema := d.requestBodySchema(Lookup(opNode, "requestBody")); schema != nil {
		op.RequestBody = schema
	} else if bodySchema != nil {
		op.RequestBody = bodySchema
	} else if sharedBody != nil {
		op.RequestBody = sharedBody
	}

	op.Responses = d.responseSchemas(Lookup(opNode, "responses"))

	return op
}

// parseParameters converts a parameters sequence into parameter records.
// A Swagger 2 in: body parameter is split off as the request body schema
// instead of becoming a parameter record.
func (d *Document) parseParameters(node *yaml.Node) ([]models.Parameter, *yaml.Node) {
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil, nil
	}

	var params []models.Parameter
	var bodySchema *yaml.Node

	for _, p := range node.Content {
		if ref := Lookup(p, "$ref"); ref != nil {
			if resolved := d.Resolve(ref.Value); resolved != nil {
				p = resolved
			}
		}
		if p == nil || p.Kind != yaml.MappingNode {
			continue
		}

		if StringValue(Lookup(p, "in")) == "body" {
			if bodySchema == nil {
				bodySchema = Lookup(p, "schema")
			}
			continue
		}

		param := models.Parameter{
			Name: StringValue(Lookup(p, "name")),
			In:   StringValue(Lookup(p, "in")),
		}
		// YAML admits True/TRUE as boolean spellings; decode instead of
		// comparing the raw scalar.
		if req := Lookup(p, "required"); req != nil {
			_ = req.Decode(&param.Required)
		}
		if example := Lookup(p, "example"); example != nil {
			var v interface{}
			if err := example.Decode(&v); err == nil {
				param.Example = v
			}
		}
		params = append(params, param)
	}

	return params, bodySchema
}

// requestBodySchema extracts the schema of the first JSON media type
// from an OpenAPI 3 requestBody node. Non-JSON content types carry no
// synthesizable test data and are ignored.
func (d *Document) requestBodySchema(node *yaml.Node) *yaml.Node {
	if node == nil {
		return nil
	}
	if ref := Lookup(node, "$ref"); ref != nil {
		node = d.Resolve(ref.Value)
	}
	return jsonSchemaOf(Lookup(node, "content"))
}

// responseSchemas collects the JSON schema declared per status code.
// OpenAPI 3 nests the schema under content; Swagger 2 inlines it.
func (d *Document) responseSchemas(node *yaml.Node) map[string]*yaml.Node {
	schemas := map[string]*yaml.Node{}
	if node == nil || node.Kind != yaml.MappingNode {
		return schemas
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		code := node.Content[i].Value
		resp := node.Content[i+1]
		if ref := Lookup(resp, "$ref"); ref != nil {
			resp = d.Resolve(ref.Value)
		}
		if resp == nil || resp.Kind != yaml.MappingNode {
			continue
		}

		schema := jsonSchemaOf(Lookup(resp, "content"))
		if schema == nil {
			schema = Lookup(resp, "schema")
		}
		if schema != nil {
			schemas[code] = schema
		}
	}

	return schemas
}

func jsonSchemaOf(content *yaml.Node) *yaml.Node {
	if content == nil || content.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(content.Content); i += 2 {
		if strings.Contains(content.Content[i].Value, "json") {
			return Lookup(content.Content[i+1], "schema")
		}
	}
	return nil
}
