package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/akshara-doc/SwaggerForge/internal/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const postmanSchema = "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"

// defaultGroup collects operations that carry no tags.
const defaultGroup = "General"

// postmanCollection is the subset of the Postman v2.1 collection format
// this export produces.
type postmanCollection struct {
	Info postmanInfo     `json:"info"`
	Item []postmanFolder `json:"item"`
}

type postmanInfo struct {
	PostmanID string `json:"_postman_id"`
	Name      string `json:"name"`
	Schema    string `json:"schema"`
}

type postmanFolder struct {
	Name string        `json:"name"`
	Item []postmanItem `json:"item"`
}

type postmanItem struct {
	Name    string         `json:"name"`
	Event   []postmanEvent `json:"event"`
	Request postmanRequest `json:"request"`
}

type postmanEvent struct {
	Listen string        `json:"listen"`
	Script postmanScript `json:"script"`
}

type postmanScript struct {
	Type string   `json:"type"`
	Exec []string `json:"exec"`
}

type postmanRequest struct {
	Method string       `json:"method"`
	Header []postmanKV  `json:"header"`
	URL    postmanURL   `json:"url"`
	Body   *postmanBody `json:"body,omitempty"`
}

type postmanKV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type postmanURL struct {
	Raw  string   `json:"raw"`
	Host []string `json:"host"`
	Path []string `json:"path"`
}

type postmanBody struct {
	Mode string `json:"mode"`
	Raw  string `json:"raw"`
}

// exportPostman groups operations by their first tag, keeping groups in
// first-appearance order and operations in extraction order.
func exportPostman(w io.Writer, operations []models.Operation, opts Options) error {
	collection := postmanCollection{
		Info: postmanInfo{
			PostmanID: uuid.NewString(),
			Name:      artifactName(opts),
			Schema:    postmanSchema,
		},
		Item: []postmanFolder{},
	}

	index := map[string]int{}
	for _, op := range operations {
		group := defaultGroup
		if len(op.Tags) > 0 {
			group = op.Tags[0]
		}
		pos, ok := index[group]
		if !ok {
			pos = len(collection.Item)
			index[group] = pos
			collection.Item = append(collection.Item, postmanFolder{Name: group})
		}
		collection.Item[pos].Item = append(collection.Item[pos].Item, buildPostmanItem(op, opts))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(collection)
}

func buildPostmanItem(op models.Operation, opts Options) postmanItem {
	item := postmanItem{
		Name: op.Summary,
		Event: []postmanEvent{{
			Listen: "test",
			Script: postmanScript{Type: "text/javascript", Exec: assertionScript(op)},
		}},
		Request: postmanRequest{
			Method: op.Method,
			Header: []postmanKV{{Key: "Content-Type", Value: "application/json"}},
			URL: postmanURL{
				Raw:  opts.BaseURL + op.Path,
				Host: []string{opts.BaseURL},
				Path: splitPath(op.Path),
			},
		},
	}

	if op.RequestBody != nil && opts.SampleBody != nil {
		item.Request.Body = &postmanBody{Mode: "raw", Raw: opts.SampleBody(op.RequestBody)}
	}

	return item
}

// assertionScript builds the per-request test script: status in
// {200,201}, response time below 800ms, JSON validity, and a
// conformance check embedding the declared schema literally when a
// success response carries one.
func assertionScript(op models.Operation) []string {
	lines := []string{
		`pm.test("Status code is 200 or 201", function () {`,
		`    pm.expect([200, 201]).to.include(pm.response.code);`,
		`});`,
		`pm.test("Response time is below 800ms", function () {`,
		`    pm.expect(pm.response.responseTime).to.be.below(800);`,
		`});`,
		`pm.test("Response is valid JSON", function () {`,
		`    pm.response.to.be.json;`,
		`});`,
	}

	if schema := successSchema(op); schema != nil {
		if text, err := schemaJSON(schema); err == nil {
			lines = append(lines,
				fmt.Sprintf("var schema = %s;", text),
				`pm.test("Response matches declared schema", function () {`,
				`    pm.expect(tv4.validate(pm.response.json(), schema)).to.be.true;`,
				`});`,
			)
		}
	}

	return lines
}

// successSchema returns the JSON schema declared for 200 or 201, if any
func successSchema(op models.Operation) *yaml.Node {
	for _, code := range []string{"200", "201"} {
		if schema, ok := op.Responses[code]; ok {
			return schema
		}
	}
	return nil
}

func schemaJSON(schema *yaml.Node) (string, error) {
	var v interface{}
	if err := schema.Decode(&v); err != nil {
		return "", err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
