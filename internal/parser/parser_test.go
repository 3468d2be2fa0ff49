package parser

import (
	"testing"
)

const petstoreDoc = `openapi: 3.0.0
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets:
    get:
      summary: List pets
      tags:
        - pets
      parameters:
        - name: limit
          in: query
          required: true
          example: 10
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
    post:
      summary: Create a pet
      tags:
        - pets
      requestBody:
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Pet"
      responses:
        "201":
          description: created
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
    get:
      operationId: getPetById
      responses:
        "200":
          description: ok
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
        age:
          type: integer
`

func mustParse(t *testing.T, doc string) *Document {
	t.Helper()
	d, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return d
}

func TestParseRejectsNonOpenAPIInput(t *testing.T) {
	inputs := []string{
		"",
		"just a plain string",
		"name: something\nvalue: 42\n",
	}
	for _, input := range inputs {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("Parse(%q) expected an error, got none", input)
		}
	}
}

func TestParseDetectsSpecInfo(t *testing.T) {
	d := mustParse(t, petstoreDoc)

	if d.SpecType() == "" {
		t.Error("expected a detected spec type, got empty string")
	}
	if d.SpecVersion() != "3.0.0" {
		t.Errorf("expected version 3.0.0, got %q", d.SpecVersion())
	}
	if d.Title() != "Pet Store" {
		t.Errorf("expected title 'Pet Store', got %q", d.Title())
	}
}

func TestResolve(t *testing.T) {
	d := mustParse(t, petstoreDoc)

	pet := d.Resolve("#/components/schemas/Pet")
	if pet == nil {
		t.Fatal("expected Pet schema to resolve")
	}
	if StringValue(Lookup(pet, "type")) != "object" {
		t.Errorf("expected resolved Pet to have type object")
	}

	if d.Resolve("#/components/schemas/Missing") != nil {
		t.Error("expected missing pointer to resolve to nil")
	}
	if d.Resolve("components/schemas/Pet") != nil {
		t.Error("expected pointer without #/ prefix to resolve to nil")
	}
	if d.Resolve("#/") != nil {
		t.Error("expected empty pointer path to resolve to nil")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	d := mustParse(t, petstoreDoc)

	first := d.Resolve("#/components/schemas/Pet")
	second := d.Resolve("#/components/schemas/Pet")
	if first == nil || first != second {
		t.Error("expected repeated resolution to return the same node")
	}
}

func TestLookupAndStringValue(t *testing.T) {
	d := mustParse(t, petstoreDoc)

	info := Lookup(d.Root(), "info")
	if info == nil {
		t.Fatal("expected info node")
	}
	if StringValue(Lookup(info, "title")) != "Pet Store" {
		t.Error("expected Lookup to find the title scalar")
	}
	if Lookup(info, "absent") != nil {
		t.Error("expected absent key to return nil")
	}
	if StringValue(info) != "" {
		t.Error("expected StringValue of a mapping to be empty")
	}
	if Lookup(nil, "key") != nil {
		t.Error("expected Lookup on nil node to return nil")
	}
}
