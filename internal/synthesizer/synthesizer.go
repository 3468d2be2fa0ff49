package synthesizer

import (
	"fmt"
	"strings"

	"github.com/akshara-doc/SwaggerForge/internal/generator"
	"github.com/akshara-doc/SwaggerForge/internal/models"
	"github.com/akshara-doc/SwaggerForge/internal/parser"
)

// MalformedBody is the literal, syntactically invalid JSON used as test
// data for the malformed-body scenario.
const MalformedBody = `{"malformed": `

// NoDataPlaceholder is the positive-scenario test data for operations
// that declare neither a JSON body schema nor any parameters.
const NoDataPlaceholder = "No request data required"

const authPrerequisite = "API server is reachable and a valid authentication token is available"

// Synthesizer derives test-case records from operation records using a
// fixed rule set. The scenario set, conditions and field phrasing are a
// contract: exports carry the text verbatim into human-facing documents.
type Synthesizer struct {
	gen *generator.Generator
}

// NewSynthesizer creates a synthesizer bound to one document
func NewSynthesizer(doc *parser.Document) *Synthesizer {
	return &Synthesizer{gen: generator.NewGenerator(doc)}
}

// Synthesize emits the scenario sequence for each operation, in
// extraction order. One counter is shared across the whole run, so
// identifiers are dense and strictly increasing from 1 regardless of
// operation boundaries.
func (s *Synthesizer) Synthesize(operations []models.Operation) []models.TestCase {
	var cases []models.TestCase
	id := 0

	emit := func(op models.Operation, scenario, steps, prerequisite, data, expected string) {
		id++
		cases = append(cases, models.TestCase{
			ID:             id,
			Endpoint:       op.Path,
			Method:         op.Method,
			Scenario:       scenario,
			Steps:          steps,
			Prerequisite:   prerequisite,
			TestData:       data,
			ExpectedResult: expected,
		})
	}

	for _, op := range operations {
		// 1. Positive: always emitted; POST expects 201, everything else 200.
		expected := "200 OK"
		if op.Method == "POST" {
			expected = "201 Created"
		}
		emit(op,
			fmt.Sprintf("Verify that %s %s returns success with a valid request", op.Method, op.Path),
			fmt.Sprintf("1. Prepare a valid request\n2. Send %s request to %s\n3. Verify the response status code", op.Method, op.Path),
			authPrerequisite,
			s.positiveData(op),
			expected)

		// 2. Unauthorized: always emitted.
		emit(op,
			fmt.Sprintf("Verify that %s %s rejects requests without authentication", op.Method, op.Path),
			fmt.Sprintf("1. Send %s request to %s without credentials\n2. Verify the response status code", op.Method, op.Path),
			"API server is reachable",
			"No authentication credentials",
			"401 Unauthorized")

		// 3. Missing mandatory parameter: only when a required parameter exists.
		if name, ok := op.FirstRequiredParameter(); ok {
			emit(op,
				fmt.Sprintf("Verify that %s %s fails when mandatory parameter '%s' is missing", op.Method, op.Path, name),
				fmt.Sprintf("1. Prepare a request omitting parameter '%s'\n2. Send %s request to %s\n3. Verify the response status code", name, op.Method, op.Path),
				authPrerequisite,
				fmt.Sprintf("Parameter '%s' omitted", name),
				"400 Bad Request")
		}

		// 4 and 5 only apply to methods that carry a request body.
		if op.HasBodyMethod() {
			emit(op,
				fmt.Sprintf("Verify that %s %s rejects an unsupported content type", op.Method, op.Path),
				fmt.Sprintf("1. Prepare a valid request with Content-Type text/plain\n2. Send %s request to %s\n3. Verify the response status code", op.Method, op.Path),
				authPrerequisite,
				"Content-Type: text/plain",
				"415 Unsupported Media Type")

			emit(op,
				fmt.Sprintf("Verify that %s %s rejects a malformed request body", op.Method, op.Path),
				fmt.Sprintf("1. Prepare a syntactically invalid JSON body\n2. Send %s request to %s\n3. Verify the response status code", op.Method, op.Path),
				authPrerequisite,
				MalformedBody,
				"400 Bad Request")
		}

		// 6. Invalid data types: always emitted.
		emit(op,
			fmt.Sprintf("Verify that %s %s rejects values of the wrong data type", op.Method, op.Path),
			fmt.Sprintf("1. Prepare a request with mismatched field data types\n2. Send %s request to %s\n3. Verify the response status code", op.Method, op.Path),
			authPrerequisite,
			"Field values with mismatched data types",
			"400 Bad Request or 422 Unprocessable Entity")
	}

	return cases
}

// positiveData renders the positive scenario's test data: a JSON sample
// when a JSON body schema is declared, a name=value listing of declared
// parameters otherwise, or a generic placeholder when neither exists.
func (s *Synthesizer) positiveData(op models.Operation) string {
	if op.RequestBody != nil {
		return s.gen.SampleJSON(op.RequestBody)
	}

	if len(op.Parameters) > 0 {
		pairs := make([]string, 0, len(op.Parameters))
		for _, p := range op.Parameters {
			value := "value"
			if p.Example != nil {
				value = fmt.Sprintf("%v", p.Example)
			}
			pairs = append(pairs, p.Name+"="+value)
		}
		return strings.Join(pairs, ", ")
	}

	return NoDataPlaceholder
}
