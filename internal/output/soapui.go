package output

import (
	"encoding/xml"
	"io"

	"github.com/akshara-doc/SwaggerForge/internal/models"
	"github.com/google/uuid"
)

const soapuiNamespace = "http://eviware.com/soapui/config"

// soapuiProject is the test-project document shape. Every id attribute
// is a random opaque token; uniqueness only matters within one exported
// document.
type soapuiProject struct {
	XMLName   xml.Name        `xml:"con:soapui-project"`
	Namespace string          `xml:"xmlns:con,attr"`
	ID        string          `xml:"id,attr"`
	Name      string          `xml:"name,attr"`
	Interface soapuiInterface `xml:"con:interface"`
	TestSuite soapuiTestSuite `xml:"con:testSuite"`
}

type soapuiInterface struct {
	ID        string           `xml:"id,attr"`
	Name      string           `xml:"name,attr"`
	Resources []soapuiResource `xml:"con:resource"`
}

type soapuiResource struct {
	ID      string         `xml:"id,attr"`
	Name    string         `xml:"name,attr"`
	Path    string         `xml:"path,attr"`
	Methods []soapuiMethod `xml:"con:method"`
}

type soapuiMethod struct {
	ID     string `xml:"id,attr"`
	Name   string `xml:"name,attr"`
	Method string `xml:"method,attr"`
}

type soapuiTestSuite struct {
	ID    string           `xml:"id,attr"`
	Name  string           `xml:"name,attr"`
	Cases []soapuiTestCase `xml:"con:testCase"`
}

type soapuiTestCase struct {
	ID    string           `xml:"id,attr"`
	Name  string           `xml:"name,attr"`
	Steps []soapuiTestStep `xml:"con:testStep"`
}

type soapuiTestStep struct {
	Type    string        `xml:"type,attr"`
	Name    string        `xml:"name,attr"`
	Request soapuiRequest `xml:"con:config>con:restRequest"`
}

type soapuiRequest struct {
	ID         string            `xml:"id,attr"`
	Method     string            `xml:"method,attr"`
	Path       string            `xml:"path,attr"`
	Assertions []soapuiAssertion `xml:"con:assertion"`
}

type soapuiAssertion struct {
	Type          string              `xml:"type,attr"`
	ID            string              `xml:"id,attr"`
	Configuration soapuiConfiguration `xml:"con:configuration"`
}

type soapuiConfiguration struct {
	Codes   string `xml:"codes,omitempty"`
	SLA     string `xml:"SLA,omitempty"`
	Path    string `xml:"path,omitempty"`
	Content string `xml:"content,omitempty"`
}

// exportSoapUI emits one resource/method pair and one test case with a
// single REST-request step per operation. Each step asserts valid
// status codes (200,201), a 1000ms response SLA, and a wildcard
// JsonPath match on the whole response.
func exportSoapUI(w io.Writer, operations []models.Operation, opts Options) error {
	project := soapuiProject{
		Namespace: soapuiNamespace,
		ID:        uuid.NewString(),
		Name:      artifactName(opts),
		Interface: soapuiInterface{ID: uuid.NewString(), Name: artifactName(opts)},
		TestSuite: soapuiTestSuite{ID: uuid.NewString(), Name: "TestSuite"},
	}

	for _, op := range operations {
		name := op.Method + " " + op.Path

		project.Interface.Resources = append(project.Interface.Resources, soapuiResource{
			ID:   uuid.NewString(),
			Name: op.Path,
			Path: op.Path,
			Methods: []soapuiMethod{{
				ID:     uuid.NewString(),
				Name:   name,
				Method: op.Method,
			}},
		})

		project.TestSuite.Cases = append(project.TestSuite.Cases, soapuiTestCase{
			ID:   uuid.NewString(),
			Name: name,
			Steps: []soapuiTestStep{{
				Type: "restrequest",
				Name: name,
				Request: soapuiRequest{
					ID:     uuid.NewString(),
					Method: op.Method,
					Path:   op.Path,
					Assertions: []soapuiAssertion{
						{
							Type:          "Valid HTTP Status Codes",
							ID:            uuid.NewString(),
							Configuration: soapuiConfiguration{Codes: "200,201"},
						},
						{
							Type:          "Response SLA Assertion",
							ID:            uuid.NewString(),
							Configuration: soapuiConfiguration{SLA: "1000"},
						},
						{
							Type:          "JsonPath Match",
							ID:            uuid.NewString(),
							Configuration: soapuiConfiguration{Path: "$", Content: "*"},
						},
					},
				},
			}},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(project)
}
