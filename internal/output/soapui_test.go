package output

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/akshara-doc/SwaggerForge/internal/models"
)

// Decoding side of the project document. Unqualified tag names match on
// local name, so the con: prefix written by the exporter resolves away.
type suiProject struct {
	XMLName   xml.Name `xml:"soapui-project"`
	ID        string   `xml:"id,attr"`
	Name      string   `xml:"name,attr"`
	Interface struct {
		ID        string `xml:"id,attr"`
		Resources []struct {
			ID      string `xml:"id,attr"`
			Name    string `xml:"name,attr"`
			Path    string `xml:"path,attr"`
			Methods []struct {
				ID     string `xml:"id,attr"`
				Name   string `xml:"name,attr"`
				Method string `xml:"method,attr"`
			} `xml:"method"`
		} `xml:"resource"`
	} `xml:"interface"`
	TestSuite struct {
		ID    string `xml:"id,attr"`
		Name  string `xml:"name,attr"`
		Cases []struct {
			ID    string `xml:"id,attr"`
			Name  string `xml:"name,attr"`
			Steps []struct {
				Type    string `xml:"type,attr"`
				Request struct {
					ID         string `xml:"id,attr"`
					Method     string `xml:"method,attr"`
					Path       string `xml:"path,attr"`
					Assertions []struct {
						ID            string `xml:"id,attr"`
						Type          string `xml:"type,attr"`
						Configuration struct {
							Codes string `xml:"codes"`
							SLA   string `xml:"SLA"`
							Path  string `xml:"path"`
						} `xml:"configuration"`
					} `xml:"assertion"`
				} `xml:"config>restRequest"`
			} `xml:"testStep"`
		} `xml:"testCase"`
	} `xml:"testSuite"`
}

func TestExportSoapUIProjectStructure(t *testing.T) {
	ops := []models.Operation{
		{Path: "/pets", Method: "GET", Summary: "List pets"},
		{Path: "/pets", Method: "POST", Summary: "Create a pet"},
	}

	var buf bytes.Buffer
	if err := exportSoapUI(&buf, ops, Options{Title: "Pet Store"}); err != nil {
		t.Fatalf("exportSoapUI failed: %v", err)
	}

	var project suiProject
	if err := xml.Unmarshal(buf.Bytes(), &project); err != nil {
		t.Fatalf("project is not valid XML: %v", err)
	}

	if project.Name != "Pet Store" {
		t.Errorf("expected project name 'Pet Store', got %q", project.Name)
	}
	if len(project.Interface.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(project.Interface.Resources))
	}
	if len(project.TestSuite.Cases) != 2 {
		t.Fatalf("expected 2 test cases, got %d", len(project.TestSuite.Cases))
	}

	r := project.Interface.Resources[1]
	if r.Path != "/pets" || len(r.Methods) != 1 || r.Methods[0].Method != "POST" {
		t.Errorf("unexpected second resource: %+v", r)
	}

	tc := project.TestSuite.Cases[0]
	if tc.Name != "GET /pets" {
		t.Errorf("expected test case 'GET /pets', got %q", tc.Name)
	}
	if len(tc.Steps) != 1 || tc.Steps[0].Type != "restrequest" {
		t.Fatalf("expected one restrequest step, got %+v", tc.Steps)
	}
	if tc.Steps[0].Request.Method != "GET" || tc.Steps[0].Request.Path != "/pets" {
		t.Errorf("unexpected step request: %+v", tc.Steps[0].Request)
	}
}

func TestExportSoapUIAssertions(t *testing.T) {
	ops := []models.Operation{{Path: "/pets", Method: "GET", Summary: "List pets"}}

	var buf bytes.Buffer
	if err := exportSoapUI(&buf, ops, Options{}); err != nil {
		t.Fatalf("exportSoapUI failed: %v", err)
	}

	var project suiProject
	if err := xml.Unmarshal(buf.Bytes(), &project); err != nil {
		t.Fatalf("project is not valid XML: %v", err)
	}

	assertions := project.TestSuite.Cases[0].Steps[0].Request.Assertions
	if len(assertions) != 3 {
		t.Fatalf("expected 3 assertions, got %d", len(assertions))
	}

	if assertions[0].Type != "Valid HTTP Status Codes" || assertions[0].Configuration.Codes != "200,201" {
		t.Errorf("unexpected status assertion: %+v", assertions[0])
	}
	if assertions[1].Type != "Response SLA Assertion" || assertions[1].Configuration.SLA != "1000" {
		t.Errorf("unexpected SLA assertion: %+v", assertions[1])
	}
	if assertions[2].Type != "JsonPath Match" || assertions[2].Configuration.Path != "$" {
		t.Errorf("unexpected JsonPath assertion: %+v", assertions[2])
	}
}

func TestExportSoapUIIdentifiersAreUnique(t *testing.T) {
	ops := []models.Operation{
		{Path: "/pets", Method: "GET", Summary: "List pets"},
		{Path: "/orders", Method: "GET", Summary: "List orders"},
	}

	var buf bytes.Buffer
	if err := exportSoapUI(&buf, ops, Options{}); err != nil {
		t.Fatalf("exportSoapUI failed: %v", err)
	}

	var project suiProject
	if err := xml.Unmarshal(buf.Bytes(), &project); err != nil {
		t.Fatalf("project is not valid XML: %v", err)
	}

	seen := map[string]bool{}
	record := func(id string) {
		if id == "" {
			t.Error("expected a non-empty id")
		}
		if seen[id] {
			t.Errorf("duplicate id %q", id)
		}
		seen[id] = true
	}

	record(project.ID)
	record(project.Interface.ID)
	record(project.TestSuite.ID)
	for _, r := range project.Interface.Resources {
		record(r.ID)
		for _, m := range r.Methods {
			record(m.ID)
		}
	}
	for _, c := range project.TestSuite.Cases {
		record(c.ID)
		for _, s := range c.Steps {
			record(s.Request.ID)
			for _, a := range s.Request.Assertions {
				record(a.ID)
			}
		}
	}
}
