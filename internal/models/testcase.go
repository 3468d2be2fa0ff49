package models

// TestCase is one synthesized test scenario for a single operation.
// The ten fields map one-to-one onto the columns of the tabular export;
// ActualResult and Status stay empty and are filled in at execution
// time, outside this tool.
type TestCase struct {
	ID             int
	Endpoint       string
	Method         string
	Scenario       string
	Steps          string
	Prerequisite   string
	TestData       string
	ExpectedResult string
	ActualResult   string
	Status         string
}

// ConversionSummary holds the counts reported after a conversion run.
type ConversionSummary struct {
	Endpoints  int
	TestCases  int
	OutputFile string
}
