package output

import (
	"io"

	"github.com/akshara-doc/SwaggerForge/internal/models"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Test Cases"

// excelHeader lists the ten test-case columns in their fixed order.
var excelHeader = []interface{}{
	"ID", "Endpoint", "Method", "Scenario", "Steps",
	"Prerequisite", "Test Data", "Expected Result", "Actual Result", "Status",
}

// exportExcel writes one row per test case, preserving emission order.
func exportExcel(w io.Writer, cases []models.TestCase) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetName, "A1", &excelHeader); err != nil {
		return err
	}

	for i, tc := range cases {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			tc.ID, tc.Endpoint, tc.Method, tc.Scenario, tc.Steps,
			tc.Prerequisite, tc.TestData, tc.ExpectedResult, tc.ActualResult, tc.Status,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
