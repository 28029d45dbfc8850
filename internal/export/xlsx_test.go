// README: Export renderer tests (workbook round-trip through a buffer).
package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	columns := []string{"Registration", "Vehicle", "Hours"}
	rows := [][]any{
		{"10001", "Sedan", 26.0},
		{"10002", "Van", 1.5},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, "Completed Trips", columns, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("Completed Trips")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("row count = %d, want 3", len(got))
	}
	if got[0][0] != "Registration" || got[0][2] != "Hours" {
		t.Fatalf("header = %v", got[0])
	}
	if got[1][0] != "10001" || got[1][1] != "Sedan" {
		t.Fatalf("first row = %v", got[1])
	}
}

func TestWriteXLSXRejectsRaggedRows(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, "Sheet", []string{"A", "B"}, [][]any{{"only one"}})
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
}
