package source

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func makeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Translations"); err != nil {
		t.Fatalf("Unexpected error creating sheet (%v)", err)
	}

	rows := [][]interface{}{
		{"Program", "Document Name", "Status"},
		{"Legal", "Lease", "Pending"},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Unexpected error resolving cell name (%v)", err)
		}

		if err := f.SetSheetRow("Translations", cell, &row); err != nil {
			t.Fatalf("Unexpected error writing row (%v)", err)
		}
	}

	path := filepath.Join(t.TempDir(), "requests.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Unexpected error saving workbook (%v)", err)
	}

	return path
}

func TestWorkbookFetch(t *testing.T) {
	t.Parallel()

	expected := [][]interface{}{
		{"Program", "Document Name", "Status"},
		{"Legal", "Lease", "Pending"},
	}

	src := NewWorkbookSource(makeWorkbook(t))

	rows, err := src.Fetch(context.Background(), "Translations", "!A1:L")
	if err != nil {
		t.Fatalf("Unexpected error returned from Fetch (%v)", err)
	}

	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Incorrect rows\n   expected: %v\n   got:      %v", expected, rows)
	}
}

func TestWorkbookFetchWithMissingSheet(t *testing.T) {
	t.Parallel()

	src := NewWorkbookSource(makeWorkbook(t))

	if rows, err := src.Fetch(context.Background(), "Interpretation", "!A1:H"); err == nil {
		t.Errorf("Expected error for missing sheet, got %v", rows)
	}
}

func TestWorkbookFetchWithMissingFile(t *testing.T) {
	t.Parallel()

	src := NewWorkbookSource(filepath.Join(t.TempDir(), "missing.xlsx"))

	if rows, err := src.Fetch(context.Background(), "Translations", "!A1:L"); err == nil {
		t.Errorf("Expected error for missing workbook, got %v", rows)
	}
}
