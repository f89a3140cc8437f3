package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WorkbookSource reads tables from a local .xlsx workbook. Used for offline
// runs and for rebuilding the feeds from an exported copy of the spreadsheet.
type WorkbookSource struct {
	path string
}

func NewWorkbookSource(path string) *WorkbookSource {
	return &WorkbookSource{
		path: path,
	}
}

// Fetch reads all rows from the named sheet. The range suffix is ignored -
// a workbook sheet is always read in full.
func (w *WorkbookSource) Fetch(ctx context.Context, table string, suffix string) ([][]interface{}, error) {
	file, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("unable to open workbook %s (%v)", w.path, err)
	}

	defer file.Close()

	rows, err := file.GetRows(table)
	if err != nil {
		return nil, fmt.Errorf("unable to read sheet '%s' from %s (%v)", table, w.path, err)
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}

		values[i] = cells
	}

	return values, nil
}
