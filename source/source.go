// Package source provides the table fetchers that feed the dataset builder -
// the Google Sheets API for normal runs and a local workbook for offline runs.
package source

import (
	"context"
)

// Source retrieves the raw rows for a named table. The suffix is an A1-style
// cell range appended to the table name (e.g. "!A1:L"); implementations that
// have no notion of ranges may ignore it.
type Source interface {
	Fetch(ctx context.Context, table string, suffix string) ([][]interface{}, error)
}
