package feed

import (
	"context"

	"sheetfeed/source"
)

type probeOutcome int

const (
	probeFound probeOutcome = iota
	probeEmpty
	probeFailed
)

type probe struct {
	outcome probeOutcome
	rows    [][]interface{}
	err     error
}

// table is the result of a successful locate - the raw rows plus the
// candidate name that actually matched.
type table struct {
	rows [][]interface{}
	name string
}

// locate probes each candidate tab name in order and returns the first that
// yields at least one row. A fetch failure (missing tab, permission error) is
// logged and treated the same as an empty tab: try the next candidate. All
// candidates exhausted is "no data available", not an error.
func locate(ctx context.Context, src source.Source, candidates []string, suffix string) (*table, bool) {
	for _, name := range candidates {
		switch p := fetch(ctx, src, name, suffix); p.outcome {
		case probeFound:
			debugf("located tab '%s' (%d rows)", name, len(p.rows))
			return &table{rows: p.rows, name: name}, true

		case probeEmpty:
			infof("tab '%s' has no data - trying next candidate", name)

		case probeFailed:
			warnf("unable to fetch tab '%s' (%v)", name, p.err)
		}
	}

	return nil, false
}

func fetch(ctx context.Context, src source.Source, name, suffix string) probe {
	rows, err := src.Fetch(ctx, name, suffix)
	if err != nil {
		return probe{outcome: probeFailed, err: err}
	}

	if len(rows) == 0 {
		return probe{outcome: probeEmpty}
	}

	return probe{outcome: probeFound, rows: rows}
}
