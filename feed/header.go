package feed

// ResolveHeaders builds a lookup from normalised, lowercased header text to
// zero-based column index. If two columns normalise to the same key the later
// column wins - field lookups rely on per-field synonym priority, never on
// index insertion order.
func ResolveHeaders(headerRow []interface{}) map[string]int {
	index := map[string]int{}

	for i, v := range headerRow {
		k := normalise(v)
		if k == "" {
			continue
		}

		index[k] = i
	}

	return index
}
