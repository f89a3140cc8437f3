package feed

// Field maps one output field to an ordered list of acceptable column
// headers, most-preferred first. Default is injected when no synonym yields a
// non-empty value.
type Field struct {
	Name     string
	Synonyms []string
	Default  string
}

// mapRow coalesces one sheet row into output field values. For each field the
// first synonym whose resolved cell is non-empty wins; a field with no usable
// column at all degrades to its default (usually "").
func mapRow(row []interface{}, index map[string]int, fields []Field) map[string]string {
	record := map[string]string{}

	for _, field := range fields {
		record[field.Name] = field.Default

		for _, synonym := range field.Synonyms {
			ix, ok := index[normalise(synonym)]
			if !ok || ix >= len(row) {
				continue
			}

			if v := Normalize(row[ix]); v != "" {
				record[field.Name] = v
				break
			}
		}
	}

	return record
}
