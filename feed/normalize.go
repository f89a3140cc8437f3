package feed

import (
	"fmt"
	"regexp"
	"strings"
)

// Matches runs of whitespace, including non-breaking spaces, which Sheets
// cells pasted from word processors are riddled with.
var whitespace = regexp.MustCompile(`[\s\x{00A0}]+`)

// Normalize canonicalises a raw cell value: nil becomes "", a leading BOM is
// stripped, non-breaking spaces become ordinary spaces, runs of whitespace
// collapse to a single space and the result is trimmed. Total - never fails.
func Normalize(v interface{}) string {
	if v == nil {
		return ""
	}

	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}

	s = strings.TrimPrefix(s, "\uFEFF")
	s = whitespace.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

func normalise(v interface{}) string {
	return strings.ToLower(Normalize(v))
}
