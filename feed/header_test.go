package feed

import (
	"reflect"
	"testing"
)

func TestResolveHeaders(t *testing.T) {
	t.Parallel()

	expected := map[string]int{
		"program":       0,
		"document name": 1,
		"status":        2,
	}

	index := ResolveHeaders([]interface{}{"Program", "Document  Name", "STATUS"})

	if !reflect.DeepEqual(index, expected) {
		t.Errorf("Incorrect header index\n   expected: %v\n   got:      %v", expected, index)
	}
}

func TestResolveHeadersMatchesSynonymForm(t *testing.T) {
	t.Parallel()

	index := ResolveHeaders([]interface{}{"Document  Name"})

	if ix, ok := index[normalise("document name")]; !ok || ix != 0 {
		t.Errorf("Expected 'Document  Name' to resolve for synonym 'document name', got %v (%v)", ix, ok)
	}
}

func TestResolveHeadersLastColumnWinsCollision(t *testing.T) {
	t.Parallel()

	index := ResolveHeaders([]interface{}{"Status", "Program", "status"})

	if ix := index["status"]; ix != 2 {
		t.Errorf("Expected later column to win collision, got index %v", ix)
	}
}

func TestResolveHeadersWithEmptyRow(t *testing.T) {
	t.Parallel()

	if index := ResolveHeaders([]interface{}{}); len(index) != 0 {
		t.Errorf("Expected empty index for empty header row, got %v", index)
	}
}
