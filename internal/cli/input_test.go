package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/kjhall/vaguetrie/pkg/patricia"
	"github.com/kjhall/vaguetrie/pkg/search"
	"github.com/kjhall/vaguetrie/pkg/trie"
)

func buildHandler(t *testing.T, out *bytes.Buffer) *QueryHandler {
	t.Helper()
	pt := patricia.New()
	for w, f := range map[string]uint32{"cat": 10, "cats": 5, "car": 20} {
		pt.Insert([]rune(w), f)
	}
	data := trie.Flatten(pt, 2)
	reader, err := trie.NewReader(data)
	if err != nil {
		t.Fatalf("trie.NewReader: %v", err)
	}
	return NewQueryHandler(reader, search.NewResultCache(16), 8, out)
}

func decodeLines(t *testing.T, out *bytes.Buffer) [][]resultLine {
	t.Helper()
	var lines [][]resultLine
	dec := json.NewDecoder(out)
	for {
		var line []resultLine
		if err := dec.Decode(&line); err != nil {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

func TestQueryHandlerExactMatch(t *testing.T) {
	var out bytes.Buffer
	h := buildHandler(t, &out)

	if err := h.Start(strings.NewReader("approx 0 cat\n")); err != nil {
		t.Fatalf("Start: %v", err)
	}
	lines := decodeLines(t, &out)
	if len(lines) != 1 || len(lines[0]) != 1 || lines[0][0].Word != "cat" {
		t.Fatalf("expected a single exact match for 'cat', got %+v", lines)
	}
}

func TestQueryHandlerApproxMatch(t *testing.T) {
	var out bytes.Buffer
	h := buildHandler(t, &out)

	if err := h.Start(strings.NewReader("approx 1 cats\n")); err != nil {
		t.Fatalf("Start: %v", err)
	}
	lines := decodeLines(t, &out)
	if len(lines) != 1 {
		t.Fatalf("expected one result line, got %d", len(lines))
	}
	words := map[string]bool{}
	for _, r := range lines[0] {
		words[r.Word] = true
	}
	if !words["cats"] || !words["cat"] {
		t.Errorf("expected 'cats' and 'cat' among approx matches, got %+v", lines[0])
	}
}

func TestQueryHandlerEmitsEmptyArrayOnNoMatches(t *testing.T) {
	var out bytes.Buffer
	h := buildHandler(t, &out)

	if err := h.Start(strings.NewReader("approx 0 zzzzz\n")); err != nil {
		t.Fatalf("Start: %v", err)
	}
	lines := decodeLines(t, &out)
	if len(lines) != 1 || lines[0] == nil || len(lines[0]) != 0 {
		t.Fatalf("expected a single empty (non-nil) result array, got %+v", lines)
	}
}

func TestQueryHandlerSkipsMalformedLinesWithoutStopping(t *testing.T) {
	var out bytes.Buffer
	h := buildHandler(t, &out)

	input := "not a query\napprox notanumber cat\napprox 0 cat\n"
	if err := h.Start(strings.NewReader(input)); err != nil {
		t.Fatalf("Start: %v", err)
	}
	lines := decodeLines(t, &out)
	if len(lines) != 1 {
		t.Fatalf("expected malformed lines to be skipped with one surviving result, got %d lines", len(lines))
	}
	if lines[0][0].Word != "cat" {
		t.Errorf("expected the surviving query's result, got %+v", lines[0])
	}
}

func TestQueryHandlerRejectsDistanceAboveMax(t *testing.T) {
	var out bytes.Buffer
	h := buildHandler(t, &out)

	if err := h.Start(strings.NewReader("approx 99 cat\n")); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output line for a distance exceeding the configured max, got %q", out.String())
	}
}
