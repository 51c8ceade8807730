// Package cli implements the interactive query-line front-end: one
// "approx <distance> <word>" command per stdin line, one JSON result line
// per stdout line.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kjhall/vaguetrie/pkg/search"
	"github.com/kjhall/vaguetrie/pkg/trie"
)

// QueryMalformed marks a stdin line that didn't match the query grammar:
// wrong token count, unknown command, or a non-numeric distance.
var QueryMalformed = fmt.Errorf("cli: malformed query")

// resultLine is the JSON shape written for every query, per-match.
type resultLine struct {
	Word     string `json:"word"`
	Freq     uint32 `json:"freq"`
	Distance int    `json:"distance"`
}

// QueryHandler reads "approx <distance> <word>" lines from stdin and
// writes one JSON array line per query to out.
type QueryHandler struct {
	reader             *trie.Reader
	cache              *search.ResultCache
	maxAllowedDistance int
	out                io.Writer
}

// NewQueryHandler builds a handler bound to a compiled dictionary. cache
// may be nil to disable memoization.
func NewQueryHandler(reader *trie.Reader, cache *search.ResultCache, maxAllowedDistance int, out io.Writer) *QueryHandler {
	return &QueryHandler{
		reader:             reader,
		cache:              cache,
		maxAllowedDistance: maxAllowedDistance,
		out:                out,
	}
}

// Start reads in from the query stream until EOF, never stopping early on
// a malformed line.
func (h *QueryHandler) Start(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := h.handleLine(line); err != nil {
			log.Errorf("query error: %v", err)
		}
	}
	return scanner.Err()
}

func (h *QueryHandler) handleLine(line string) error {
	tokens := strings.Split(line, " ")
	if len(tokens) != 3 || tokens[0] != "approx" {
		return fmt.Errorf("%w: %q", QueryMalformed, line)
	}

	distance, err := strconv.Atoi(tokens[1])
	if err != nil || distance < 0 {
		return fmt.Errorf("%w: invalid distance %q", QueryMalformed, tokens[1])
	}
	if distance > h.maxAllowedDistance {
		return fmt.Errorf("%w: distance %d exceeds max of %d", QueryMalformed, distance, h.maxAllowedDistance)
	}
	word := tokens[2]

	var matches []search.Match
	if distance == 0 {
		if freq, found := search.Exact(h.reader, word); found {
			matches = []search.Match{{Word: word, Freq: freq, Distance: 0}}
		}
	} else {
		matches = search.ApproxCached(h.reader, h.cache, word, distance)
	}

	results := make([]resultLine, len(matches))
	for i, m := range matches {
		results[i] = resultLine{Word: m.Word, Freq: m.Freq, Distance: m.Distance}
	}
	if results == nil {
		results = []resultLine{}
	}

	enc := json.NewEncoder(h.out)
	return enc.Encode(results)
}
