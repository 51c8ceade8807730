package server

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kjhall/vaguetrie/pkg/search"
	"github.com/kjhall/vaguetrie/pkg/trie"
)

// Server handles approximate search requests over MessagePack.
type Server struct {
	reader             *trie.Reader
	cache              *search.ResultCache
	maxAllowedDistance int

	// Reused across requests to avoid per-request allocation.
	decoder    *msgpack.Decoder
	out        io.Writer
	writeMutex sync.Mutex
}

// NewServer creates a server bound to a compiled dictionary. cache may be
// nil to disable memoization.
func NewServer(reader *trie.Reader, cache *search.ResultCache, maxAllowedDistance int) *Server {
	return &Server{
		reader:             reader,
		cache:              cache,
		maxAllowedDistance: maxAllowedDistance,
		decoder:            msgpack.NewDecoder(os.Stdin),
		out:                os.Stdout,
	}
}

// Start reads requests until the client closes stdin, answering each one
// before reading the next.
func (s *Server) Start() error {
	log.Debug("starting MessagePack search server")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("client disconnected")
				return nil
			}
			log.Warnf("request error: %v", err)
		}
	}
}

func (s *Server) processRequest() error {
	var req SearchRequest
	if err := s.decoder.Decode(&req); err != nil {
		return err
	}

	if req.Word == "" {
		return s.sendResponse(&SearchResponse{ID: req.ID, Error: "empty word"})
	}
	distance := req.Distance
	if distance < 0 {
		return s.sendResponse(&SearchResponse{ID: req.ID, Error: "negative distance"})
	}
	if distance > s.maxAllowedDistance {
		return s.sendResponse(&SearchResponse{ID: req.ID, Error: fmt.Sprintf("distance exceeds max of %d", s.maxAllowedDistance)})
	}

	start := time.Now()
	matches := search.ApproxCached(s.reader, s.cache, req.Word, distance)
	elapsed := time.Since(start)

	out := make([]SearchMatch, len(matches))
	for i, m := range matches {
		out[i] = SearchMatch{Word: m.Word, Freq: m.Freq, Distance: m.Distance}
	}

	return s.sendResponse(&SearchResponse{
		ID:              req.ID,
		Matches:         out,
		TimeTakenMicros: elapsed.Microseconds(),
	})
}

// sendResponse encodes and writes response atomically to the stdout the
// server was created with.
func (s *Server) sendResponse(response *SearchResponse) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(response); err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	if _, err := s.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
