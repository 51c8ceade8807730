/*
Package server implements a MessagePack IPC transport for approximate
search, for clients (editor plugins, embedding hosts) that would rather
exchange binary messages over stdin/stdout than line-based JSON.

The protocol is one request, one response, looped until the client closes
its stdin:

	{"id": "q1", "w": "teh", "d": 2}

The server answers with every dictionary word within the requested
distance, ranked by frequency:

	{"id": "q1", "m": [{"w": "the", "f": 98213, "d": 2}], "t": 42}

This carries the same query semantics as the line-JSON front-end
(internal/cli) — it is an additional transport, not a different search.
*/
package server

// SearchRequest is one decoded MessagePack query.
type SearchRequest struct {
	ID       string `msgpack:"id"`
	Word     string `msgpack:"w"`
	Distance int    `msgpack:"d"`
}

// SearchMatch is one dictionary hit within a SearchResponse.
type SearchMatch struct {
	Word     string `msgpack:"w"`
	Freq     uint32 `msgpack:"f"`
	Distance int    `msgpack:"d"`
}

// SearchResponse answers a SearchRequest with the same ID. Error is set,
// and Matches left nil, when the request itself was malformed.
type SearchResponse struct {
	ID              string        `msgpack:"id"`
	Matches         []SearchMatch `msgpack:"m"`
	TimeTakenMicros int64         `msgpack:"t"`
	Error           string        `msgpack:"e,omitempty"`
}
