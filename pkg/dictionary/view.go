package dictionary

// View is a read-only handle on a compiled dictionary's bytes, backed by
// either an mmap'd file (POSIX, see view_unix.go) or a fully read-in
// buffer (view_other.go). pkg/trie.Reader only ever sees the []byte from
// Bytes, so it is agnostic to which backed it.
type View interface {
	Bytes() []byte
	Close() error
}
