//go:build !unix

package dictionary

import (
	"fmt"
	"os"
)

type readView struct {
	data []byte
}

func (v *readView) Bytes() []byte { return v.data }
func (v *readView) Close() error  { return nil }

// OpenView reads path fully into memory. Platforms outside the unix build
// constraint have no portable mmap, so this fallback trades the mapped
// page cache for a plain heap buffer.
func OpenView(path string) (View, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", IoError, path, err)
	}
	return &readView{data: data}, nil
}
