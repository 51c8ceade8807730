//go:build unix

package dictionary

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

type mmapView struct {
	data []byte
}

func (v *mmapView) Bytes() []byte { return v.data }

func (v *mmapView) Close() error {
	return unix.Munmap(v.data)
}

// OpenView maps path read-only into memory.
func OpenView(path string) (View, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", IoError, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", IoError, path, err)
	}
	size := int(info.Size())
	if size == 0 {
		return nil, fmt.Errorf("%w: %s is empty", IoError, path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %v", IoError, path, err)
	}
	return &mmapView{data: data}, nil
}
