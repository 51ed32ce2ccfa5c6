package mem

import (
	"fmt"
	"os"
)

// A BackingStore is the read-only byte source that holds the content of the
// whole logical address space. Frames are populated from it on page faults.
type BackingStore struct {
	data     []byte
	pageSize int
}

// NewBackingStore wraps an in-memory byte slice as a backing store. The slice
// length must be a multiple of pageSize.
func NewBackingStore(data []byte, pageSize int) *BackingStore {
	if pageSize <= 0 || len(data)%pageSize != 0 {
		panic(fmt.Sprintf(
			"backing store size %d is not a multiple of the page size %d",
			len(data), pageSize))
	}

	return &BackingStore{data: data, pageSize: pageSize}
}

// OpenBackingStore reads a backing store file into memory. The file must hold
// at least size bytes; extra bytes are ignored.
func OpenBackingStore(path string, size, pageSize int) (*BackingStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("backing store unavailable: %w", err)
	}

	if len(data) < size {
		return nil, fmt.Errorf(
			"backing store unavailable: %s holds %d bytes, need %d",
			path, len(data), size)
	}

	return NewBackingStore(data[:size], pageSize), nil
}

// PageSize returns the number of bytes in one page.
func (b *BackingStore) PageSize() int {
	return b.pageSize
}

// NumPages returns the number of pages the backing store holds.
func (b *BackingStore) NumPages() int {
	return len(b.data) / b.pageSize
}

// ReadPage returns the bytes of the page with the given number.
func (b *BackingStore) ReadPage(pageNum int) ([]byte, error) {
	if pageNum < 0 || pageNum >= b.NumPages() {
		return nil, fmt.Errorf(
			"page %d is beyond the backing store with %d pages",
			pageNum, b.NumPages())
	}

	start := pageNum * b.pageSize

	return b.data[start : start+b.pageSize], nil
}
