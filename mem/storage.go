// Package mem provides the physical memory storage and the backing store
// that the virtual memory simulator reads pages from.
package mem

import "fmt"

// A Storage keeps the data of the simulated physical memory.
//
// The storage is a flat, fixed-capacity byte array. Reads and writes are
// bounds checked against the capacity.
type Storage struct {
	capacity uint64
	data     []byte
}

// NewStorage creates a storage object with the specified capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	return &Storage{
		capacity: capacity,
		data:     make([]byte, capacity),
	}
}

// Capacity returns the number of bytes the storage can hold.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

// Read returns n bytes starting at address.
func (s *Storage) Read(address, n uint64) ([]byte, error) {
	if address+n > s.capacity {
		return nil, fmt.Errorf(
			"reading [%d, %d) is beyond the storage capacity %d",
			address, address+n, s.capacity)
	}

	res := make([]byte, n)
	copy(res, s.data[address:address+n])

	return res, nil
}

// Write copies data into the storage starting at address, overwriting
// whatever was there before.
func (s *Storage) Write(address uint64, data []byte) error {
	if address+uint64(len(data)) > s.capacity {
		return fmt.Errorf(
			"writing [%d, %d) is beyond the storage capacity %d",
			address, address+uint64(len(data)), s.capacity)
	}

	copy(s.data[address:], data)

	return nil
}
