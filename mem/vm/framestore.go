package vm

import (
	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/mem/vm/replacement"
)

// A FrameStore owns the fixed pool of physical frames and services page
// faults by copying pages from the backing store into frames.
type FrameStore struct {
	storage   *mem.Storage
	backing   *mem.BackingStore
	pageTable PageTable
	policy    replacement.Policy

	numFrames int
	pageSize  int
	nextFree  int
}

// NewFrameStore creates a frame store with numFrames free frames. The page
// table is updated by the store as frames are handed out and reclaimed.
func NewFrameStore(
	backing *mem.BackingStore,
	pageTable PageTable,
	policy replacement.Policy,
	numFrames int,
) *FrameStore {
	pageSize := backing.PageSize()

	return &FrameStore{
		storage:   mem.NewStorage(uint64(numFrames * pageSize)),
		backing:   backing,
		pageTable: pageTable,
		policy:    policy,
		numFrames: numFrames,
		pageSize:  pageSize,
	}
}

// Load services a page fault. It finds a frame for the page, evicting the
// replacement policy's victim when no free frame remains, copies the page's
// bytes in from the backing store, and records the new mapping in the page
// table. It returns the frame number the page now occupies.
func (f *FrameStore) Load(page int) (int, error) {
	var frame int
	if f.nextFree < f.numFrames {
		frame = f.nextFree
		f.nextFree++
	} else {
		frame = f.policy.SelectVictim()

		// A frame must have exactly one owner. Unmap whoever held the
		// victim frame before handing it to the new page.
		if owner, found := f.pageTable.FrameOwner(frame); found {
			f.pageTable.Remove(owner)
		}
	}

	data, err := f.backing.ReadPage(page)
	if err != nil {
		return 0, err
	}

	err = f.storage.Write(uint64(frame*f.pageSize), data)
	if err != nil {
		return 0, err
	}

	f.pageTable.Insert(page, frame)
	f.policy.OnAllocate(frame)

	return frame, nil
}

// ReadByte returns the byte at the given offset of the given frame.
func (f *FrameStore) ReadByte(frame, offset int) (byte, error) {
	data, err := f.storage.Read(uint64(frame*f.pageSize+offset), 1)
	if err != nil {
		return 0, err
	}

	return data[0], nil
}

// NumFramesInUse returns the number of frames that have been handed out.
func (f *FrameStore) NumFramesInUse() int {
	return f.nextFree
}
