package vm

import "fmt"

// A PageTable is the authoritative mapping from logical page numbers to
// physical frame numbers.
type PageTable interface {
	Find(page int) (frame int, found bool)
	Insert(page, frame int)
	Remove(page int)
	FrameOwner(frame int) (page int, found bool)
}

// NewPageTable creates a page table covering numPages logical pages, all
// initially unmapped.
func NewPageTable(numPages int) PageTable {
	pt := &pageTableImpl{
		frames: make([]int, numPages),
	}

	for i := range pt.frames {
		pt.frames[i] = -1
	}

	return pt
}

// pageTableImpl is a dense page table. frames[page] is the frame number the
// page maps to, or -1 when the page is unmapped.
type pageTableImpl struct {
	frames []int
}

func (pt *pageTableImpl) Find(page int) (int, bool) {
	pt.pageMustBeInRange(page)

	frame := pt.frames[page]
	if frame < 0 {
		return 0, false
	}

	return frame, true
}

func (pt *pageTableImpl) Insert(page, frame int) {
	pt.pageMustBeInRange(page)

	pt.frames[page] = frame
}

func (pt *pageTableImpl) Remove(page int) {
	pt.pageMustBeInRange(page)

	pt.frames[page] = -1
}

// FrameOwner returns the logical page currently mapped to the frame. When
// several pages claimed the same frame the lowest page number wins, but the
// frame store keeps that from ever happening.
func (pt *pageTableImpl) FrameOwner(frame int) (int, bool) {
	for page, f := range pt.frames {
		if f == frame {
			return page, true
		}
	}

	return 0, false
}

func (pt *pageTableImpl) pageMustBeInRange(page int) {
	if page < 0 || page >= len(pt.frames) {
		panic(fmt.Sprintf("page %d is out of the page table range %d",
			page, len(pt.frames)))
	}
}
