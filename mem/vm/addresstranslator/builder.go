package addresstranslator

import (
	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/replacement"
	"github.com/sarchlab/vmsim/mem/vm/tlb"
)

// A Builder can build address translators.
type Builder struct {
	backing  *mem.BackingStore
	policy   replacement.Policy
	tlbSize  int
	numPages int

	numFrames int
	pageSize  int
}

// MakeBuilder returns a Builder with the default geometry of the simulator.
func MakeBuilder() Builder {
	return Builder{
		tlbSize:   16,
		numPages:  vm.NumPages,
		numFrames: vm.NumFrames,
		pageSize:  vm.PageSize,
	}
}

// WithBackingStore sets the backing store that pages are loaded from on
// page faults.
func (b Builder) WithBackingStore(backing *mem.BackingStore) Builder {
	b.backing = backing
	return b
}

// WithPolicy sets the frame replacement policy.
func (b Builder) WithPolicy(policy replacement.Policy) Builder {
	b.policy = policy
	return b
}

// WithTLBSize sets the number of entries in the TLB.
func (b Builder) WithTLBSize(n int) Builder {
	b.tlbSize = n
	return b
}

// WithNumPages sets the number of pages in the logical address space.
func (b Builder) WithNumPages(n int) Builder {
	b.numPages = n
	return b
}

// WithNumFrames sets the number of frames in the physical memory.
func (b Builder) WithNumFrames(n int) Builder {
	b.numFrames = n
	return b
}

// WithPageSize sets the page size in bytes. The size must be a power of 2.
func (b Builder) WithPageSize(n int) Builder {
	if n <= 0 || n&(n-1) != 0 {
		panic("page size must be a power of 2")
	}

	b.pageSize = n
	return b
}

// Build creates a new address translator.
func (b Builder) Build(name string) *Comp {
	if b.backing == nil {
		panic("an address translator needs a backing store")
	}

	if b.policy == nil {
		panic("an address translator needs a replacement policy")
	}

	if b.backing.PageSize() != b.pageSize {
		panic("the backing store page size does not match the translator")
	}

	pageTable := vm.NewPageTable(b.numPages)

	c := &Comp{
		name:       name,
		tlb:        tlb.NewTLB(b.tlbSize),
		pageTable:  pageTable,
		policy:     b.policy,
		offsetBits: log2(b.pageSize),
		offsetMask: b.pageSize - 1,
		pageMask:   b.numPages - 1,
	}
	c.frames = vm.NewFrameStore(b.backing, pageTable, b.policy, b.numFrames)

	return c
}

func log2(n int) int {
	bits := 0
	for n > 1 {
		n >>= 1
		bits++
	}

	return bits
}
