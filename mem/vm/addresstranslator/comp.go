// Package addresstranslator resolves logical addresses to physical addresses
// using a TLB backed by a page table, servicing misses from the backing
// store.
package addresstranslator

import (
	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/replacement"
	"github.com/sarchlab/vmsim/mem/vm/tlb"
)

// Outcome tells how a translation was resolved.
type Outcome int

// A translation either hits the TLB, misses the TLB but hits the page table,
// or faults and loads the page from the backing store.
const (
	OutcomeTLBHit Outcome = iota
	OutcomePageTableHit
	OutcomePageFault
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTLBHit:
		return "tlb-hit"
	case OutcomePageTableHit:
		return "page-table-hit"
	case OutcomePageFault:
		return "page-fault"
	default:
		return "unknown"
	}
}

// A Translation is the result of resolving one logical address.
type Translation struct {
	VirtualAddress  uint64
	PhysicalAddress uint64
	Value           int8
	Outcome         Outcome
}

// Comp translates a stream of logical addresses, one at a time, in order.
// All the structures it orchestrates are owned by the component, so
// independent simulations can run side by side.
type Comp struct {
	name string

	tlb       *tlb.TLB
	pageTable vm.PageTable
	frames    *vm.FrameStore
	policy    replacement.Policy

	offsetBits int
	offsetMask int
	pageMask   int

	clock int64
	stats RunStats
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// Translate resolves one logical address to a physical address and the byte
// stored there. TLB misses and page faults are normal outcomes, not errors;
// an error is only returned when the backing store cannot serve a page.
func (c *Comp) Translate(addr uint64) (Translation, error) {
	page := int(addr>>c.offsetBits) & c.pageMask
	offset := int(addr) & c.offsetMask

	outcome := OutcomeTLBHit

	frame, found := c.tlb.Lookup(page)
	if found {
		c.stats.TLBHits++
	} else {
		frame, found = c.pageTable.Find(page)
		if found {
			outcome = OutcomePageTableHit
		} else {
			outcome = OutcomePageFault
			c.stats.PageFaults++

			var err error
			frame, err = c.frames.Load(page)
			if err != nil {
				return Translation{}, err
			}
		}

		c.tlb.Insert(page, frame)
	}

	c.policy.OnAccess(frame, c.clock)
	c.clock++

	value, err := c.frames.ReadByte(frame, offset)
	if err != nil {
		return Translation{}, err
	}

	c.stats.TotalAddresses++

	return Translation{
		VirtualAddress:  addr,
		PhysicalAddress: uint64(frame<<c.offsetBits | offset),
		Value:           int8(value),
		Outcome:         outcome,
	}, nil
}

// Stats returns the counters accumulated so far.
func (c *Comp) Stats() RunStats {
	return c.stats
}
