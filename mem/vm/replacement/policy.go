// Package replacement provides the frame replacement policies of the
// virtual memory simulator.
package replacement

import (
	"fmt"
	"strings"
)

// A Policy decides which frame to reclaim when no free frame remains. The
// frame store reports every frame hand-out through OnAllocate, and the
// translator reports every resolved access through OnAccess.
type Policy interface {
	// OnAllocate is called once each time a frame is handed to a logical
	// page, either fresh from the free pool or reused after an eviction.
	OnAllocate(frame int)

	// OnAccess is called each time a frame is the resolved target of a
	// translation. The clock is a counter that advances once per address.
	OnAccess(frame int, clock int64)

	// SelectVictim returns the frame to reclaim. It must only be called
	// when the free pool is exhausted.
	SelectVictim() int
}

// Kind identifies a replacement policy variant.
type Kind int

// The supported replacement policy variants.
const (
	KindFIFO Kind = iota
	KindLRU
)

func (k Kind) String() string {
	switch k {
	case KindFIFO:
		return "FIFO"
	case KindLRU:
		return "LRU"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a configuration string to a policy kind. Names are matched
// case-insensitively. The numeric selectors "0" and "1" are also accepted.
func ParseKind(name string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "FIFO", "0":
		return KindFIFO, nil
	case "LRU", "1":
		return KindLRU, nil
	default:
		return 0, fmt.Errorf(
			"unknown replacement policy %q, expect FIFO or LRU", name)
	}
}

// NewPolicy creates a policy of the given kind for a pool of numFrames
// frames.
func NewPolicy(kind Kind, numFrames int) Policy {
	switch kind {
	case KindFIFO:
		return NewFIFOPolicy(numFrames)
	case KindLRU:
		return NewLRUPolicy(numFrames)
	default:
		panic("unknown replacement policy " + kind.String())
	}
}
