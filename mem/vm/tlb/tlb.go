// Package tlb provides the translation-lookaside buffer of the virtual
// memory simulator.
package tlb

// An Entry maps a logical page number to a physical frame number.
type Entry struct {
	Page  int
	Frame int
}

// A TLB is a fixed-capacity cache of page-to-frame mappings. It is a
// circular insertion log: Insert always writes the slot after the previous
// one, overwriting the oldest entry once the log has wrapped (FIFO
// replacement).
//
// The TLB is a cache, not a source of truth. Entries are never invalidated
// when a frame is reassigned elsewhere; a stale entry lives until it ages
// out of the lookup window or is overwritten. The translation path depends
// on this aging behavior, so do not add eager invalidation here.
type TLB struct {
	entries  []Entry
	inserted int
}

// NewTLB creates a TLB holding up to capacity entries.
func NewTLB(capacity int) *TLB {
	if capacity <= 0 {
		panic("TLB capacity must be positive")
	}

	return &TLB{
		entries: make([]Entry, capacity),
	}
}

// Capacity returns the number of entries the TLB can hold.
func (t *TLB) Capacity() int {
	return len(t.entries)
}

// Lookup scans the currently valid window of the log, oldest entry first,
// and returns the frame of the first entry matching the page.
func (t *TLB) Lookup(page int) (frame int, found bool) {
	start := t.inserted - len(t.entries)
	if start < 0 {
		start = 0
	}

	for i := start; i < t.inserted; i++ {
		entry := t.entries[i%len(t.entries)]
		if entry.Page == page {
			return entry.Frame, true
		}
	}

	return 0, false
}

// Insert adds a mapping to the TLB, replacing the oldest entry when the log
// is full.
func (t *TLB) Insert(page, frame int) {
	t.entries[t.inserted%len(t.entries)] = Entry{Page: page, Frame: frame}
	t.inserted++
}
