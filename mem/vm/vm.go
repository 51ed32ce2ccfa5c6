// Package vm provides the page table, the frame store, and the address
// arithmetic of the demand-paged virtual memory simulator.
package vm

// Geometry of the simulated address spaces. The logical address space holds
// 256 pages of 256 bytes each; the physical memory holds 64 frames of the
// same size.
const (
	PageSize   = 256
	NumPages   = 256
	NumFrames  = 64
	OffsetBits = 8
	OffsetMask = PageSize - 1
	PageMask   = NumPages - 1

	LogicalMemorySize  = NumPages * PageSize
	PhysicalMemorySize = NumFrames * PageSize
)

// PageOf extracts the logical page number from a logical address. High bits
// beyond the logical address space are masked off.
func PageOf(addr uint64) int {
	return int(addr>>OffsetBits) & PageMask
}

// OffsetOf extracts the in-page offset from a logical address.
func OffsetOf(addr uint64) int {
	return int(addr) & OffsetMask
}

// PhysicalAddress composes a frame number and an in-page offset into a
// physical address.
func PhysicalAddress(frame, offset int) uint64 {
	return uint64(frame<<OffsetBits | offset)
}
