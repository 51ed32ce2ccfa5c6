package addresstranslator

// RunStats are the counters a run accumulates. They only ever grow.
type RunStats struct {
	TotalAddresses int64
	TLBHits        int64
	PageFaults     int64
}

// TLBHitRate returns the fraction of addresses resolved by the TLB. It is 0
// when no address has been processed.
func (s RunStats) TLBHitRate() float64 {
	if s.TotalAddresses == 0 {
		return 0
	}

	return float64(s.TLBHits) / float64(s.TotalAddresses)
}

// PageFaultRate returns the fraction of addresses that caused a page fault.
// It is 0 when no address has been processed.
func (s RunStats) PageFaultRate() float64 {
	if s.TotalAddresses == 0 {
		return 0
	}

	return float64(s.PageFaults) / float64(s.TotalAddresses)
}
