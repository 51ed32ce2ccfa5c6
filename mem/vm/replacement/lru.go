package replacement

// LRUPolicy evicts the frame whose last access is the oldest. Ties resolve
// to the lowest frame index, so eviction order is deterministic.
type LRUPolicy struct {
	lastUsed []int64
}

// NewLRUPolicy returns a newly constructed LRU evictor for a pool of
// numFrames frames.
func NewLRUPolicy(numFrames int) *LRUPolicy {
	p := &LRUPolicy{
		lastUsed: make([]int64, numFrames),
	}

	for i := range p.lastUsed {
		p.lastUsed[i] = -1
	}

	return p
}

// OnAllocate does nothing. The access that triggered the allocation stamps
// the frame through OnAccess.
func (p *LRUPolicy) OnAllocate(frame int) {
}

// OnAccess stamps the frame with the current clock value.
func (p *LRUPolicy) OnAccess(frame int, clock int64) {
	p.lastUsed[frame] = clock
}

// SelectVictim returns the frame with the smallest last-used stamp.
func (p *LRUPolicy) SelectVictim() int {
	victim := 0
	for frame := 1; frame < len(p.lastUsed); frame++ {
		if p.lastUsed[frame] < p.lastUsed[victim] {
			victim = frame
		}
	}

	return victim
}
