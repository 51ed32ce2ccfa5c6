package replacement

// FIFOPolicy evicts the frame that was allocated longest ago, independent of
// access recency.
//
// The policy keeps a circular queue of frame numbers in allocation order.
// A frame enters the queue once per hand-out and leaves it when selected as
// the victim, so the queue never holds more than numFrames entries.
type FIFOPolicy struct {
	queue []int
	head  int
	size  int
}

// NewFIFOPolicy returns a newly constructed FIFO evictor for a pool of
// numFrames frames.
func NewFIFOPolicy(numFrames int) *FIFOPolicy {
	return &FIFOPolicy{
		queue: make([]int, numFrames),
	}
}

// OnAllocate pushes the frame to the back of the allocation queue.
func (p *FIFOPolicy) OnAllocate(frame int) {
	if p.size == len(p.queue) {
		panic("more frames allocated than the pool holds")
	}

	tail := (p.head + p.size) % len(p.queue)
	p.queue[tail] = frame
	p.size++
}

// OnAccess does nothing. FIFO ignores access recency.
func (p *FIFOPolicy) OnAccess(frame int, clock int64) {
}

// SelectVictim pops and returns the front of the queue, the frame least
// recently allocated.
func (p *FIFOPolicy) SelectVictim() int {
	if p.size == 0 {
		panic("selecting a victim while no frame is allocated")
	}

	frame := p.queue[p.head]
	p.head = (p.head + 1) % len(p.queue)
	p.size--

	return frame
}
