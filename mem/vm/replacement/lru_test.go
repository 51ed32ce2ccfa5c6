package replacement

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LRUPolicy", func() {
	var p *LRUPolicy

	BeforeEach(func() {
		p = NewLRUPolicy(4)
	})

	It("should evict the frame with the oldest access", func() {
		p.OnAccess(0, 0)
		p.OnAccess(1, 1)
		p.OnAccess(2, 2)
		p.OnAccess(3, 3)

		p.OnAccess(0, 4)
		p.OnAccess(1, 5)

		Expect(p.SelectVictim()).To(Equal(2))
	})

	It("should break ties by the lowest frame index", func() {
		p.OnAccess(3, 7)
		p.OnAccess(2, 7)
		p.OnAccess(1, 7)
		p.OnAccess(0, 7)

		Expect(p.SelectVictim()).To(Equal(0))
	})

	It("should track the latest access of a frame", func() {
		p.OnAccess(0, 0)
		p.OnAccess(1, 1)
		p.OnAccess(2, 2)
		p.OnAccess(3, 3)

		p.OnAccess(0, 10)

		Expect(p.SelectVictim()).To(Equal(1))
	})
})

var _ = Describe("ParseKind", func() {
	It("should recognize policy names", func() {
		kind, err := ParseKind("FIFO")
		Expect(err).ToNot(HaveOccurred())
		Expect(kind).To(Equal(KindFIFO))

		kind, err = ParseKind("lru")
		Expect(err).ToNot(HaveOccurred())
		Expect(kind).To(Equal(KindLRU))
	})

	It("should recognize the numeric selectors", func() {
		kind, err := ParseKind("0")
		Expect(err).ToNot(HaveOccurred())
		Expect(kind).To(Equal(KindFIFO))

		kind, err = ParseKind("1")
		Expect(err).ToNot(HaveOccurred())
		Expect(kind).To(Equal(KindLRU))
	})

	It("should reject unknown policies", func() {
		_, err := ParseKind("MRU")
		Expect(err).To(HaveOccurred())
	})
})
