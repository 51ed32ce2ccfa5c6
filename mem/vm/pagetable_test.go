package vm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PageTable", func() {
	var pt PageTable

	BeforeEach(func() {
		pt = NewPageTable(8)
	})

	It("should start with every page unmapped", func() {
		for page := 0; page < 8; page++ {
			_, found := pt.Find(page)
			Expect(found).To(BeFalse())
		}
	})

	It("should find inserted mappings", func() {
		pt.Insert(3, 5)

		frame, found := pt.Find(3)

		Expect(found).To(BeTrue())
		Expect(frame).To(Equal(5))
	})

	It("should remove mappings", func() {
		pt.Insert(3, 5)
		pt.Remove(3)

		_, found := pt.Find(3)

		Expect(found).To(BeFalse())
	})

	It("should find the owner of a frame", func() {
		pt.Insert(3, 5)
		pt.Insert(4, 6)

		page, found := pt.FrameOwner(6)

		Expect(found).To(BeTrue())
		Expect(page).To(Equal(4))
	})

	It("should report unowned frames", func() {
		_, found := pt.FrameOwner(0)

		Expect(found).To(BeFalse())
	})

	It("should panic on out-of-range pages", func() {
		Expect(func() { pt.Find(8) }).To(Panic())
		Expect(func() { pt.Insert(-1, 0) }).To(Panic())
	})
})
