package vm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Address arithmetic", func() {
	It("should split an address into page and offset", func() {
		Expect(PageOf(16916)).To(Equal(66))
		Expect(OffsetOf(16916)).To(Equal(20))
	})

	It("should mask bits beyond the logical address space", func() {
		addr := uint64(LogicalMemorySize + 16916)

		Expect(PageOf(addr)).To(Equal(66))
		Expect(OffsetOf(addr)).To(Equal(20))
	})

	It("should compose physical addresses", func() {
		Expect(PhysicalAddress(3, 20)).To(Equal(uint64(3*PageSize + 20)))
	})
})
