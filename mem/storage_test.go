package mem

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Storage", func() {
	var s *Storage

	BeforeEach(func() {
		s = NewStorage(64)
	})

	It("should read back what was written", func() {
		err := s.Write(4, []byte{1, 2, 3, 4})
		Expect(err).ToNot(HaveOccurred())

		data, err := s.Read(4, 4)
		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal([]byte{1, 2, 3, 4}))
	})

	It("should read zeros from untouched regions", func() {
		data, err := s.Read(0, 8)

		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal(make([]byte, 8)))
	})

	It("should overwrite prior contents", func() {
		err := s.Write(0, []byte{1, 2, 3, 4})
		Expect(err).ToNot(HaveOccurred())

		err = s.Write(0, []byte{9, 9})
		Expect(err).ToNot(HaveOccurred())

		data, err := s.Read(0, 4)
		Expect(err).ToNot(HaveOccurred())
		Expect(data).To(Equal([]byte{9, 9, 3, 4}))
	})

	It("should refuse to read beyond the capacity", func() {
		_, err := s.Read(60, 8)

		Expect(err).To(HaveOccurred())
	})

	It("should refuse to write beyond the capacity", func() {
		err := s.Write(62, []byte{1, 2, 3})

		Expect(err).To(HaveOccurred())
	})
})
