package mem

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BackingStore", func() {
	var data []byte

	BeforeEach(func() {
		data = make([]byte, 16)
		for i := range data {
			data[i] = byte(i)
		}
	})

	It("should serve pages by number", func() {
		b := NewBackingStore(data, 4)

		Expect(b.NumPages()).To(Equal(4))

		page, err := b.ReadPage(2)
		Expect(err).ToNot(HaveOccurred())
		Expect(page).To(Equal([]byte{8, 9, 10, 11}))
	})

	It("should reject out-of-range page numbers", func() {
		b := NewBackingStore(data, 4)

		_, err := b.ReadPage(4)
		Expect(err).To(HaveOccurred())

		_, err = b.ReadPage(-1)
		Expect(err).To(HaveOccurred())
	})

	It("should panic on a size that is not page aligned", func() {
		Expect(func() { NewBackingStore(data[:15], 4) }).To(Panic())
	})

	It("should open a backing store file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "BACKING_STORE.bin")
		err := os.WriteFile(path, data, 0o600)
		Expect(err).ToNot(HaveOccurred())

		b, err := OpenBackingStore(path, 16, 4)
		Expect(err).ToNot(HaveOccurred())

		page, err := b.ReadPage(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(page).To(Equal([]byte{0, 1, 2, 3}))
	})

	It("should fail when the file does not exist", func() {
		_, err := OpenBackingStore("no-such-file.bin", 16, 4)

		Expect(err).To(HaveOccurred())
	})

	It("should fail when the file is too short", func() {
		path := filepath.Join(GinkgoT().TempDir(), "BACKING_STORE.bin")
		err := os.WriteFile(path, data[:8], 0o600)
		Expect(err).ToNot(HaveOccurred())

		_, err = OpenBackingStore(path, 16, 4)
		Expect(err).To(HaveOccurred())
	})
})
