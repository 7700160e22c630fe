package memory

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Shared", func() {
	var mem *Shared

	BeforeEach(func() {
		mem = NewShared(4096, 4)
	})

	It("should start zeroed", func() {
		Expect(mem.Size()).To(Equal(4096))
		for addr := 0; addr < mem.Size(); addr += WORD_SIZE {
			value, err := mem.LoadWord(addr)
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(int32(0)))
		}
	})

	It("should read back stored words", func() {
		for _, addr := range []int{0, 4, 1020, 1024, 4092} {
			Expect(mem.StoreWord(addr, int32(addr)-7)).To(Succeed())
			value, err := mem.LoadWord(addr)
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(int32(addr) - 7))
		}
	})

	It("should store words little-endian", func() {
		Expect(mem.StoreWord(8, 0x11223344)).To(Succeed())
		Expect(mem.Data[8:12]).To(Equal([]byte{0x44, 0x33, 0x22, 0x11}))

		Expect(mem.StoreWord(12, -1)).To(Succeed())
		Expect(mem.Data[12:16]).To(Equal([]byte{0xff, 0xff, 0xff, 0xff}))
	})

	It("should reject out of range addresses", func() {
		for _, addr := range []int{-4, 4096, 4100, 1 << 20} {
			_, err := mem.LoadWord(addr)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue(), "load %d", addr)

			err = mem.StoreWord(addr, 1)
			Expect(errors.Is(err, ErrOutOfRange)).To(BeTrue(), "store %d", addr)
		}
	})

	It("should reject misaligned addresses", func() {
		for _, addr := range []int{1, 2, 3, 4093} {
			err := mem.StoreWord(addr, 1)
			Expect(errors.Is(err, ErrMisaligned)).To(BeTrue(), "store %d", addr)
		}

		var access *ErrAccess
		_, err := mem.LoadWord(6)
		Expect(errors.As(err, &access)).To(BeTrue())
		Expect(access.Addr).To(Equal(6))
		Expect(access.Size).To(Equal(WORD_SIZE))
	})

	It("should leave memory untouched on a faulted store", func() {
		Expect(mem.StoreWord(4094, 99)).NotTo(Succeed())
		Expect(mem.Data[4092:]).To(Equal([]byte{0, 0, 0, 0}))
	})

	It("should split into per-core regions", func() {
		Expect(mem.RegionSize()).To(Equal(1024))
		base, limit := mem.Region(2)
		Expect(base).To(Equal(2048))
		Expect(limit).To(Equal(3072))
	})

	It("should not isolate regions", func() {
		base, _ := mem.Region(3)
		Expect(mem.StoreWord(base, 42)).To(Succeed())
		value, err := mem.LoadWord(base)
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(int32(42)))
	})

	It("should zero on reset", func() {
		Expect(mem.StoreWord(0, 5)).To(Succeed())
		mem.Reset()
		value, _ := mem.LoadWord(0)
		Expect(value).To(Equal(int32(0)))
	})
})
