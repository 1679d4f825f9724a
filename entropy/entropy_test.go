package entropy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rxprog/entropy"
)

var _ = Describe("Value", func() {
	It("should return the low word first", func() {
		v := entropy.Value{Hi: 0x1122334455667788, Lo: 0x0102030405060708}

		first, second := v.Words()

		Expect(first).To(Equal(int64(0x0102030405060708)))
		Expect(second).To(Equal(int64(0x1122334455667788)))
	})

	It("should return the words in byte order", func() {
		b := []byte{
			0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
			0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11,
		}
		values, err := entropy.FromBytes(b)
		Expect(err).ToNot(HaveOccurred())

		first, second := values[0].Words()

		Expect(first).To(Equal(int64(0x0102030405060708)))
		Expect(second).To(Equal(int64(0x1122334455667788)))
	})

	It("should keep words with the sign bit set negative", func() {
		v := entropy.Value{Hi: 0xFFFFFFFFFFFFFFFF, Lo: 0x8000000000000000}

		first, second := v.Words()

		Expect(first).To(BeNumerically("<", 0))
		Expect(second).To(Equal(int64(-1)))
	})

	It("should render as 32 hex digits", func() {
		v := entropy.Value{Hi: 0xAB, Lo: 0x1}
		Expect(v.String()).To(Equal("00000000000000ab0000000000000001"))
	})

	Describe("FromBytes", func() {
		It("should read little-endian chunks, low word first", func() {
			b := []byte{
				0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
				0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11,
			}

			values, err := entropy.FromBytes(b)

			Expect(err).ToNot(HaveOccurred())
			Expect(values).To(HaveLen(1))
			Expect(values[0].Lo).To(Equal(uint64(0x0102030405060708)))
			Expect(values[0].Hi).To(Equal(uint64(0x1122334455667788)))
			Expect(values[0].Bytes()).To(Equal(b))
		})

		It("should accept an empty slice", func() {
			values, err := entropy.FromBytes(nil)

			Expect(err).ToNot(HaveOccurred())
			Expect(values).To(BeEmpty())
		})

		It("should reject partial values", func() {
			_, err := entropy.FromBytes(make([]byte, 17))
			Expect(err).To(MatchError(entropy.ErrBadLength))
		})
	})

	Describe("ParseHex", func() {
		It("should parse most significant digit first", func() {
			v, err := entropy.ParseHex("0x11223344556677880102030405060708")

			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(entropy.Value{Hi: 0x1122334455667788, Lo: 0x0102030405060708}))
		})

		It("should round trip through String", func() {
			v := entropy.Value{Hi: 0xDEADBEEF00000000, Lo: 0x12345678}

			parsed, err := entropy.ParseHex(v.String())

			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(v))
		})

		It("should reject short input", func() {
			_, err := entropy.ParseHex("abcd")
			Expect(err).To(HaveOccurred())
		})

		It("should reject non-hex digits", func() {
			_, err := entropy.ParseHex("zz22334455667788010203040506070z")
			Expect(err).To(HaveOccurred())
		})
	})
})
