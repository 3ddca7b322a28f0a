package gochunk_test

import (
	"bytes"
	"io"

	"github.com/bsm/gochunk"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Compression", func() {
	codecs := []gochunk.Compression{
		gochunk.NoCompression,
		gochunk.Gzip6Compression,
		gochunk.Gzip9Compression,
		gochunk.SnappyCompression,
	}

	roundTrip := func(c gochunk.Compression, plain []byte) []byte {
		buf := new(bytes.Buffer)
		cw, err := gochunk.NewCompressor(buf, c)
		Expect(err).NotTo(HaveOccurred())
		_, err = cw.Write(plain)
		Expect(err).NotTo(HaveOccurred())
		Expect(cw.Close()).To(Succeed())

		cr, err := gochunk.NewDecompressor(bytes.NewReader(buf.Bytes()), c)
		Expect(err).NotTo(HaveOccurred())
		got, err := io.ReadAll(cr)
		Expect(err).NotTo(HaveOccurred())
		Expect(cr.Close()).To(Succeed())
		return got
	}

	It("should parse names", func() {
		Expect(gochunk.ParseCompression("none")).To(Equal(gochunk.NoCompression))
		Expect(gochunk.ParseCompression("gzip6")).To(Equal(gochunk.Gzip6Compression))
		Expect(gochunk.ParseCompression("gzip9")).To(Equal(gochunk.Gzip9Compression))
		Expect(gochunk.ParseCompression("snappy")).To(Equal(gochunk.SnappyCompression))

		_, err := gochunk.ParseCompression("zstd")
		Expect(err).To(MatchError(`gochunk: bad compression codec: "zstd"`))
	})

	It("should round-trip every byte value", func() {
		every := make([]byte, 256)
		for i := range every {
			every[i] = byte(i)
		}

		for _, c := range codecs {
			Expect(roundTrip(c, every)).To(Equal(every), "for %s", c)

			long := bytes.Repeat(every, 512)
			Expect(roundTrip(c, long)).To(Equal(long), "for %s", c)
		}
	})

	It("should round-trip empty input", func() {
		for _, c := range codecs {
			Expect(roundTrip(c, nil)).To(BeEmpty(), "for %s", c)
		}
	})

	It("should pass plain bytes through unchanged", func() {
		buf := new(bytes.Buffer)
		cw, err := gochunk.NewCompressor(buf, gochunk.NoCompression)
		Expect(err).NotTo(HaveOccurred())
		_, err = cw.Write([]byte("testdata"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cw.Close()).To(Succeed())
		Expect(buf.String()).To(Equal("testdata"))
	})

	It("should reject unknown codecs", func() {
		_, err := gochunk.NewCompressor(io.Discard, gochunk.Compression(9))
		Expect(err).To(MatchError("gochunk: bad compression codec"))

		_, err = gochunk.NewDecompressor(new(bytes.Buffer), gochunk.Compression(9))
		Expect(err).To(MatchError("gochunk: bad compression codec"))
	})
})
