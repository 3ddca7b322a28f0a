package gochunk_test

import (
	"github.com/bsm/gochunk"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SliceSource", func() {
	It("should iterate in order", func() {
		examples := seedExamples(3, 3, 1)
		src := gochunk.NewSliceSource(examples)

		for i := 0; i < 3; i++ {
			Expect(src.Next()).To(BeTrue())
			Expect(src.Example()).To(Equal(examples[i]))
		}
		Expect(src.Next()).To(BeFalse())
		Expect(src.Err()).NotTo(HaveOccurred())
	})
})

var _ = Describe("SplitTestTraining", func() {
	// collect drains the training iterator, asserting every chunk except
	// possibly the last has exactly want examples.
	collect := func(it *gochunk.ChunkIterator, want int) [][]gochunk.Example {
		var chunks [][]gochunk.Example
		for it.Next() {
			chunk := make([]gochunk.Example, len(it.Chunk()))
			copy(chunk, it.Chunk())
			chunks = append(chunks, chunk)
		}
		Expect(it.Err()).NotTo(HaveOccurred())

		for i, chunk := range chunks {
			if i != len(chunks)-1 {
				Expect(chunk).To(HaveLen(want), "for chunk %d", i)
			}
			Expect(chunk).NotTo(BeEmpty(), "for chunk %d", i)
		}
		return chunks
	}

	It("should split small corpora exactly by position", func() {
		test, training, err := gochunk.SplitTestTraining(&numberedSource{n: 300}, 300)
		Expect(err).NotTo(HaveOccurred())
		Expect(test).To(HaveLen(100))
		Expect(test[0].Move).To(Equal(0))
		Expect(test[99].Move).To(Equal(99))

		chunks := collect(training, 200)
		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0]).To(HaveLen(200))
		Expect(chunks[0][0].Move).To(Equal(100))
		Expect(chunks[0][199].Move).To(Equal(299))
	})

	It("should stream large corpora into bounded chunks", func() {
		const total = 250000

		test, training, err := gochunk.SplitTestTraining(&numberedSource{n: total}, total)
		Expect(err).NotTo(HaveOccurred())
		Expect(test).To(HaveLen(gochunk.DesiredTestSize))

		next := 0
		for _, ex := range test {
			Expect(ex.Move).To(Equal(next))
			next++
		}

		chunks := collect(training, gochunk.ChunkSize)
		Expect(chunks).To(HaveLen(37)) // 150000 = 36*4096 + 2544
		Expect(chunks[36]).To(HaveLen(2544))

		for _, chunk := range chunks {
			for _, ex := range chunk {
				Expect(ex.Move).To(Equal(next))
				next++
			}
		}
		Expect(next).To(Equal(total)) // no gaps, no duplicates
	})

	It("should never emit an empty final chunk", func() {
		// exactly 3 full chunks after the test set; the estimate keeps the
		// stream on the lazily-chunked branch
		const total = gochunk.DesiredTestSize + 3*gochunk.ChunkSize

		test, training, err := gochunk.SplitTestTraining(&numberedSource{n: total}, 2*gochunk.DesiredTestSize)
		Expect(err).NotTo(HaveOccurred())
		Expect(test).To(HaveLen(gochunk.DesiredTestSize))

		chunks := collect(training, gochunk.ChunkSize)
		Expect(chunks).To(HaveLen(3))
		Expect(chunks[2]).To(HaveLen(gochunk.ChunkSize))
	})

	It("should handle empty streams on the small branch", func() {
		test, training, err := gochunk.SplitTestTraining(&numberedSource{}, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(test).To(BeEmpty())
		Expect(training.Next()).To(BeFalse())
	})
})
