package gochunk

// ExampleSource is a pull iterator over a stream of training examples. It is
// restartable from its origin but not rewindable mid-stream.
type ExampleSource interface {
	// Next advances to the next example and reports whether one is available.
	Next() bool
	// Example returns the current example. Only valid after a successful Next.
	Example() Example
	// Err exposes stream errors, if any.
	Err() error
}

// SliceSource adapts an in-memory slice of examples to an ExampleSource.
type SliceSource struct {
	examples []Example
	pos      int
}

// NewSliceSource returns a source iterating over examples in order.
func NewSliceSource(examples []Example) *SliceSource {
	return &SliceSource{examples: examples}
}

// Next advances the cursor and returns true if successful.
func (s *SliceSource) Next() bool {
	if s.pos < len(s.examples) {
		s.pos++
		return true
	}
	return false
}

// Example returns the current example.
func (s *SliceSource) Example() Example { return s.examples[s.pos-1] }

// Err always returns nil.
func (s *SliceSource) Err() error { return nil }

// takeN consumes up to n examples from src, fewer if the stream ends early.
func takeN(n int, src ExampleSource) []Example {
	result := make([]Example, 0, n)
	for len(result) < n && src.Next() {
		result = append(result, src.Example())
	}
	return result
}

// --------------------------------------------------------------------

// ChunkIterator groups the remainder of an example stream into consecutive
// chunks of at most size examples. The final chunk may be smaller; an empty
// final chunk is never emitted. Chunk boundaries bound peak memory during
// writing and carry no semantic meaning.
type ChunkIterator struct {
	src   ExampleSource
	size  int
	chunk []Example
}

func newChunkIterator(src ExampleSource, size int) *ChunkIterator {
	return &ChunkIterator{src: src, size: size}
}

// Next pulls the next chunk from the stream and returns true if successful.
func (it *ChunkIterator) Next() bool {
	it.chunk = takeN(it.size, it.src)
	return len(it.chunk) != 0
}

// Chunk returns the current chunk. Only valid after a successful Next.
func (it *ChunkIterator) Chunk() []Example { return it.chunk }

// Err exposes stream errors, if any.
func (it *ChunkIterator) Err() error { return it.src.Err() }

// --------------------------------------------------------------------

// SplitTestTraining partitions an example stream into a test set and an
// iterator of training chunks, preserving stream order with no drops or
// duplicates.
//
// Streams estimated below twice DesiredTestSize are fully materialized and
// divided by position: the first third becomes the test set and the rest
// forms a single training chunk. Larger streams surrender exactly their
// first DesiredTestSize examples to the test set; the remainder is grouped
// lazily into chunks of at most ChunkSize examples, so only one chunk is
// held in memory at a time.
func SplitTestTraining(src ExampleSource, estimated int) ([]Example, *ChunkIterator, error) {
	if estimated < 2*DesiredTestSize {
		var all []Example
		for src.Next() {
			all = append(all, src.Example())
		}
		if err := src.Err(); err != nil {
			return nil, nil, err
		}

		testSize := len(all) / 3
		rest := all[testSize:]
		return all[:testSize], newChunkIterator(NewSliceSource(rest), len(rest)), nil
	}

	test := takeN(DesiredTestSize, src)
	if err := src.Err(); err != nil {
		return nil, nil, err
	}
	return test, newChunkIterator(src, ChunkSize), nil
}
