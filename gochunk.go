package gochunk

import (
	"errors"
	"fmt"
)

// Format constants.
const (
	// ChunkSize is the maximum number of examples stored in a single chunk file.
	ChunkSize = 4096

	// DesiredTestSize is the number of examples reserved for the test set
	// when splitting a large corpus.
	DesiredTestSize = 100000
)

// ErrShapeMismatch is returned when examples disagree on tensor shape or when
// parallel arrays have inconsistent lengths.
var ErrShapeMismatch = errors.New("gochunk: shape mismatch")

// ErrTrailingData is returned by Read when a chunk file contains bytes beyond
// the payload announced by its header. It usually indicates corruption or a
// packing/compression option mismatch.
var ErrTrailingData = errors.New("gochunk: trailing data after payload")

// ErrBatchSize is returned by GetBatch when the requested batch is not
// strictly smaller than the data set.
var ErrBatchSize = errors.New("gochunk: batch size must be smaller than data size")

var (
	errBadCompression = errors.New("gochunk: bad compression codec")
	errBadPacking     = errors.New("gochunk: bad packing strategy")
)

// --------------------------------------------------------------------

// Compression is the compression codec applied to a whole chunk file,
// header included.
type Compression byte

// Supported compression codecs.
const (
	NoCompression Compression = iota
	Gzip6Compression
	Gzip9Compression
	SnappyCompression
	unknownCompression
)

func (c Compression) isValid() bool { return c < unknownCompression }

// String returns the configuration name of the codec.
func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case Gzip6Compression:
		return "gzip6"
	case Gzip9Compression:
		return "gzip9"
	case SnappyCompression:
		return "snappy"
	}
	return "unknown"
}

// ParseCompression resolves a codec by its configuration name.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none":
		return NoCompression, nil
	case "gzip6":
		return Gzip6Compression, nil
	case "gzip9":
		return Gzip9Compression, nil
	case "snappy":
		return SnappyCompression, nil
	}
	return unknownCompression, fmt.Errorf("%w: %q", errBadCompression, s)
}

// --------------------------------------------------------------------

// Packing is the strategy used to reduce feature/label tensors to bytes
// before optional compression.
type Packing byte

// Supported packing strategies.
const (
	// NoPacking stores every element in its native width, little-endian.
	NoPacking Packing = iota
	// HalfPacking stores one byte per element: 1 where the element equals
	// one, 0 otherwise. Lossy for any other value.
	HalfPacking
	// FullPacking stores one bit per element, MSB-first, under the same
	// equality-with-one rule as HalfPacking.
	FullPacking
	unknownPacking
)

func (p Packing) isValid() bool { return p < unknownPacking }

// String returns the configuration name of the strategy.
func (p Packing) String() string {
	switch p {
	case NoPacking:
		return "none"
	case HalfPacking:
		return "half"
	case FullPacking:
		return "full"
	}
	return "unknown"
}

// ParsePacking resolves a strategy by its configuration name.
func ParsePacking(s string) (Packing, error) {
	switch s {
	case "none":
		return NoPacking, nil
	case "half":
		return HalfPacking, nil
	case "full":
		return FullPacking, nil
	}
	return unknownPacking, fmt.Errorf("%w: %q", errBadPacking, s)
}
