package gochunk

import (
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
)

// NewCompressor wraps w with the given codec. The returned WriteCloser must
// be closed to flush buffered frames; closing it does not close w.
func NewCompressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case NoCompression:
		return nopWriteCloser{w}, nil
	case Gzip6Compression:
		return gzip.NewWriterLevel(w, 6)
	case Gzip9Compression:
		return gzip.NewWriterLevel(w, 9)
	case SnappyCompression:
		return snappy.NewBufferedWriter(w), nil
	}
	return nil, errBadCompression
}

// NewDecompressor wraps r with the given codec. Closing the returned
// ReadCloser does not close r.
func NewDecompressor(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case NoCompression:
		return io.NopCloser(r), nil
	case Gzip6Compression, Gzip9Compression: // level affects writing only
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	case SnappyCompression:
		return io.NopCloser(snappy.NewReader(r)), nil
	}
	return nil, errBadCompression
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
