package gochunk

import (
	"encoding/binary"
	"fmt"
	"math"
)

// PackedLen returns the number of payload bytes used to store n elements of
// the given native width (4 for float32 features, 2 for int16 labels) under
// packing p.
func PackedLen(n, width int, p Packing) int {
	switch p {
	case NoPacking:
		return n * width
	case HalfPacking:
		return n
	case FullPacking:
		return (n + 7) / 8
	}
	return 0
}

// PackFloat32 appends the packed representation of src to dst and returns
// the extended buffer.
func PackFloat32(dst []byte, src []float32, p Packing) ([]byte, error) {
	switch p {
	case NoPacking:
		for _, v := range src {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
		}
	case HalfPacking:
		for _, v := range src {
			dst = append(dst, oneByte(v == 1))
		}
	case FullPacking:
		dst = appendPackedBits(dst, len(src), func(i int) bool { return src[i] == 1 })
	default:
		return nil, errBadPacking
	}
	return dst, nil
}

// UnpackFloat32 decodes exactly n elements from src. The element count must
// be supplied by the caller since half/full payloads are not self-describing.
func UnpackFloat32(src []byte, n int, p Packing) ([]float32, error) {
	if err := checkPackedLen(src, n, 4, p); err != nil {
		return nil, err
	}

	out := make([]float32, n)
	switch p {
	case NoPacking:
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
		}
	case HalfPacking:
		for i, b := range src {
			out[i] = float32(b)
		}
	case FullPacking:
		for i := range out { // trailing padding bits are never visited
			if src[i/8]&bitMask(i) != 0 {
				out[i] = 1
			}
		}
	}
	return out, nil
}

// PackInt16 appends the packed representation of src to dst and returns the
// extended buffer.
func PackInt16(dst []byte, src []int16, p Packing) ([]byte, error) {
	switch p {
	case NoPacking:
		for _, v := range src {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
		}
	case HalfPacking:
		for _, v := range src {
			dst = append(dst, oneByte(v == 1))
		}
	case FullPacking:
		dst = appendPackedBits(dst, len(src), func(i int) bool { return src[i] == 1 })
	default:
		return nil, errBadPacking
	}
	return dst, nil
}

// UnpackInt16 decodes exactly n elements from src.
func UnpackInt16(src []byte, n int, p Packing) ([]int16, error) {
	if err := checkPackedLen(src, n, 2, p); err != nil {
		return nil, err
	}

	out := make([]int16, n)
	switch p {
	case NoPacking:
		for i := range out {
			out[i] = int16(binary.LittleEndian.Uint16(src[i*2:]))
		}
	case HalfPacking:
		for i, b := range src {
			out[i] = int16(b)
		}
	case FullPacking:
		for i := range out {
			if src[i/8]&bitMask(i) != 0 {
				out[i] = 1
			}
		}
	}
	return out, nil
}

// --------------------------------------------------------------------

// appendPackedBits packs n booleans into dst 8-per-byte, MSB-first.
func appendPackedBits(dst []byte, n int, isSet func(int) bool) []byte {
	for i := 0; i < n; i += 8 {
		var b byte
		for j := 0; j < 8 && i+j < n; j++ {
			if isSet(i + j) {
				b |= 1 << uint(7-j)
			}
		}
		dst = append(dst, b)
	}
	return dst
}

func bitMask(i int) byte { return 1 << uint(7-i%8) }

func checkPackedLen(src []byte, n, width int, p Packing) error {
	if !p.isValid() {
		return errBadPacking
	}
	if want := PackedLen(n, width, p); len(src) != want {
		return fmt.Errorf("%w: %d payload bytes for %d elements, expected %d", ErrShapeMismatch, len(src), n, want)
	}
	return nil
}

func oneByte(set bool) byte {
	if set {
		return 1
	}
	return 0
}
