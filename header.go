package gochunk

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the exact encoded size of a ChunkHeader in bytes.
const HeaderSize = 13

// ChunkHeader is the fixed-size descriptor prefixed to every chunk file.
// It is the sole source of truth for the payload size that follows it.
//
// The layout carries no version field. Extending the format requires a new,
// explicitly versioned header, not extra fields appended to this one.
type ChunkHeader struct {
	Count       int32 // number of examples in the chunk
	BoardSize   int32
	InputPlanes int32
	IsTest      bool
}

// MarshalBinary encodes the header as exactly HeaderSize bytes,
// little-endian.
func (h *ChunkHeader) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:], uint32(h.Count))
	binary.LittleEndian.PutUint32(buf[4:], uint32(h.BoardSize))
	binary.LittleEndian.PutUint32(buf[8:], uint32(h.InputPlanes))
	if h.IsTest {
		buf[12] = 1
	}
	return buf, nil
}

// UnmarshalBinary decodes a header from exactly HeaderSize bytes.
func (h *ChunkHeader) UnmarshalBinary(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("gochunk: invalid header length %d", len(data))
	}

	h.Count = int32(binary.LittleEndian.Uint32(data[0:]))
	h.BoardSize = int32(binary.LittleEndian.Uint32(data[4:]))
	h.InputPlanes = int32(binary.LittleEndian.Uint32(data[8:]))
	h.IsTest = data[12] != 0
	return nil
}
