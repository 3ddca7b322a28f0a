/*
Package gochunk implements a compact, self-describing chunk file format for
Go training data. A stream of labeled examples (board-position feature
tensors, move labels, game outcomes) is partitioned into a test set and
bounded-size training chunks, each persisted as its own file and read back
fully into memory.

# Data Structure Documentation

# Chunk file

A chunk file is a fixed header followed by two packed payloads. The whole
stream, header included, may be wrapped by a compression codec.

	Chunk file layout:
	+------------------+-----------------+---------------+
	| header (13 Byte) | feature payload | label payload |
	+------------------+-----------------+---------------+

	Header:
	+----------------+---------------------+-----------------------+------------------+
	| count (4 Byte) | board size (4 Byte) | input planes (4 Byte) | is-test (1 Byte) |
	+----------------+---------------------+-----------------------+------------------+

All multi-byte fields are little-endian. The header is the sole source of
truth for the payload sizes: the feature payload holds
count * board_size * board_size * input_planes float32 elements, the label payload
count * board_size * board_size int16 elements, each reduced by the configured packing
strategy.

# Packing

Payload elements are stored under one of three strategies: none (native
width, 4 Byte per feature and 2 Byte per label element), half (1 Byte per
element, 1 where the element equals one and 0 otherwise) or full (1 bit per
element under the same rule, MSB-first, the final byte padded with zero
bits). The half and full strategies assume inputs already quantized to
{0, 1} and are lossy for everything else.

# Chunking

Corpora larger than memory are processed in stream order: the first 100000
examples become the test set and the remainder is grouped into chunks of at
most 4096 examples, so only one chunk is resident at a time. Small corpora
are split exactly instead, a positional first third for test and the rest
as a single training chunk.
*/
package gochunk
