package gochunk

import (
	"fmt"
	"io"
	"math/rand"
	"os"
)

// Example is a single training datum: a board-position feature tensor, the
// move played from it and the final game outcome. Examples are produced by
// an external feature extractor and are immutable once created.
type Example struct {
	BoardSize   int
	InputPlanes int
	Features    []float32 // board_size * board_size * input_planes, row-major
	Move        int       // flattened move coordinate in [0, board_size*board_size)
	Result      float32   // game outcome
}

// FileOptions define chunk file serialization options.
type FileOptions struct {
	// The compression codec to use.
	// Default: NoCompression.
	Compression Compression

	// The packing strategy to use.
	// Default: NoPacking.
	Packing Packing
}

func (o *FileOptions) norm() *FileOptions {
	var oo FileOptions
	if o != nil {
		oo = *o
	}
	return &oo
}

// --------------------------------------------------------------------

// DataSet is a fixed-length collection of examples materialized as parallel
// flat arrays: features, one-hot move labels and game results. Results are
// kept in memory only and are never persisted.
//
// A DataSet owns a batching cursor and is not safe for concurrent use.
type DataSet struct {
	features []float32 // n * board_size * board_size * input_planes
	labels   []int16   // n * board_size * board_size, one-hot
	results  []float32 // n, training-time only

	size        int
	boardSize   int
	inputPlanes int
	isTest      bool

	epochPos int
	rnd      *rand.Rand
}

// NewDataSet wraps pre-built parallel arrays. The results slice may be nil;
// otherwise it must hold one entry per example.
func NewDataSet(features []float32, labels []int16, results []float32, boardSize, inputPlanes int, isTest bool) (*DataSet, error) {
	if boardSize < 1 || inputPlanes < 1 {
		return nil, fmt.Errorf("%w: board size %d, input planes %d", ErrShapeMismatch, boardSize, inputPlanes)
	}

	featRow := boardSize * boardSize * inputPlanes
	labelRow := boardSize * boardSize
	if len(features)%featRow != 0 {
		return nil, fmt.Errorf("%w: feature array length %d is not a multiple of %d", ErrShapeMismatch, len(features), featRow)
	}

	n := len(features) / featRow
	if len(labels) != n*labelRow {
		return nil, fmt.Errorf("%w: label array length %d, expected %d", ErrShapeMismatch, len(labels), n*labelRow)
	}
	if results != nil && len(results) != n {
		return nil, fmt.Errorf("%w: %d results for %d examples", ErrShapeMismatch, len(results), n)
	}

	return &DataSet{
		features: features,
		labels:   labels,
		results:  results,

		size:        n,
		boardSize:   boardSize,
		inputPlanes: inputPlanes,
		isTest:      isTest,
	}, nil
}

// FromExamples materializes a data set from a finite sequence of examples,
// converting dense move indices to one-hot label rows. All examples must
// agree on board size and plane count.
func FromExamples(examples []Example, isTest bool) (*DataSet, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: no examples", ErrShapeMismatch)
	}

	boardSize := examples[0].BoardSize
	inputPlanes := examples[0].InputPlanes
	featRow := boardSize * boardSize * inputPlanes
	labelRow := boardSize * boardSize

	features := make([]float32, 0, len(examples)*featRow)
	labels := make([]int16, len(examples)*labelRow)
	results := make([]float32, 0, len(examples))

	for i, ex := range examples {
		if ex.BoardSize != boardSize || ex.InputPlanes != inputPlanes || len(ex.Features) != featRow {
			return nil, fmt.Errorf("%w: example %d has shape (%d, %d, %d elements), expected (%d, %d, %d elements)",
				ErrShapeMismatch, i, ex.BoardSize, ex.InputPlanes, len(ex.Features), boardSize, inputPlanes, featRow)
		}
		if ex.Move < 0 || ex.Move >= labelRow {
			return nil, fmt.Errorf("%w: example %d move %d outside [0, %d)", ErrShapeMismatch, i, ex.Move, labelRow)
		}

		features = append(features, ex.Features...)
		labels[i*labelRow+ex.Move] = 1
		results = append(results, ex.Result)
	}

	return NewDataSet(features, labels, results, boardSize, inputPlanes, isTest)
}

// Len returns the number of examples.
func (d *DataSet) Len() int { return d.size }

// BoardSize returns the board edge length.
func (d *DataSet) BoardSize() int { return d.boardSize }

// InputPlanes returns the number of feature planes per position.
func (d *DataSet) InputPlanes() int { return d.inputPlanes }

// IsTest reports whether the data set belongs to the test partition.
func (d *DataSet) IsTest() bool { return d.isTest }

// Features exposes the flat feature array. The slice aliases internal
// storage and is invalidated by the next epoch-boundary shuffle.
func (d *DataSet) Features() []float32 { return d.features }

// Labels exposes the flat one-hot label array. The slice aliases internal
// storage and is invalidated by the next epoch-boundary shuffle.
func (d *DataSet) Labels() []int16 { return d.labels }

// Results exposes the game outcomes. Empty after a Read, since results are
// never persisted.
func (d *DataSet) Results() []float32 { return d.results }

// SetRand sets the random source used for epoch-boundary shuffles. When
// unset, the shared global source is used.
func (d *DataSet) SetRand(rnd *rand.Rand) { d.rnd = rnd }

// GetBatch returns the next batchSize contiguous feature and label rows.
// The batch must be strictly smaller than the data set. When fewer than
// batchSize rows remain in the current epoch, the remainder is discarded:
// both arrays are reshuffled under the same permutation and a new epoch
// begins. Returned slices alias internal storage and are only valid until
// the next shuffle.
func (d *DataSet) GetBatch(batchSize int) ([]float32, []int16, error) {
	if batchSize < 1 || batchSize >= d.size {
		return nil, nil, fmt.Errorf("%w: requested %d of %d", ErrBatchSize, batchSize, d.size)
	}

	if d.epochPos+batchSize > d.size {
		d.shuffle()
		d.epochPos = 0
	}

	featRow := d.boardSize * d.boardSize * d.inputPlanes
	labelRow := d.boardSize * d.boardSize
	start, end := d.epochPos, d.epochPos+batchSize
	d.epochPos = end

	return d.features[start*featRow : end*featRow], d.labels[start*labelRow : end*labelRow], nil
}

// shuffle applies a fresh random permutation to features and labels,
// keeping row pairing intact. Results are left untouched.
func (d *DataSet) shuffle() {
	var perm []int
	if d.rnd != nil {
		perm = d.rnd.Perm(d.size)
	} else {
		perm = rand.Perm(d.size)
	}

	featRow := d.boardSize * d.boardSize * d.inputPlanes
	labelRow := d.boardSize * d.boardSize
	features := make([]float32, len(d.features))
	labels := make([]int16, len(d.labels))
	for i, j := range perm {
		copy(features[i*featRow:(i+1)*featRow], d.features[j*featRow:(j+1)*featRow])
		copy(labels[i*labelRow:(i+1)*labelRow], d.labels[j*labelRow:(j+1)*labelRow])
	}
	d.features, d.labels = features, labels
}

// --------------------------------------------------------------------

// Write serializes the data set to w as a single chunk: header, packed
// feature payload, packed label payload, all passed through the configured
// compression codec.
func (d *DataSet) Write(w io.Writer, o *FileOptions) error {
	o = o.norm()
	if !o.Compression.isValid() {
		return errBadCompression
	}
	if !o.Packing.isValid() {
		return errBadPacking
	}

	header := ChunkHeader{
		Count:       int32(d.size),
		BoardSize:   int32(d.boardSize),
		InputPlanes: int32(d.inputPlanes),
		IsTest:      d.isTest,
	}
	head, err := header.MarshalBinary()
	if err != nil {
		return err
	}

	featBytes, err := PackFloat32(nil, d.features, o.Packing)
	if err != nil {
		return err
	}
	labelBytes, err := PackInt16(nil, d.labels, o.Packing)
	if err != nil {
		return err
	}

	cw, err := NewCompressor(w, o.Compression)
	if err != nil {
		return err
	}
	for _, p := range [][]byte{head, featBytes, labelBytes} {
		if _, err := cw.Write(p); err != nil {
			return err
		}
	}
	return cw.Close()
}

// WriteFile writes the data set to a chunk file at name.
func (d *DataSet) WriteFile(name string, o *FileOptions) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := d.Write(f, o); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Read reconstructs a data set from a chunk stream written with the same
// options. The stream must be fully consumed: any byte beyond the payload
// announced by the header fails with ErrTrailingData. The results array is
// always empty after a read.
func Read(r io.Reader, o *FileOptions) (*DataSet, error) {
	o = o.norm()
	if !o.Compression.isValid() {
		return nil, errBadCompression
	}
	if !o.Packing.isValid() {
		return nil, errBadPacking
	}

	cr, err := NewDecompressor(r, o.Compression)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	head := make([]byte, HeaderSize)
	if _, err := io.ReadFull(cr, head); err != nil {
		return nil, err
	}
	var header ChunkHeader
	if err := header.UnmarshalBinary(head); err != nil {
		return nil, err
	}
	if header.Count < 0 || header.BoardSize < 1 || header.InputPlanes < 1 {
		return nil, fmt.Errorf("%w: header (count=%d, board_size=%d, input_planes=%d)",
			ErrShapeMismatch, header.Count, header.BoardSize, header.InputPlanes)
	}

	numFeat := int(header.Count) * int(header.BoardSize) * int(header.BoardSize) * int(header.InputPlanes)
	numLabel := int(header.Count) * int(header.BoardSize) * int(header.BoardSize)

	buf := make([]byte, PackedLen(numFeat, 4, o.Packing))
	if _, err := io.ReadFull(cr, buf); err != nil {
		return nil, err
	}
	features, err := UnpackFloat32(buf, numFeat, o.Packing)
	if err != nil {
		return nil, err
	}

	buf = make([]byte, PackedLen(numLabel, 2, o.Packing))
	if _, err := io.ReadFull(cr, buf); err != nil {
		return nil, err
	}
	labels, err := UnpackInt16(buf, numLabel, o.Packing)
	if err != nil {
		return nil, err
	}

	var tail [1]byte
	if _, err := io.ReadFull(cr, tail[:]); err == nil {
		return nil, ErrTrailingData
	} else if err != io.EOF {
		return nil, err
	}

	return NewDataSet(features, labels, nil, int(header.BoardSize), int(header.InputPlanes), header.IsTest)
}

// ReadFile reads a chunk file written with the same options.
func ReadFile(name string, o *FileOptions) (*DataSet, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, o)
}
