package gochunk

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultProcessedDir is the directory Process writes chunk files to when
// none is configured.
const DefaultProcessedDir = "processed_data"

// ProcessOptions define processing pipeline options.
type ProcessOptions struct {
	// The compression codec to use.
	// Default: NoCompression.
	Compression Compression

	// The packing strategy to use.
	// Default: NoPacking.
	Packing Packing

	// ProcessedDir is the output directory for chunk files, created if
	// absent. Default: "processed_data".
	ProcessedDir string
}

func (o *ProcessOptions) norm() *ProcessOptions {
	var oo ProcessOptions
	if o != nil {
		oo = *o
	}

	if oo.ProcessedDir == "" {
		oo.ProcessedDir = DefaultProcessedDir
	}
	return &oo
}

// FindSGFFiles scans the given directories and returns the paths of all
// regular files with an .sgf extension, in directory order. A missing or
// unreadable directory is an error, not skipped.
func FindSGFFiles(dirs ...string) ([]string, error) {
	var result []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, de := range entries {
			if !de.IsDir() && filepath.Ext(de.Name()) == ".sgf" {
				result = append(result, filepath.Join(dir, de.Name()))
			}
		}
	}
	return result, nil
}

// Process drains an example stream, partitions it into a test set and
// bounded training chunks and writes each as its own chunk file under the
// processed directory. The estimate selects the partitioning branch, see
// SplitTestTraining. At most one training chunk plus the test set are held
// in memory at a time.
func Process(src ExampleSource, estimated int, o *ProcessOptions) error {
	o = o.norm()
	fo := &FileOptions{Compression: o.Compression, Packing: o.Packing}

	if err := os.MkdirAll(o.ProcessedDir, 0o777); err != nil {
		return err
	}

	test, training, err := SplitTestTraining(src, estimated)
	if err != nil {
		return err
	}

	if len(test) != 0 {
		name := filepath.Join(o.ProcessedDir, "test.chunk")
		if err := writeChunk(name, test, true, fo); err != nil {
			return err
		}
	}

	var num int
	for training.Next() {
		name := filepath.Join(o.ProcessedDir, fmt.Sprintf("train-%06d.chunk", num))
		if err := writeChunk(name, training.Chunk(), false, fo); err != nil {
			return err
		}
		num++
	}
	return training.Err()
}

func writeChunk(name string, examples []Example, isTest bool, o *FileOptions) error {
	ds, err := FromExamples(examples, isTest)
	if err != nil {
		return err
	}
	if err := ds.WriteFile(name, o); err != nil {
		return err
	}
	log.Println("process",
		"file", name,
		"examples", ds.Len())
	return nil
}
