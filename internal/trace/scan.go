package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineLength     = 4 * 1024 * 1024
)

// Scan reads r line by line, classifies each line and calls fn for every
// recognized event in trace order. Unrecognized lines are skipped, and so
// are lines longer than maxLineLength.
func Scan(r io.Reader, c *Classifier, fn func(Event)) error {
	if c == nil {
		c = NewClassifier(DefaultRevision)
	}
	reader := bufio.NewReaderSize(r, initialLineBuffer)
	var line []byte
	oversize := false
	for {
		chunk, err := reader.ReadSlice('\n')
		if !oversize {
			if len(line)+len(chunk) > maxLineLength {
				oversize = true
				line = line[:0]
			} else {
				line = append(line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if !oversize {
			classifyLine(c, line, fn)
		}
		line = line[:0]
		oversize = false
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("scan trace: %w", err)
		}
	}
}

func classifyLine(c *Classifier, raw []byte, fn func(Event)) {
	line := strings.TrimRight(string(raw), "\r\n")
	line = strings.ReplaceAll(line, "\x00", "")
	if event, ok := c.Classify(line); ok {
		fn(event)
	}
}

// Open opens a trace artifact for reading. Files ending in .zst are
// decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".zst") {
		return file, nil
	}
	decoder, err := zstd.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("open zstd trace %s: %w", filepath.Base(path), err)
	}
	return &zstdFile{decoder: decoder, file: file}, nil
}

// zstdFile closes both the decoder and the underlying file.
type zstdFile struct {
	decoder *zstd.Decoder
	file    *os.File
}

func (z *zstdFile) Read(p []byte) (int, error) {
	return z.decoder.Read(p)
}

func (z *zstdFile) Close() error {
	z.decoder.Close()
	return z.file.Close()
}
