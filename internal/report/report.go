package report

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrOutput reports that an artifact could not be written.
var ErrOutput = errors.New("cannot write output")

// Writer renders analysis artifacts into a single output directory.
// Filenames carry a UTC timestamp so repeated runs never overwrite
// earlier artifacts.
type Writer struct {
	Dir string
}

// NewWriter creates a Writer targeting dir. The directory is created
// lazily on first write.
func NewWriter(dir string) *Writer { return &Writer{Dir: dir} }

// Stamp formats t as the UTC timestamp embedded in artifact filenames.
func Stamp(t time.Time) string { return t.UTC().Format("20060102-150405") }

func (w *Writer) ensureDir() error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("create output dir %s: %w: %w", w.Dir, ErrOutput, err)
	}
	return nil
}
