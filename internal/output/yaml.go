// Package output serializes a grouping to YAML.
package output

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/standardbeagle/wordnum/internal/aggregate"
	"github.com/standardbeagle/wordnum/internal/subst"
)

// Stdout is the output destination that writes to standard output instead of
// a file.
const Stdout = "-"

// DefaultFilename derives the output filename from the run parameters, e.g.
// suffix_6_9.yaml.
func DefaultFilename(mode subst.Mode, minLen, maxLen int) string {
	return fmt.Sprintf("%s_%d_%d.yaml", mode, minLen, maxLen)
}

// Write serializes g to w as a top-level mapping from digit-string to word
// sequence. Keys are emitted in sorted order for reproducibility, and digit
// strings are quoted by the encoder so values like "053" survive a YAML
// round-trip as strings.
func Write(w io.Writer, g aggregate.Grouping) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(map[string][]string(g)); err != nil {
		return fmt.Errorf("failed to encode grouping: %w", err)
	}
	return nil
}

// WriteFile serializes g to dest, or to stdout when dest is "-".
func WriteFile(dest string, g aggregate.Grouping) error {
	if dest == Stdout {
		return Write(os.Stdout, g)
	}
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", dest, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
