package transcribe

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Assembler collects per-chunk transcript parts in chunk order, persists
// each one as an individual text file, and joins them into a single full
// transcript file.
type Assembler struct {
	outDir   string
	partsDir string
	base     string
	parts    []Part
}

func NewAssembler(outDir, base string) (*Assembler, error) {
	if base == "" {
		return nil, fmt.Errorf("base name should not be empty")
	}

	partsDir := filepath.Join(outDir, base+"_parts")
	if err := os.MkdirAll(partsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create parts directory: %w", err)
	}

	return &Assembler{
		outDir:   outDir,
		partsDir: partsDir,
		base:     base,
	}, nil
}

// PartsDir returns the directory individual part files are written to.
func (a *Assembler) PartsDir() string {
	return a.partsDir
}

// FullPath returns the path the joined transcript is written to.
func (a *Assembler) FullPath() string {
	return filepath.Join(a.outDir, a.base+"_FULL.txt")
}

// Record appends part to the in-memory list and immediately persists it as
// an individual text file. It returns the written file's path.
func (a *Assembler) Record(part Part) (string, error) {
	path := filepath.Join(a.partsDir, part.Filename(a.base))
	if err := os.WriteFile(path, []byte(part.Text), 0600); err != nil {
		return "", fmt.Errorf("failed to write part file: %w", err)
	}

	a.parts = append(a.parts, part)

	return path, nil
}

// Finalize joins all recorded parts in index order, each prefixed with its
// range header, trims trailing whitespace, appends a single trailing
// newline and writes the result next to the parts directory. The output is
// byte-identical across repeated calls over the same recorded parts, and
// index ordering holds regardless of the order parts were recorded in.
func (a *Assembler) Finalize() (string, error) {
	parts := make([]Part, len(a.parts))
	copy(parts, a.parts)
	sort.Slice(parts, func(i, j int) bool {
		return parts[i].Index < parts[j].Index
	})

	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p.Header())
		sb.WriteString("\n")
		sb.WriteString(p.Text)
		sb.WriteString("\n\n")
	}
	joined := strings.TrimSpace(sb.String()) + "\n"

	path := a.FullPath()
	if err := os.WriteFile(path, []byte(joined), 0600); err != nil {
		return "", fmt.Errorf("failed to write full transcript: %w", err)
	}

	return path, nil
}
