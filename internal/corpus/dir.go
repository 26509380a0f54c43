// Package corpus builds the file -> expected-words mapping once per run,
// before any request is made. Sample names are the ground truth, so the
// listing is flat: no recursion and no extension filtering.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elnoro/ocr-conformance/internal/domain"
)

// DirSource is a corpus stored in a local directory.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Cases() ([]domain.SampleCase, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing sample dir %s, %w", s.dir, err)
	}

	var cases []domain.SampleCase //nolint:prealloc
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		cases = append(cases, domain.NewSampleCase(filepath.Join(s.dir, entry.Name())))
	}

	return cases, nil
}
