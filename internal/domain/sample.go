package domain

import (
	"path/filepath"
	"strings"
)

// SampleCase is one conformance case: a sample file plus the words the
// service is expected to find in it, encoded in the file name.
type SampleCase struct {
	FileName      string
	Path          string
	ExpectedWords []string
}

func NewSampleCase(path string) SampleCase {
	name := filepath.Base(path)

	return SampleCase{
		FileName:      name,
		Path:          path,
		ExpectedWords: ExpectedWords(name),
	}
}

// ExpectedWords derives the ground truth from a file name: the extension is
// stripped, the rest is lower-cased and split on underscores. Order and
// duplicates are preserved, empty segments included. Never returns an empty
// slice.
func ExpectedWords(fileName string) []string {
	base := fileName
	if dot := strings.LastIndex(base, "."); dot != -1 {
		base = base[:dot]
	}

	return strings.Split(strings.ToLower(base), "_")
}
