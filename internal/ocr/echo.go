package ocr

import (
	"strings"

	"github.com/elnoro/ocr-conformance/internal/domain"
)

// Echo is a test double engine: it "extracts" the words encoded in the file
// name, so a harness run against the stub service is deterministic.
type Echo struct{}

func NewEcho() Echo {
	return Echo{}
}

func (Echo) Extract(fileName string, _ []byte) (string, error) {
	return strings.Join(domain.ExpectedWords(fileName), " "), nil
}
