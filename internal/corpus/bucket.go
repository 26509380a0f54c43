package corpus

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/elnoro/ocr-conformance/internal/domain"
)

//go:generate moq -out bucket_moq_test.go . bucketClient
type bucketClient interface {
	ListKeys() ([]string, error)
	Download(key string) (*os.File, error)
}

// BucketSource is a corpus stored in an object bucket. Samples are pulled
// down to temp files so the upload client can stream them like local ones;
// Cleanup removes the downloads.
type BucketSource struct {
	client bucketClient
	log    *slog.Logger

	tempFiles []string
}

func NewBucketSource(client bucketClient, log *slog.Logger) *BucketSource {
	return &BucketSource{client: client, log: log.WithGroup("CORPUS")}
}

func (s *BucketSource) Cases() ([]domain.SampleCase, error) {
	keys, err := s.client.ListKeys()
	if err != nil {
		return nil, fmt.Errorf("listing sample bucket, %w", err)
	}

	cases := make([]domain.SampleCase, 0, len(keys))
	for _, key := range keys {
		f, err := s.client.Download(key)
		if f != nil {
			s.tempFiles = append(s.tempFiles, f.Name())
			if closeErr := f.Close(); closeErr != nil {
				s.log.Error("closing downloaded sample", slog.String("err", closeErr.Error()))
			}
		}
		if err != nil {
			return nil, fmt.Errorf("fetching sample %s, %w", key, err)
		}

		name := path.Base(key)
		cases = append(cases, domain.SampleCase{
			FileName:      name,
			Path:          f.Name(),
			ExpectedWords: domain.ExpectedWords(name),
		})
	}

	s.log.Info("bucket corpus assembled", slog.Int("cases", len(cases)))

	return cases, nil
}

// Cleanup removes every temp file downloaded so far.
func (s *BucketSource) Cleanup() {
	for _, name := range s.tempFiles {
		if err := os.Remove(name); err != nil {
			s.log.Error("removing temp file",
				slog.String("file", name),
				slog.String("err", err.Error()),
			)
		}
	}
	s.tempFiles = nil
}
