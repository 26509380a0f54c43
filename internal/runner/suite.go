package runner

import (
	"context"
	"fmt"

	"github.com/elnoro/ocr-conformance/internal/domain"
)

//go:generate moq -out suite_moq_test.go . caseSource
type caseSource interface {
	Cases() ([]domain.SampleCase, error)
}

// Suite ties a corpus source to the case runner. The corpus is re-read on
// every run so new sample files are picked up in watch mode.
type Suite struct {
	source caseSource
	runner *CaseRunner
}

func NewSuite(source caseSource, runner *CaseRunner) *Suite {
	return &Suite{source: source, runner: runner}
}

func (s *Suite) Run(ctx context.Context) (domain.SuiteReport, error) {
	cases, err := s.source.Cases()
	if err != nil {
		// no cases can be derived, the only fatal condition in a run
		return domain.SuiteReport{}, fmt.Errorf("enumerating corpus, %w", err)
	}

	return s.runner.Run(ctx, cases), nil
}
