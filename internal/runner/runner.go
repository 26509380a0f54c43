package runner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elnoro/ocr-conformance/internal/domain"
	"github.com/elnoro/ocr-conformance/internal/monitoring"
	"github.com/elnoro/ocr-conformance/internal/oracle"
	"github.com/elnoro/ocr-conformance/internal/upload"
)

//go:generate moq -out runner_moq_test.go . uploader resultSink
type uploader interface {
	Probe(ctx context.Context) (int, error)
	Upload(ctx context.Context, filePath, fileName string) (upload.Response, error)
}

type resultSink interface {
	Save(ctx context.Context, result domain.CaseResult) error
}

// CaseRunner drives a conformance run: a liveness probe followed by one
// upload per sample, strictly sequential. A failed case never stops the
// loop; each case is an independent unit.
type CaseRunner struct {
	uploader uploader
	sink     resultSink

	log     *slog.Logger
	tracker *monitoring.Tracker
}

func NewCaseRunner(up uploader, sink resultSink, log *slog.Logger, tracker *monitoring.Tracker) *CaseRunner {
	return &CaseRunner{
		uploader: up,
		sink:     sink,
		log:      log.WithGroup("RUNNER"),
		tracker:  tracker,
	}
}

func (r *CaseRunner) Run(ctx context.Context, cases []domain.SampleCase) domain.SuiteReport {
	report := domain.SuiteReport{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}
	r.tracker.OnRun()

	report.Probe = r.checkLiveness(ctx)

	for _, c := range cases {
		result := r.runCase(ctx, c)
		result.RunID = report.RunID

		switch result.Outcome {
		case domain.OutcomePassed:
			r.tracker.OnPassed()
			r.log.Info("case passed", slog.String("file", c.FileName))
		case domain.OutcomeRejected:
			r.tracker.OnRejected()
			r.log.Info("case rejected by security contract",
				slog.String("file", c.FileName),
				slog.String("reason", result.Diagnostic),
			)
		case domain.OutcomeFailed:
			r.tracker.OnFailed()
			r.log.Error("case failed",
				slog.String("file", c.FileName),
				slog.String("diagnostic", result.Diagnostic),
			)
		}

		if err := r.sink.Save(ctx, result); err != nil {
			r.log.Error("saving case result", slog.String("err", err.Error()))
		}

		report.Results = append(report.Results, result)
	}

	report.FinishedAt = time.Now()

	return report
}

// checkLiveness accepts any received HTTP status in [100, 600). A transport
// failure fails this check only, not the case loop.
func (r *CaseRunner) checkLiveness(ctx context.Context) domain.ProbeCheck {
	status, err := r.uploader.Probe(ctx)
	if err != nil {
		return domain.ProbeCheck{OK: false, Diagnostic: fmt.Sprintf("no response from server: %v", err)}
	}

	if status < 100 || status >= 600 {
		return domain.ProbeCheck{
			OK:         false,
			StatusCode: status,
			Diagnostic: fmt.Sprintf("probe status code %d out of range", status),
		}
	}

	return domain.ProbeCheck{OK: true, StatusCode: status}
}

func (r *CaseRunner) runCase(ctx context.Context, c domain.SampleCase) domain.CaseResult {
	result := domain.CaseResult{
		FileName:      c.FileName,
		ExpectedWords: domain.Words(c.ExpectedWords),
		CheckedAt:     time.Now(),
	}

	resp, err := r.uploader.Upload(ctx, c.Path, c.FileName)
	if err != nil {
		result.Outcome = domain.OutcomeFailed
		result.Diagnostic = err.Error()

		return result
	}

	verdict := oracle.Classify(resp)

	switch verdict.Kind {
	case domain.VerdictPass:
		result.ExtractedText = verdict.ExtractedText
		if missing, ok := missingWord(c.ExpectedWords, verdict.ExtractedText); !ok {
			result.Outcome = domain.OutcomeFailed
			result.Diagnostic = fmt.Sprintf(
				"word %q not found in ocr result for %s, expected words: %v, got text: %q",
				missing, c.FileName, c.ExpectedWords, verdict.ExtractedText,
			)

			return result
		}
		result.Outcome = domain.OutcomePassed
	case domain.VerdictExpectedRejection:
		result.Outcome = domain.OutcomeRejected
		result.Diagnostic = verdict.Reason
	case domain.VerdictFailure:
		result.Outcome = domain.OutcomeFailed
		result.Diagnostic = verdict.Detail
	}

	return result
}

// missingWord returns the first expected word absent from the extracted
// text. Both sides are already lower-cased, so the check is plain substring
// containment.
func missingWord(expected []string, extracted string) (string, bool) {
	for _, word := range expected {
		if !strings.Contains(extracted, word) {
			return word, false
		}
	}

	return "", true
}
