package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elnoro/ocr-conformance/internal/domain"
)

//go:generate moq -out suite_runner_moq_test.go . suite
type suite interface {
	Run(context.Context) (domain.SuiteReport, error)
}

// SuiteRunner re-runs the conformance suite on an interval, for watching a
// deployed service over time.
type SuiteRunner struct {
	suite suite
	log   *slog.Logger

	interval time.Duration
}

func NewSuiteRunner(s suite, interval time.Duration, log *slog.Logger) *SuiteRunner {
	return &SuiteRunner{suite: s, interval: interval, log: log}
}

func (r *SuiteRunner) Start(ctx context.Context) error {
	r.log.Info("starting conformance watch")
	timer := time.NewTimer(0) // starting immediately
	for {
		select {
		case <-timer.C:
			report, err := r.suite.Run(ctx)
			if err != nil {
				return fmt.Errorf("running suite, %w", err)
			}

			if report.Ok() {
				r.log.Info("suite passed",
					slog.String("run", report.RunID),
					slog.Int("passed", report.Passed()),
					slog.Int("rejected", report.Rejected()),
				)
			} else {
				r.log.Error("suite failed",
					slog.String("run", report.RunID),
					slog.Int("failed", report.Failed()),
					slog.Bool("probe_ok", report.Probe.OK),
				)
			}

			timer = time.NewTimer(r.interval)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
