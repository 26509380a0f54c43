package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Outcome of a single case after the runner applied its assertions.
type Outcome string

const (
	OutcomePassed   Outcome = "passed"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

type CaseResult struct {
	RunID         string    `db:"run_id"`
	FileName      string    `db:"file_name"`
	ExpectedWords Words     `db:"expected_words"`
	Outcome       Outcome   `db:"outcome"`
	Diagnostic    string    `db:"diagnostic"`
	ExtractedText string    `db:"extracted_text"`
	CheckedAt     time.Time `db:"checked_at"`
}

// Words is stored as a single underscore-joined column, mirroring the naming
// convention the corpus uses.
type Words []string

func (w Words) String() string {
	return strings.Join(w, "_")
}

func (w Words) Value() (driver.Value, error) {
	return w.String(), nil
}

func (w *Words) Scan(src any) error {
	s, ok := src.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into Words", src)
	}
	*w = strings.Split(s, "_")

	return nil
}

// ProbeCheck is the liveness check result. StatusCode is only meaningful
// when OK and Diagnostic is empty.
type ProbeCheck struct {
	OK         bool
	StatusCode int
	Diagnostic string
}

type SuiteReport struct {
	RunID string
	Probe ProbeCheck

	Results []CaseResult

	StartedAt  time.Time
	FinishedAt time.Time
}

func (r *SuiteReport) Passed() int  { return r.count(OutcomePassed) }
func (r *SuiteReport) Rejected() int { return r.count(OutcomeRejected) }
func (r *SuiteReport) Failed() int  { return r.count(OutcomeFailed) }

// Ok reports whether the whole run is acceptable: the service responded to
// the probe and no case failed.
func (r *SuiteReport) Ok() bool {
	return r.Probe.OK && r.Failed() == 0
}

func (r *SuiteReport) count(o Outcome) int {
	n := 0
	for i := range r.Results {
		if r.Results[i].Outcome == o {
			n++
		}
	}

	return n
}
