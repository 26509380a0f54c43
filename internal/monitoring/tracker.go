package monitoring

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type Tracker struct {
	runCounter      prometheus.Counter
	passedCounter   prometheus.Counter
	rejectedCounter prometheus.Counter
	failedCounter   prometheus.Counter
}

func NewTracker() *Tracker {
	return &Tracker{
		runCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "conformance_run_count",
				Help: "No of conformance suite runs started",
			},
		),
		passedCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "conformance_case_passed_count",
				Help: "No of cases where every expected word was extracted",
			},
		),
		rejectedCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "conformance_case_rejected_count",
				Help: "No of cases rejected through the documented security contract",
			},
		),
		failedCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "conformance_case_failed_count",
				Help: "No of failed cases",
			},
		),
	}
}

func (t *Tracker) Register() error {
	for _, c := range []prometheus.Counter{t.runCounter, t.passedCounter, t.rejectedCounter, t.failedCounter} {
		err := prometheus.Register(c)
		if err != nil {
			return fmt.Errorf("registering conformance counter, %w", err)
		}
	}

	return nil
}

func (t *Tracker) OnRun() {
	t.runCounter.Inc()
}

func (t *Tracker) OnPassed() {
	t.passedCounter.Inc()
}

func (t *Tracker) OnRejected() {
	t.rejectedCounter.Inc()
}

func (t *Tracker) OnFailed() {
	t.failedCounter.Inc()
}
