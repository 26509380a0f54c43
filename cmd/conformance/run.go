package main

import (
	"context"
	"net/http"

	"github.com/elnoro/ocr-conformance/internal/domain"
)

// runHandler triggers an immediate suite run, outside the watch interval.
func (app *webApp) runHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.errorResponse(r, w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	ctx := context.Background()
	report, err := app.suite.Run(ctx)
	if err != nil {
		app.serverError(r, w, err)
		return
	}

	app.respondJSON(r, w, http.StatusOK, runSummary(report))
}

type runSummaryResponse struct {
	RunID    string `json:"run_id"`
	Ok       bool   `json:"ok"`
	ProbeOK  bool   `json:"probe_ok"`
	Passed   int    `json:"passed"`
	Rejected int    `json:"rejected"`
	Failed   int    `json:"failed"`
}

func runSummary(report domain.SuiteReport) runSummaryResponse {
	return runSummaryResponse{
		RunID:    report.RunID,
		Ok:       report.Ok(),
		ProbeOK:  report.Probe.OK,
		Passed:   report.Passed(),
		Rejected: report.Rejected(),
		Failed:   report.Failed(),
	}
}
