package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elnoro/ocr-conformance/internal/domain"
	"github.com/elnoro/ocr-conformance/internal/monitoring"
)

//go:generate moq -out web_moq_test.go . resultsRepo conformanceSuite
type resultsRepo interface {
	Recent(ctx context.Context, page, perPage int) ([]domain.CaseResult, error)
}

type conformanceSuite interface {
	Run(ctx context.Context) (domain.SuiteReport, error)
}

type webApp struct {
	config Config
	log    *log.Logger

	results resultsRepo
	suite   conformanceSuite

	tracker *monitoring.Tracker
}

func (app *webApp) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthcheck", app.healthcheckHandler)
	mux.Handle("/debug/vars", expvar.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/api/results", app.resultsHandler)
	mux.HandleFunc("/api/run", app.runHandler)

	return mux
}

func (app *webApp) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.config.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownError := make(chan error)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(shutdownCtx)
	}()

	app.log.Println("starting server on port", app.config.Port)
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server listen&server err, %w", err)
	}

	err = <-shutdownError
	if err != nil {
		return fmt.Errorf("server shutdown err, %w", err)
	}

	app.log.Println("server stopped")

	return nil
}
