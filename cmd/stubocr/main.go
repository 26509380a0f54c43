package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/elnoro/ocr-conformance/internal/ocr"
	"github.com/elnoro/ocr-conformance/internal/stubservice"
)

type Config struct {
	Port      int
	RPM       int
	Tesseract bool
}

func main() {
	_ = godotenv.Load()

	cfg := Config{}

	flag.IntVar(&cfg.Port, "port", 8080, "port to serve the stub ocr service on")
	flag.IntVar(&cfg.RPM, "rpm", 120, "allowed requests per minute per ip")
	flag.BoolVar(&cfg.Tesseract, "tesseract", false, "extract text with a local tesseract install instead of echoing file names")
	flag.Parse()

	logger := slog.Default()

	var engine stubservice.Engine = ocr.NewEcho()
	if cfg.Tesseract {
		t, err := ocr.Default()
		if err != nil {
			log.Fatal(err)
		}
		engine = t
	}

	service := stubservice.New(engine, cfg.RPM, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := serve(ctx, cfg.Port, service.Routes())
	if err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, port int, handler http.Handler) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownError := make(chan error)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(shutdownCtx)
	}()

	log.Println("starting stub ocr service on port", port)
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server listen&server err, %w", err)
	}

	err = <-shutdownError
	if err != nil {
		return fmt.Errorf("server shutdown err, %w", err)
	}

	log.Println("server stopped")

	return nil
}
