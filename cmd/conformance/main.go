package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/elnoro/ocr-conformance/internal/app"
	"github.com/elnoro/ocr-conformance/internal/corpus"
	"github.com/elnoro/ocr-conformance/internal/db"
	"github.com/elnoro/ocr-conformance/internal/domain"
	"github.com/elnoro/ocr-conformance/internal/monitoring"
	"github.com/elnoro/ocr-conformance/internal/runner"
	"github.com/elnoro/ocr-conformance/internal/s3wrapper"
	"github.com/elnoro/ocr-conformance/internal/upload"
)

const version = "1.0.0"

type Config struct {
	Endpoint string `validate:"required,url"`
	OCRPath  string `validate:"required"`

	SamplesDir string
	DSN        string

	ProbeTimeout  time.Duration
	UploadTimeout time.Duration

	Watch    bool
	Interval time.Duration
	Port     int

	S3 S3Config
}

type S3Config struct {
	Key      string
	Secret   string
	Endpoint string
	Region   string
	Bucket   string
	Insecure bool
}

type corpusSource interface {
	Cases() ([]domain.SampleCase, error)
}

func main() {
	_ = godotenv.Load()

	cfg := Config{}

	flag.StringVar(&cfg.Endpoint, "endpoint", envOr("OCR_ENDPOINT", "http://localhost:8080"), "base url of the ocr service under test")
	flag.StringVar(&cfg.OCRPath, "ocr-path", envOr("OCR_PATH", "/ocr"), "upload path on the service")
	flag.StringVar(&cfg.SamplesDir, "samples", envOr("SAMPLES_DIR", "sample_files"), "path to the folder with the sample files")
	flag.StringVar(&cfg.DSN, "dsn", os.Getenv("DB_DSN"), "connection string for the results database (optional)")

	flag.DurationVar(&cfg.ProbeTimeout, "probe-timeout", upload.DefaultProbeTimeout, "timeout for the liveness probe")
	flag.DurationVar(&cfg.UploadTimeout, "upload-timeout", upload.DefaultUploadTimeout, "timeout for a single upload")

	flag.BoolVar(&cfg.Watch, "watch", false, "keep re-running the suite and serve results over http")
	flag.DurationVar(&cfg.Interval, "interval", 5*time.Minute, "how often to re-run the suite in watch mode")
	flag.IntVar(&cfg.Port, "port", 4000, "port for the watch-mode http server")

	flag.StringVar(&cfg.S3.Key, "s3.key", os.Getenv("S3_KEY"), "s3 key (enables the bucket corpus)")
	flag.StringVar(&cfg.S3.Secret, "s3.secret", os.Getenv("S3_SECRET"), "s3 secret")
	flag.StringVar(&cfg.S3.Endpoint, "s3.endpoint", os.Getenv("S3_ENDPOINT"), "s3 endpoint")
	flag.StringVar(&cfg.S3.Region, "s3.region", "eu-west1", "s3 region")
	flag.StringVar(&cfg.S3.Bucket, "s3.bucket", os.Getenv("S3_BUCKET"), "s3 bucket with the sample corpus")
	flag.BoolVar(&cfg.S3.Insecure, "s3.insecure", false, "disable ssl for s3")
	flag.Parse()

	err := validateConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.Default()

	tracker := monitoring.NewTracker()
	err = tracker.Register()
	if err != nil {
		log.Fatal(err)
	}

	source, cleanup, err := newSource(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	var results *db.ResultRepo
	caseRunner := runner.NewCaseRunner(
		upload.NewClient(cfg.Endpoint, cfg.OCRPath, cfg.ProbeTimeout, cfg.UploadTimeout, logger),
		db.NullSink{},
		logger,
		tracker,
	)
	if cfg.DSN != "" {
		conn, err := sqlx.Connect("pgx", cfg.DSN)
		if err != nil {
			log.Fatal(err)
		}
		results = db.NewResultRepo(conn)
		caseRunner = runner.NewCaseRunner(
			upload.NewClient(cfg.Endpoint, cfg.OCRPath, cfg.ProbeTimeout, cfg.UploadTimeout, logger),
			results,
			logger,
			tracker,
		)
	}

	suite := runner.NewSuite(source, caseRunner)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.Watch {
		runOnce(ctx, suite)
		return
	}

	webApp := &webApp{
		config:  cfg,
		log:     log.Default(),
		results: results,
		suite:   suite,
		tracker: tracker,
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- app.NewSuiteRunner(suite, cfg.Interval, logger).Start(ctx)
	}()
	go func() {
		errCh <- webApp.serve(ctx)
	}()

	err = <-errCh
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func runOnce(ctx context.Context, suite *runner.Suite) {
	report, err := suite.Run(ctx)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("run %s: %d passed, %d rejected, %d failed, probe ok: %v",
		report.RunID, report.Passed(), report.Rejected(), report.Failed(), report.Probe.OK)

	if !report.Ok() {
		os.Exit(1)
	}
}

func newSource(cfg Config, logger *slog.Logger) (corpusSource, func(), error) {
	if cfg.S3.Bucket == "" {
		return corpus.NewDirSource(cfg.SamplesDir), func() {}, nil
	}

	bucket, err := s3wrapper.NewFromSecrets(
		cfg.S3.Key, cfg.S3.Secret, cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.Bucket, cfg.S3.Insecure, logger,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("creating bucket corpus, %w", err)
	}

	src := corpus.NewBucketSource(bucket, logger)

	return src, src.Cleanup, nil
}

func validateConfig(cfg Config) error {
	validate := validator.New()
	err := validate.Struct(cfg)
	if err != nil {
		return err
	}

	if cfg.SamplesDir == "" && cfg.S3.Bucket == "" {
		return errors.New("either -samples or -s3.bucket must be set")
	}
	if cfg.Watch && cfg.DSN == "" {
		return errors.New("watch mode needs -dsn to record results")
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
