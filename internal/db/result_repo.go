package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/elnoro/ocr-conformance/internal/domain"
)

// ResultRepo persists the latest conformance result per sample file.
type ResultRepo struct {
	db *sqlx.DB
}

func NewResultRepo(db *sqlx.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

func (r *ResultRepo) Save(ctx context.Context, result domain.CaseResult) error {
	query := `INSERT INTO case_results (run_id, file_name, expected_words, outcome, diagnostic, extracted_text, checked_at)
			VALUES (:run_id, :file_name, :expected_words, :outcome, :diagnostic, :extracted_text, :checked_at)
			ON CONFLICT (file_name) DO UPDATE SET (run_id, expected_words, outcome, diagnostic, extracted_text, checked_at)
			    = (excluded.run_id, excluded.expected_words, excluded.outcome, excluded.diagnostic, excluded.extracted_text, excluded.checked_at)`
	_, err := r.db.NamedExecContext(ctx, query, result)
	if err != nil {
		return fmt.Errorf("saving result for file=%s, %w", result.FileName, err)
	}

	return nil
}

func (r *ResultRepo) Recent(ctx context.Context, page, perPage int) ([]domain.CaseResult, error) {
	query := `SELECT run_id, file_name, expected_words, outcome, diagnostic, extracted_text, checked_at
			FROM case_results ORDER BY checked_at DESC, file_name LIMIT $1 OFFSET $2`

	var results []domain.CaseResult
	err := r.db.SelectContext(ctx, &results, query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("listing recent results, %w", err)
	}

	return results, nil
}

// NullSink is used when no DSN is configured: results live only in the run
// report.
type NullSink struct{}

func (NullSink) Save(_ context.Context, _ domain.CaseResult) error {
	return nil
}
