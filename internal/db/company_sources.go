package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dutchdutchdutch/signalscore/internal/sources"
)

// CompanySource is one URL that contributed evidence to a company's score.
type CompanySource struct {
	ID         uuid.UUID     `json:"id"`
	CompanyID  uuid.UUID     `json:"company_id"`
	URL        string        `json:"url"`
	SourceType sources.Label `json:"source_type"`
	CreatedAt  time.Time     `json:"created_at"`
}

// SaveCompanySources records the harvested source URLs for a company. URLs
// already on file are left as-is.
func (db *DB) SaveCompanySources(ctx context.Context, companyID uuid.UUID, records map[string]sources.Label) error {
	for url, label := range records {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO company_sources (company_id, url, source_type)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (company_id, url) DO NOTHING`,
			companyID, url, label.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to save company source %s: %w", url, err)
		}
	}
	return nil
}

// ListCompanySources retrieves the source URLs on file for a company.
func (db *DB) ListCompanySources(ctx context.Context, companyID uuid.UUID) ([]CompanySource, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, company_id, url, source_type, created_at
		 FROM company_sources WHERE company_id = $1
		 ORDER BY created_at`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list company sources: %w", err)
	}
	defer rows.Close()

	var result []CompanySource
	for rows.Next() {
		var s CompanySource
		var rawType string
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.URL, &rawType, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company source: %w", err)
		}
		s.SourceType = sources.Parse(rawType)
		result = append(result, s)
	}
	return result, rows.Err()
}
