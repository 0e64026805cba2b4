package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Company is one scored organization, identified by its registrable root
// domain. careers.acme.com and acme.com/about are the same company.
type Company struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Domain     string     `json:"domain"`
	URL        string     `json:"url"`
	CareersURL string     `json:"careers_url,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// GetCompanyByDomain retrieves a company by root domain. Returns nil when
// no company exists for the domain.
func (db *DB) GetCompanyByDomain(ctx context.Context, domain string) (*Company, error) {
	var c Company
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, domain, url, careers_url, created_at, updated_at
		 FROM companies WHERE domain = $1`,
		domain,
	).Scan(&c.ID, &c.Name, &c.Domain, &c.URL, &c.CareersURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company by domain: %w", err)
	}
	return &c, nil
}

// GetOrCreateCompany finds the company for a root domain, creating it if
// absent. The URL is normalized to the root domain; the careers URL keeps
// whatever the caller scored from. An existing company with a missing
// careers URL picks it up.
func (db *DB) GetOrCreateCompany(ctx context.Context, name, domain, careersURL string) (*Company, error) {
	rootURL := "https://" + domain

	existing, err := db.GetCompanyByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.CareersURL == "" && careersURL != "" {
			_, err := db.pool.Exec(ctx,
				`UPDATE companies SET careers_url = $1, updated_at = NOW() WHERE id = $2`,
				careersURL, existing.ID,
			)
			if err != nil {
				return nil, fmt.Errorf("failed to update company careers URL: %w", err)
			}
			existing.CareersURL = careersURL
		}
		return existing, nil
	}

	var c Company
	err = db.pool.QueryRow(ctx,
		`INSERT INTO companies (name, domain, url, careers_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (domain) DO UPDATE SET updated_at = NOW()
		 RETURNING id, name, domain, url, careers_url, created_at, updated_at`,
		name, domain, rootURL, careersURL,
	).Scan(&c.ID, &c.Name, &c.Domain, &c.URL, &c.CareersURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &c, nil
}

// ListCompanies retrieves companies ordered by creation, newest first.
func (db *DB) ListCompanies(ctx context.Context, limit int) ([]Company, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, domain, url, careers_url, created_at, updated_at
		 FROM companies ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Domain, &c.URL, &c.CareersURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
