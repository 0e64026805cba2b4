package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dutchdutchdutch/signalscore/internal/scoring"
)

// ScoreRecord is one entry in a company's append-only score history.
type ScoreRecord struct {
	ID              uuid.UUID           `json:"id"`
	CompanyID       uuid.UUID           `json:"company_id"`
	Score           float64             `json:"score"`
	Category        string              `json:"category"`
	Signals         scoring.SignalData  `json:"signals"`
	ComponentScores map[string]float64  `json:"component_scores"`
	Evidence        []string            `json:"evidence"`
	ConfidenceScore float64             `json:"confidence_score"`
	CreatedAt       time.Time           `json:"created_at"`
}

// SaveScore appends a score to the company's history. Previous scores are
// never overwritten; trends read the full history.
func (db *DB) SaveScore(ctx context.Context, companyID uuid.UUID, score scoring.CompanyScore) (uuid.UUID, error) {
	signalsJSON, err := json.Marshal(score.Signals)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal signals: %w", err)
	}
	componentsJSON, err := json.Marshal(score.ComponentScores)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal component scores: %w", err)
	}
	evidenceJSON, err := json.Marshal(score.Evidence)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal evidence: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO scores (company_id, score, category, signals, component_scores, evidence, confidence_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		companyID, score.Score, score.Category.String(), signalsJSON, componentsJSON, evidenceJSON, score.ConfidenceScore,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save score: %w", err)
	}
	return id, nil
}

// LatestScore retrieves the most recent score for a company. Returns nil
// when the company has never been scored.
func (db *DB) LatestScore(ctx context.Context, companyID uuid.UUID) (*ScoreRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, company_id, score, category, signals, component_scores, evidence, confidence_score, created_at
		 FROM scores WHERE company_id = $1
		 ORDER BY created_at DESC LIMIT 1`,
		companyID,
	)
	record, err := scanScore(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest score: %w", err)
	}
	return record, nil
}

// ListScores retrieves a company's score history, most recent first.
func (db *DB) ListScores(ctx context.Context, companyID uuid.UUID, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, company_id, score, category, signals, component_scores, evidence, confidence_score, created_at
		 FROM scores WHERE company_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		companyID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		record, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScore(row rowScanner) (*ScoreRecord, error) {
	var (
		record         ScoreRecord
		signalsJSON    []byte
		componentsJSON []byte
		evidenceJSON   []byte
	)
	err := row.Scan(&record.ID, &record.CompanyID, &record.Score, &record.Category,
		&signalsJSON, &componentsJSON, &evidenceJSON, &record.ConfidenceScore, &record.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(signalsJSON, &record.Signals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signals: %w", err)
	}
	if err := json.Unmarshal(componentsJSON, &record.ComponentScores); err != nil {
		return nil, fmt.Errorf("failed to unmarshal component scores: %w", err)
	}
	if err := json.Unmarshal(evidenceJSON, &record.Evidence); err != nil {
		return nil, fmt.Errorf("failed to unmarshal evidence: %w", err)
	}
	return &record, nil
}
