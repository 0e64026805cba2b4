package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dutchdutchdutch/signalscore/internal/scoring"
)

// fakeRow feeds canned column values into scanScore.
type fakeRow struct {
	values []any
}

func (r *fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch v := d.(type) {
		case *uuid.UUID:
			*v = r.values[i].(uuid.UUID)
		case *float64:
			*v = r.values[i].(float64)
		case *string:
			*v = r.values[i].(string)
		case *[]byte:
			*v = r.values[i].([]byte)
		case *time.Time:
			*v = r.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanScore_RoundTrip(t *testing.T) {
	signals := scoring.SignalData{
		AIKeywords: 12,
		ToolStack:  []string{"pytorch", "mlflow"},
	}
	signalsJSON, err := json.Marshal(signals)
	require.NoError(t, err)
	componentsJSON, err := json.Marshal(map[string]float64{"ai_keywords": 30.0})
	require.NoError(t, err)
	evidenceJSON, err := json.Marshal([]string{"12 AI keyword points across 3 sources"})
	require.NoError(t, err)

	id := uuid.New()
	companyID := uuid.New()
	created := time.Now().UTC().Truncate(time.Second)

	record, err := scanScore(&fakeRow{values: []any{
		id, companyID, 61.5, "operational",
		signalsJSON, componentsJSON, evidenceJSON, 0.8, created,
	}})
	require.NoError(t, err)

	assert.Equal(t, id, record.ID)
	assert.Equal(t, companyID, record.CompanyID)
	assert.Equal(t, 61.5, record.Score)
	assert.Equal(t, "operational", record.Category)
	assert.Equal(t, 12, record.Signals.AIKeywords)
	assert.Equal(t, []string{"pytorch", "mlflow"}, record.Signals.ToolStack)
	assert.Equal(t, 30.0, record.ComponentScores["ai_keywords"])
	assert.Len(t, record.Evidence, 1)
	assert.Equal(t, 0.8, record.ConfidenceScore)
	assert.Equal(t, created, record.CreatedAt)
}

func TestScanScore_MalformedSignals(t *testing.T) {
	_, err := scanScore(&fakeRow{values: []any{
		uuid.New(), uuid.New(), 10.0, "lagging",
		[]byte("{bad"), []byte("{}"), []byte("[]"), 0.5, time.Now(),
	}})
	assert.Error(t, err)
}
