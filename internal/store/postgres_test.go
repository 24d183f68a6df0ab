package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_SaveDiagnostic(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	r := sampleResult(model.TierA, 85, 90)
	mock.ExpectExec(`INSERT INTO diagnostics`).
		WithArgs(
			r.ID, r.Prospect.CompanyName, r.Prospect.ContactEmail, r.Prospect.Sector,
			string(r.Score.Tier), string(r.Archetype.ID), r.Score.Final,
			r.MeetingPrep.CloseProbability, r.SuggestedAmountMin, r.SuggestedAmountMax,
			pgxmock.AnyArg(), r.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.SaveDiagnostic(context.Background(), r))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetDiagnostic_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT result FROM diagnostics WHERE id = \$1`).
		WithArgs("missing-id").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetDiagnostic(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetDiagnostic(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	resultJSON := `{"diagnostic_id":"abc","score":{"score_final":72,"tier":"A"}}`
	mock.ExpectQuery(`SELECT result FROM diagnostics WHERE id = \$1`).
		WithArgs("abc").
		WillReturnRows(pgxmock.NewRows([]string{"result"}).AddRow([]byte(resultJSON)))

	got, err := s.GetDiagnostic(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, 72, got.Score.Final)
	assert.Equal(t, model.TierA, got.Score.Tier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListDiagnostics_TierFilter(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rows := pgxmock.NewRows([]string{"result"}).
		AddRow([]byte(`{"diagnostic_id":"one"}`)).
		AddRow([]byte(`{"diagnostic_id":"two"}`))

	mock.ExpectQuery(`SELECT result FROM diagnostics WHERE 1=1 AND tier = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("A", 100).
		WillReturnRows(rows)

	got, err := s.ListDiagnostics(context.Background(), Filter{Tier: model.TierA})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_HasRecentDiagnostic(t *testing.T) {
	s, mock := newMockPostgresStore(t)
	since := time.Now().UTC().Add(-5 * time.Minute)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM diagnostics`).
		WithArgs("maria@bancoandino.co", since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	recent, err := s.HasRecentDiagnostic(context.Background(), "maria@bancoandino.co", since)
	require.NoError(t, err)
	assert.True(t, recent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Analytics(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rows := pgxmock.NewRows([]string{"tier", "archetype", "sector", "score_final", "close_probability", "amount_min", "amount_max"}).
		AddRow("A", "traditional_giant", "🏦 Banca", 80, 90, int64(25_000_000), int64(45_000_000)).
		AddRow("C", "tire_kicker", "🛒 Retail", 20, 30, int64(0), int64(5_000_000))

	mock.ExpectQuery(`SELECT tier, archetype, sector, score_final, close_probability, amount_min, amount_max`).
		WillReturnRows(rows)

	data, err := s.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, data.TotalDiagnostics)
	assert.Equal(t, 1, data.TierACount)
	assert.InDelta(t, 50.0, data.AverageScore, 0.001)
	assert.Equal(t, int64(32_250_000), data.EstimatedPipelineValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
