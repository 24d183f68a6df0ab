package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS diagnostics (
	id                TEXT PRIMARY KEY,
	company_name      TEXT NOT NULL,
	contact_email     TEXT NOT NULL,
	sector            TEXT NOT NULL,
	tier              TEXT NOT NULL,
	archetype         TEXT NOT NULL,
	score_final       INTEGER NOT NULL,
	close_probability INTEGER NOT NULL,
	amount_min        INTEGER NOT NULL,
	amount_max        INTEGER NOT NULL,
	result            TEXT NOT NULL,
	created_at        DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_diagnostics_tier ON diagnostics(tier);
CREATE INDEX IF NOT EXISTS idx_diagnostics_sector ON diagnostics(sector);
CREATE INDEX IF NOT EXISTS idx_diagnostics_email ON diagnostics(contact_email);
CREATE INDEX IF NOT EXISTS idx_diagnostics_created_at ON diagnostics(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveDiagnostic(ctx context.Context, result *model.DiagnosticResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal result")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO diagnostics
		 (id, company_name, contact_email, sector, tier, archetype, score_final,
		  close_probability, amount_min, amount_max, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.Prospect.CompanyName,
		result.Prospect.ContactEmail,
		result.Prospect.Sector,
		string(result.Score.Tier),
		string(result.Archetype.ID),
		result.Score.Final,
		result.MeetingPrep.CloseProbability,
		result.SuggestedAmountMin,
		result.SuggestedAmountMax,
		string(resultJSON),
		result.CreatedAt,
	)
	return eris.Wrapf(err, "sqlite: insert diagnostic %s", result.ID)
}

func (s *SQLiteStore) GetDiagnostic(ctx context.Context, id string) (*model.DiagnosticResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT result FROM diagnostics WHERE id = ?`, id,
	)

	var resultJSON string
	err := row.Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, eris.Errorf("diagnostic not found: %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get diagnostic")
	}
	return unmarshalResult(resultJSON)
}

func (s *SQLiteStore) ListDiagnostics(ctx context.Context, filter Filter) ([]model.DiagnosticResult, error) {
	query := `SELECT result FROM diagnostics WHERE 1=1`
	var args []any

	if filter.Tier != "" {
		query += ` AND tier = ?`
		args = append(args, string(filter.Tier))
	}
	if filter.Archetype != "" {
		query += ` AND archetype = ?`
		args = append(args, string(filter.Archetype))
	}
	if filter.Sector != "" {
		query += ` AND sector = ?`
		args = append(args, filter.Sector)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list diagnostics")
	}
	defer rows.Close()

	var results []model.DiagnosticResult
	for rows.Next() {
		var resultJSON string
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan diagnostic")
		}
		r, err := unmarshalResult(resultJSON)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, eris.Wrap(rows.Err(), "sqlite: list diagnostics iterate")
}

func (s *SQLiteStore) HasRecentDiagnostic(ctx context.Context, contactEmail string, since time.Time) (bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM diagnostics WHERE contact_email = ? AND created_at > ?`,
		contactEmail, since,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, eris.Wrap(err, "sqlite: check recent diagnostic")
	}
	return n > 0, nil
}

func (s *SQLiteStore) Analytics(ctx context.Context) (*model.DashboardData, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tier, archetype, sector, score_final, close_probability, amount_min, amount_max
		 FROM diagnostics`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: analytics")
	}
	defer rows.Close()

	var stats []statsRow
	for rows.Next() {
		var r statsRow
		if err := rows.Scan(&r.tier, &r.archetype, &r.sector, &r.score, &r.closeProb, &r.amountMin, &r.amountMax); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan analytics row")
		}
		stats = append(stats, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: analytics iterate")
	}
	return aggregate(stats), nil
}

func unmarshalResult(resultJSON string) (*model.DiagnosticResult, error) {
	var r model.DiagnosticResult
	if err := json.Unmarshal([]byte(resultJSON), &r); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal diagnostic result")
	}
	return &r, nil
}
