package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/andes-consulting/readiness-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies it in
// tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS diagnostics (
	id                TEXT PRIMARY KEY,
	company_name      TEXT NOT NULL,
	contact_email     TEXT NOT NULL,
	sector            TEXT NOT NULL,
	tier              TEXT NOT NULL,
	archetype         TEXT NOT NULL,
	score_final       INTEGER NOT NULL,
	close_probability INTEGER NOT NULL,
	amount_min        BIGINT NOT NULL,
	amount_max        BIGINT NOT NULL,
	result            JSONB NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_diagnostics_tier ON diagnostics(tier);
CREATE INDEX IF NOT EXISTS idx_diagnostics_sector ON diagnostics(sector);
CREATE INDEX IF NOT EXISTS idx_diagnostics_email ON diagnostics(contact_email);
CREATE INDEX IF NOT EXISTS idx_diagnostics_created_at ON diagnostics(created_at);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveDiagnostic(ctx context.Context, result *model.DiagnosticResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal result")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO diagnostics
		 (id, company_name, contact_email, sector, tier, archetype, score_final,
		  close_probability, amount_min, amount_max, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
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
		resultJSON,
		result.CreatedAt,
	)
	return eris.Wrapf(err, "postgres: insert diagnostic %s", result.ID)
}

func (s *PostgresStore) GetDiagnostic(ctx context.Context, id string) (*model.DiagnosticResult, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT result FROM diagnostics WHERE id = $1`, id,
	)

	var resultJSON []byte
	err := row.Scan(&resultJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, eris.Errorf("diagnostic not found: %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get diagnostic")
	}
	return unmarshalResult(string(resultJSON))
}

func (s *PostgresStore) ListDiagnostics(ctx context.Context, filter Filter) ([]model.DiagnosticResult, error) {
	query := `SELECT result FROM diagnostics WHERE 1=1`
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Tier != "" {
		query += ` AND tier = ` + arg(string(filter.Tier))
	}
	if filter.Archetype != "" {
		query += ` AND archetype = ` + arg(string(filter.Archetype))
	}
	if filter.Sector != "" {
		query += ` AND sector = ` + arg(filter.Sector)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ` + arg(limit)

	if filter.Offset > 0 {
		query += ` OFFSET ` + arg(filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list diagnostics")
	}
	defer rows.Close()

	var results []model.DiagnosticResult
	for rows.Next() {
		var resultJSON []byte
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, eris.Wrap(err, "postgres: scan diagnostic")
		}
		r, err := unmarshalResult(string(resultJSON))
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, eris.Wrap(rows.Err(), "postgres: list diagnostics iterate")
}

func (s *PostgresStore) HasRecentDiagnostic(ctx context.Context, contactEmail string, since time.Time) (bool, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM diagnostics WHERE contact_email = $1 AND created_at > $2`,
		contactEmail, since,
	)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, eris.Wrap(err, "postgres: check recent diagnostic")
	}
	return n > 0, nil
}

func (s *PostgresStore) Analytics(ctx context.Context) (*model.DashboardData, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT tier, archetype, sector, score_final, close_probability, amount_min, amount_max
		 FROM diagnostics`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: analytics")
	}
	defer rows.Close()

	var stats []statsRow
	for rows.Next() {
		var r statsRow
		if err := rows.Scan(&r.tier, &r.archetype, &r.sector, &r.score, &r.closeProb, &r.amountMin, &r.amountMax); err != nil {
			return nil, eris.Wrap(err, "postgres: scan analytics row")
		}
		stats = append(stats, r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: analytics iterate")
	}
	return aggregate(stats), nil
}
