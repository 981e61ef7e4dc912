// Package postgres stores post records in a PostgreSQL table.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"moodfeed/internal/domain/model"
	"moodfeed/internal/domain/repository/database"
	"moodfeed/pkg/logger"
)

type Config struct {
	URI               string `yaml:"uri"                      env:"DATABASE_URI"`
	Schema            string `yaml:"schema"                   env:"DB_SCHEMA"       env-default:"public"`
	TablePrefix       string `yaml:"table_prefix"             env:"DB_TABLE_PREFIX" env-default:"app_"`
	ConnectionTimeout int64  `yaml:"connection_timeout_in_ms" env-default:"10000"`
	QueryTimeout      int64  `yaml:"query_timeout_in_ms"      env-default:"5000"`
}

// DBTX is satisfied by a pool, a connection or a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db           DBTX
	pool         *pgxpool.Pool
	table        string
	indexName    string
	queryTimeout time.Duration
}

// Connect opens a pool and checks the server is reachable.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	logger.Info("connecting to postgres")

	poolCfg, err := pgxpool.ParseConfig(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parse postgres uri: %w", err)
	}
	poolCfg.ConnConfig.ConnectTimeout = time.Duration(cfg.ConnectionTimeout) * time.Millisecond

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := New(pool, cfg)
	s.pool = pool

	return s, nil
}

// New wraps an existing connection.
func New(db DBTX, cfg Config) *Store {
	name := cfg.TablePrefix + "files"

	return &Store{
		db:           db,
		table:        pgx.Identifier{cfg.Schema, name}.Sanitize(),
		indexName:    pgx.Identifier{name + "_created_at_idx"}.Sanitize(),
		queryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}
}

func (s *Store) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         uuid        PRIMARY KEY,
			kind       text        NOT NULL CHECK (kind IN ('text', 'image', 'video')),
			title      text        NOT NULL CHECK (title <> ''),
			path       text        NOT NULL,
			url        text        NOT NULL,
			size       bigint      NOT NULL DEFAULT 0,
			mime       text        NOT NULL,
			checksum   text,
			meta       jsonb,
			created_at timestamptz NOT NULL DEFAULT now(),
			created_by text
		)`, s.table)
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return handleError("create table", err)
	}

	idx := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (created_at DESC)`, s.indexName, s.table)
	if _, err := s.db.Exec(ctx, idx); err != nil {
		return handleError("create index", err)
	}

	return nil
}

func (s *Store) CreateFile(ctx context.Context, np model.NewPost) (model.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	meta, err := encodeMeta(np.Meta)
	if err != nil {
		return model.Post{}, err
	}

	id := uuid.NewString()
	query := fmt.Sprintf(`
		INSERT INTO %s (id, kind, title, path, url, size, mime, checksum, meta, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, NULLIF($10, ''))
		RETURNING created_at`, s.table)

	var createdAt time.Time
	err = s.db.QueryRow(ctx, query,
		id, string(np.Kind), np.Title, np.Path, np.URL, np.Size, np.Mime, np.Checksum, meta, np.CreatedBy,
	).Scan(&createdAt)
	if err != nil {
		return model.Post{}, handleError("create file", err)
	}

	return np.Build(id, createdAt.UTC()), nil
}

func (s *Store) ListFiles(ctx context.Context, kind model.Kind, limit int) ([]model.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if limit <= 0 {
		limit = database.DefaultListLimit
	}

	query := fmt.Sprintf(`
		SELECT id::text, kind, title, path, url, size, mime, COALESCE(checksum, ''), meta,
		       created_at, COALESCE(created_by, '')
		FROM %s
		WHERE ($1::text = '' OR kind = $1::text)
		ORDER BY created_at DESC
		LIMIT $2`, s.table)

	rows, err := s.db.Query(ctx, query, string(kind), limit)
	if err != nil {
		return nil, handleError("list files", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		var (
			p    model.Post
			kind string
			meta []byte
		)
		if err := rows.Scan(&p.ID, &kind, &p.Title, &p.Path, &p.URL, &p.Size, &p.Mime, &p.Checksum,
			&meta, &p.CreatedAt, &p.CreatedBy); err != nil {
			return nil, handleError("scan file", err)
		}

		p.Kind = model.Kind(kind)
		p.CreatedAt = p.CreatedAt.UTC()
		if p.Meta, err = decodeMeta(meta); err != nil {
			return nil, err
		}

		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, handleError("list files", err)
	}

	return posts, nil
}

func (s *Store) DeleteFile(ctx context.Context, id string) error {
	// Ids that are not UUIDs cannot exist in the table.
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table)
	if _, err := s.db.Exec(ctx, query, id); err != nil {
		return handleError("delete file", err)
	}

	return nil
}

func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}

	return nil
}

func encodeMeta(meta model.Meta) ([]byte, error) {
	if meta == nil {
		return nil, nil
	}

	b, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode meta: %w", err)
	}

	return b, nil
}

func decodeMeta(raw []byte) (model.Meta, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var meta model.Meta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("decode meta: %w", err)
	}

	return meta, nil
}

func handleError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: duplicate entry", operation)
		case "23502":
			return fmt.Errorf("%s: required field %s is missing", operation, pgErr.ColumnName)
		case "23514":
			return fmt.Errorf("%s: constraint %s violated", operation, pgErr.ConstraintName)
		case "42P01":
			return fmt.Errorf("%s: table does not exist", operation)
		default:
			return fmt.Errorf("%s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
