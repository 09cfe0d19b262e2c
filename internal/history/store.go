package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	pgdriver "github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

// ImportRecord is one successful recipe import.
type ImportRecord struct {
	bun.BaseModel `bun:"table:recipe_imports"`

	ID          int64     `bun:"id,pk,autoincrement" json:"-"`
	Title       string    `bun:"title" json:"title"`
	SourceURL   string    `bun:"source_url" json:"source_url"`
	CookidooURL string    `bun:"cookidoo_url" json:"cookidoo_url"`
	RecipeID    string    `bun:"recipe_id" json:"recipe_id"`
	Locale      string    `bun:"locale" json:"locale"`
	Servings    int       `bun:"servings" json:"servings"`
	Steps       int       `bun:"steps" json:"steps"`
	ImportedAt  time.Time `bun:"imported_at,nullzero,default:now()" json:"imported_at"`
}

type Config struct {
	DSN   string
	Debug bool
}

// Store keeps a log of imported recipes in Postgres. It is optional: the
// server runs without one when no DSN is configured.
type Store struct {
	db *bun.DB
}

func NewStore(cfg Config) (*Store, error) {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN))
	sqldb := sql.OpenDB(connector)
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Bootstrap creates the imports table when missing.
func (s *Store) Bootstrap(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*ImportRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Record appends one import to the log.
func (s *Store) Record(ctx context.Context, record *ImportRecord) error {
	if record.ImportedAt.IsZero() {
		record.ImportedAt = time.Now().UTC()
	}
	_, err := s.db.NewInsert().Model(record).Exec(ctx)
	return err
}

// Recent returns the latest imports, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]ImportRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var records []ImportRecord
	err := s.db.NewSelect().
		Model(&records).
		OrderExpr("imported_at DESC, id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}
