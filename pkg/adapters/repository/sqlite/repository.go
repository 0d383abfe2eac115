package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/domain"
	_ "modernc.org/sqlite" // Local SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS enlaces (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	titulo TEXT,
	url TEXT
)`

const (
	DriverSQLite = "sqlite"
	DriverLibSQL = "libsql"
)

type SQLiteRepository struct {
	db     *sql.DB
	driver string
}

// DriverFor guesses the database/sql driver for dbURL when none is configured.
func DriverFor(dbURL string) string {
	if strings.HasPrefix(dbURL, "libsql://") || strings.HasPrefix(dbURL, "wss://") {
		return DriverLibSQL
	}
	return DriverSQLite
}

func NewSQLiteRepository(dbURL string) (*SQLiteRepository, error) {
	return NewRepository("", dbURL)
}

// NewRepository opens dbURL with driverName, falling back to DriverFor when
// driverName is empty.
func NewRepository(driverName, dbURL string) (*SQLiteRepository, error) {
	if driverName == "" {
		driverName = DriverFor(dbURL)
	}

	switch driverName {
	case DriverSQLite:
	case DriverLibSQL:
		if dbURL == "" {
			return nil, domain.Storage("open", errors.New("libsql needs a database URL"))
		}
	default:
		return nil, domain.Storage("open", fmt.Errorf("unsupported driver %q", driverName))
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, domain.Storage("open", err)
	}

	// A local file has a single writer anyway, and every connection to
	// :memory: would otherwise see its own empty database.
	if driverName == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, domain.Storage("ping", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, domain.Storage("migrate", err)
	}

	return &SQLiteRepository{db: db, driver: driverName}, nil
}

// Driver names the database/sql driver behind the repository.
func (r *SQLiteRepository) Driver() string {
	return r.driver
}

func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Link, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, COALESCE(titulo, ''), COALESCE(url, '') FROM enlaces ORDER BY id DESC`)
	if err != nil {
		return nil, domain.Storage("list", err)
	}
	defer rows.Close()

	links := []domain.Link{}
	for rows.Next() {
		var link domain.Link
		if err := rows.Scan(&link.ID, &link.Title, &link.URL); err != nil {
			return nil, domain.Storage("list", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage("list", err)
	}
	return links, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, link *domain.Link) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO enlaces (titulo, url) VALUES (?, ?)`, link.Title, link.URL)
	if err != nil {
		return domain.Storage("create", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Storage("create", err)
	}
	link.ID = id
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*domain.Link, error) {
	var link domain.Link
	err := r.db.QueryRowContext(ctx, `SELECT id, COALESCE(titulo, ''), COALESCE(url, '') FROM enlaces WHERE id = ?`, id).
		Scan(&link.ID, &link.Title, &link.URL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.Storage("get", err)
	}
	return &link, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, link *domain.Link) error {
	_, err := r.db.ExecContext(ctx, `UPDATE enlaces SET titulo = ?, url = ? WHERE id = ?`, link.Title, link.URL, link.ID)
	return domain.Storage("update", err)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM enlaces WHERE id = ?`, id)
	return domain.Storage("delete", err)
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return domain.Storage("ping", r.db.PingContext(ctx))
}

func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
