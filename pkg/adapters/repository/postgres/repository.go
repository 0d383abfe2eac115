package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS enlaces (
	id SERIAL PRIMARY KEY,
	titulo TEXT,
	url TEXT
)`

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(ctx context.Context, dsn string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, domain.Storage("open", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, domain.Storage("ping", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, domain.Storage("migrate", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Link, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, COALESCE(titulo, ''), COALESCE(url, '') FROM enlaces ORDER BY id DESC`)
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

func (r *PostgresRepository) Create(ctx context.Context, link *domain.Link) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO enlaces (titulo, url) VALUES ($1, $2) RETURNING id`,
		link.Title, link.URL,
	).Scan(&link.ID)
	return domain.Storage("create", err)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Link, error) {
	var link domain.Link
	err := r.pool.QueryRow(ctx,
		`SELECT id, COALESCE(titulo, ''), COALESCE(url, '') FROM enlaces WHERE id = $1`, id,
	).Scan(&link.ID, &link.Title, &link.URL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.Storage("get", err)
	}
	return &link, nil
}

func (r *PostgresRepository) Update(ctx context.Context, link *domain.Link) error {
	_, err := r.pool.Exec(ctx, `UPDATE enlaces SET titulo = $1, url = $2 WHERE id = $3`, link.Title, link.URL, link.ID)
	return domain.Storage("update", err)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM enlaces WHERE id = $1`, id)
	return domain.Storage("delete", err)
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	return domain.Storage("ping", r.pool.Ping(ctx))
}

func (r *PostgresRepository) Close() error {
	if r == nil || r.pool == nil {
		return nil
	}
	r.pool.Close()
	return nil
}
