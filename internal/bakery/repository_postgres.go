package bakery

import (
	"context"
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getBakeryBySlugQuery = `
		SELECT id, slug, confectionery_name, settings, user_id, created_at, updated_at
		FROM bakeries
		WHERE slug = $1
	`
	getBakeryByIDQuery = `
		SELECT id, slug, confectionery_name, settings, user_id, created_at, updated_at
		FROM bakeries
		WHERE id = $1
	`
	slugExistsQuery   = `SELECT EXISTS (SELECT 1 FROM bakeries WHERE slug = $1)`
	insertBakeryQuery = `
		INSERT INTO bakeries (id, slug, confectionery_name, settings, user_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (Bakery, error) {
	return r.get(ctx, getBakeryBySlugQuery, slug)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (Bakery, error) {
	return r.get(ctx, getBakeryByIDQuery, id)
}

func (r *PostgresRepository) get(ctx context.Context, query, arg string) (Bakery, error) {
	var (
		b         Bakery
		settings  []byte
		userID    sql.NullString
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&b.ID, &b.Slug, &b.Name, &settings, &userID, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Bakery{}, ErrNotFound
		}
		return Bakery{}, fmt.Errorf("get bakery: %w", err)
	}
	b.Settings = settings
	b.UserID = userID.String
	b.CreatedAt = createdAt.String
	b.UpdatedAt = updatedAt.String
	return b, nil
}

func (r *PostgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, slugExistsQuery, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, b Bakery) (Bakery, error) {
	settings := b.Settings
	if len(settings) == 0 {
		settings = []byte(`{}`)
	}
	_, err := r.db.ExecContext(ctx, insertBakeryQuery,
		b.ID, b.Slug, b.Name, []byte(settings), b.UserID, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return Bakery{}, fmt.Errorf("insert bakery: %w", err)
	}
	return b, nil
}
