package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brickforge/brickforge-api/internal/domain/entity"
	"github.com/brickforge/brickforge-api/internal/domain/repository"
)

type BuildRepository struct {
	pool *pgxpool.Pool
}

func NewBuildRepository(pool *pgxpool.Pool) *BuildRepository {
	return &BuildRepository{pool: pool}
}

func (r *BuildRepository) Create(ctx context.Context, b *entity.Build) error {
	bricks, err := json.Marshal(b.Bricks)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO builds (user_id, name, bricks)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, b.UserID, b.Name, bricks)

	return row.Scan(&b.ID, &b.CreatedAt)
}

func (r *BuildRepository) GetByID(ctx context.Context, id string) (*entity.Build, error) {
	b := &entity.Build{}
	var bricks []byte

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, name, created_at, bricks
		FROM builds
		WHERE id = $1
	`, id)

	if err := row.Scan(&b.ID, &b.UserID, &b.Name, &b.CreatedAt, &bricks); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		// A malformed id can never match a row; report it the same way.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(bricks, &b.Bricks); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *BuildRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Build, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, created_at, bricks
		FROM builds
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	builds := make([]*entity.Build, 0, limit)
	for rows.Next() {
		b := &entity.Build{}
		var bricks []byte
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.CreatedAt, &bricks); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(bricks, &b.Bricks); err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

var _ repository.BuildRepository = (*BuildRepository)(nil)
