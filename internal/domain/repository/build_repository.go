package repository

import (
	"context"

	"github.com/brickforge/brickforge-api/internal/domain/entity"
)

// BuildRepository defines the interface for build-related database operations.
// Builds are append-only; there is no update or delete.
type BuildRepository interface {
	Create(ctx context.Context, b *entity.Build) error
	GetByID(ctx context.Context, id string) (*entity.Build, error)
	// ListByUser returns the newest builds for a user, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Build, error)
}
