package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/brickforge/brickforge-api/internal/domain/entity"
	"github.com/brickforge/brickforge-api/internal/domain/repository"
	"github.com/brickforge/brickforge-api/pkg/helpers"
)

// historyLimit caps how many builds a history call returns.
const historyLimit = 10

// Principal is the caller's identity as presented on the request. Today it is
// a raw user id the client holds after login; a token scheme can replace how
// it is derived without touching the build operations.
type Principal struct {
	UserID string
}

type BuildService struct {
	Builds repository.BuildRepository
	Events *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewBuildService(builds repository.BuildRepository, events *helpers.RabbitPublisher, logger *logrus.Logger) *BuildService {
	return &BuildService{Builds: builds, Events: events, Logger: logger}
}

// Save creates a new build for the principal. Only presence of the user id is
// checked, not that it belongs to an existing user; that matches the original
// contract, where referential integrity is advisory.
func (s *BuildService) Save(ctx context.Context, p Principal, name string, bricks []entity.Brick) (*entity.Build, error) {
	if p.UserID == "" {
		return nil, unauthorizedErr(MsgUserIDRequired)
	}
	if bricks == nil {
		bricks = []entity.Brick{}
	}

	b := &entity.Build{UserID: p.UserID, Name: name, Bricks: bricks}
	if err := s.Builds.Create(ctx, b); err != nil {
		return nil, internalErr(err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"build_id": b.ID, "user_id": b.UserID, "bricks": len(b.Bricks)}).Info("build saved")
	}
	publishEvent(ctx, s.Events, s.Logger, Event{Type: EventBuildSaved, UserID: b.UserID, BuildID: b.ID})
	return b, nil
}

// History returns up to 10 of the principal's builds, newest first. A user
// with no builds gets an empty slice, not an error.
func (s *BuildService) History(ctx context.Context, p Principal) ([]*entity.Build, error) {
	if p.UserID == "" {
		return nil, unauthorizedErr(MsgUserIDRequired)
	}
	builds, err := s.Builds.ListByUser(ctx, p.UserID, historyLimit)
	if err != nil {
		return nil, internalErr(err)
	}
	return builds, nil
}

// Load fetches a build by id. There is deliberately no ownership check: any
// caller who knows the id may load the build.
func (s *BuildService) Load(ctx context.Context, id string) (*entity.Build, error) {
	b, err := s.Builds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundErr(MsgBuildNotFound)
		}
		return nil, internalErr(err)
	}
	return b, nil
}
