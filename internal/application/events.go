package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brickforge/brickforge-api/pkg/helpers"
)

// Lifecycle event types consumed by cmd/event_worker.
const (
	EventUserCreated  = "user.created"
	EventUserLoggedIn = "user.logged_in"
	EventBuildSaved   = "build.saved"
)

// Event is the JSON payload published to the lifecycle queue.
type Event struct {
	Type     string    `json:"type"`
	UserID   string    `json:"user_id,omitempty"`
	Username string    `json:"username,omitempty"`
	BuildID  string    `json:"build_id,omitempty"`
	At       time.Time `json:"at"`
}

// publishEvent is best-effort: a missing or failing broker never fails the
// request that triggered the event.
func publishEvent(ctx context.Context, pub *helpers.RabbitPublisher, logger *logrus.Logger, ev Event) {
	if pub == nil {
		return
	}
	ev.At = time.Now().UTC()
	if err := pub.PublishJSON(ctx, ev); err != nil && logger != nil {
		logger.WithError(err).WithField("event", ev.Type).Warn("event publish failed")
	}
}
