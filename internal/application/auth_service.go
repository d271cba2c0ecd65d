package application

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/brickforge/brickforge-api/internal/domain/entity"
	"github.com/brickforge/brickforge-api/internal/domain/repository"
	"github.com/brickforge/brickforge-api/pkg/helpers"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

type AuthService struct {
	Users  repository.UserRepository
	Events *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, events *helpers.RabbitPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Events: events, Logger: logger}
}

// LoginResult carries the caller-held identity. No token is issued; the
// client keeps the id and presents it on subsequent requests.
type LoginResult struct {
	UserID   string
	Username string
}

// Signup validates the credentials, hashes the password and creates the user.
// The plaintext password is never stored.
func (s *AuthService) Signup(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return validationErr(MsgFieldsRequired)
	}
	if utf8.RuneCountInString(username) < minUsernameLen {
		return validationErr(MsgUsernameTooShort)
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return validationErr(MsgPasswordTooShort)
	}

	if _, err := s.Users.GetByUsername(ctx, username); err == nil {
		return conflictErr(MsgUsernameTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return internalErr(err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return internalErr(err)
	}

	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		// The unique index is the backstop for concurrent signups.
		if errors.Is(err, repository.ErrDuplicate) {
			return conflictErr(MsgUsernameTaken)
		}
		return internalErr(err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user created")
	}
	publishEvent(ctx, s.Events, s.Logger, Event{Type: EventUserCreated, UserID: u.ID, Username: u.Username})
	return nil
}

// Login verifies the credentials. Unknown username and wrong password return
// the identical error so the response reveals nothing about which half failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, validationErr(MsgFieldsRequired)
	}

	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, unauthorizedErr(MsgInvalidCredentials)
		}
		return nil, internalErr(err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, unauthorizedErr(MsgInvalidCredentials)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user logged in")
	}
	publishEvent(ctx, s.Events, s.Logger, Event{Type: EventUserLoggedIn, UserID: u.ID, Username: u.Username})
	return &LoginResult{UserID: u.ID, Username: u.Username}, nil
}
