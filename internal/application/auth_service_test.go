package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickforge/brickforge-api/internal/domain/entity"
	"github.com/brickforge/brickforge-api/internal/domain/repository"
	"github.com/brickforge/brickforge-api/pkg/helpers"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	createErr  error
	getErr     error
	nextID     int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byUsername[u.Username]; ok {
		return repository.ErrDuplicate
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now()
	cp := *u
	f.byUsername[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	return appErr.Kind
}

func TestSignupValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{"missing both", "", "", MsgFieldsRequired},
		{"missing password", "builder", "", MsgFieldsRequired},
		{"missing username", "", "secret123", MsgFieldsRequired},
		{"short username", "ab", "secret123", MsgUsernameTooShort},
		{"short password", "builder", "12345", MsgPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Signup(ctx, tt.username, tt.password)
			require.Error(t, err)
			assert.Equal(t, KindValidation, kindOf(t, err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "builder", "secret123"))

	// Conflict regardless of the password used.
	err := svc.Signup(ctx, "builder", "othersecret")
	require.Error(t, err)
	assert.Equal(t, KindConflict, kindOf(t, err))
	assert.Equal(t, MsgUsernameTaken, err.Error())
}

func TestSignupStoresSaltedHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "alice", "secret123"))
	require.NoError(t, svc.Signup(ctx, "bob", "secret123"))

	a := repo.byUsername["alice"]
	b := repo.byUsername["bob"]
	assert.NotEqual(t, "secret123", a.PasswordHash)
	assert.True(t, strings.HasPrefix(a.PasswordHash, "$2"))
	// Same password, different salts.
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(a.PasswordHash, "secret123"))
	assert.True(t, helpers.CompareHashAndPassword(b.PasswordHash, "secret123"))
}

func TestLoginAfterSignup(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "builder", "secret123"))

	res, err := svc.Login(ctx, "builder", "secret123")
	require.NoError(t, err)
	assert.Equal(t, repo.byUsername["builder"].ID, res.UserID)
	assert.Equal(t, "builder", res.Username)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), nil, nil)

	_, err := svc.Login(context.Background(), "", "secret123")
	require.Error(t, err)
	assert.Equal(t, KindValidation, kindOf(t, err))
	assert.Equal(t, MsgFieldsRequired, err.Error())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "builder", "secret123"))

	_, unknownErr := svc.Login(ctx, "nosuchuser", "secret123")
	_, wrongPassErr := svc.Login(ctx, "builder", "wrongpass")

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.Equal(t, KindUnauthorized, kindOf(t, unknownErr))
	assert.Equal(t, KindUnauthorized, kindOf(t, wrongPassErr))
	// Byte-identical messages; nothing distinguishes which half was wrong.
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	assert.Equal(t, MsgInvalidCredentials, unknownErr.Error())
}

func TestSignupRepoFailureIsInternal(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("connection refused")
	svc := NewAuthService(repo, nil, nil)

	err := svc.Signup(context.Background(), "builder", "secret123")
	require.Error(t, err)
	assert.Equal(t, KindInternal, kindOf(t, err))
	// The driver error is wrapped for the log, not exposed as the message.
	var appErr *Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, MsgInternal, appErr.Message)
}
