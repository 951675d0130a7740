package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	"github.com/kitty100176/nmr-booking-system/internal/service/users/models"
	"github.com/kitty100176/nmr-booking-system/pkg/ptr"
)

type mockUserRepo struct {
	getByUsernameFunc     func(ctx context.Context, username string) (*domain.User, error)
	getByIDFunc           func(ctx context.Context, id int64) (*domain.User, error)
	listFunc              func(ctx context.Context) ([]*domain.User, error)
	updateInstrumentsFunc func(ctx context.Context, id int64, instruments []string) error
	updateActiveFunc      func(ctx context.Context, id int64, active bool) error
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, userstorage.ErrUserNotFound
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, userstorage.ErrUserNotFound
}

func (m *mockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*domain.User{}, nil
}

func (m *mockUserRepo) UpdateInstruments(ctx context.Context, id int64, instruments []string) error {
	if m.updateInstrumentsFunc != nil {
		return m.updateInstrumentsFunc(ctx, id, instruments)
	}
	return nil
}

func (m *mockUserRepo) UpdateActive(ctx context.Context, id int64, active bool) error {
	if m.updateActiveFunc != nil {
		return m.updateActiveFunc(ctx, id, active)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func adminAwareRepo(target *domain.User) *mockUserRepo {
	return &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			switch username {
			case "root":
				return &domain.User{Username: "root", IsAdmin: true, Active: true}, nil
			case "alice":
				return &domain.User{Username: "alice", IsAdmin: false, Active: true}, nil
			}
			return nil, userstorage.ErrUserNotFound
		},
		getByIDFunc: func(ctx context.Context, id int64) (*domain.User, error) {
			if target != nil && id == target.ID {
				return target, nil
			}
			return nil, userstorage.ErrUserNotFound
		},
	}
}

func TestUpdateInstruments_Success(t *testing.T) {
	repo := adminAwareRepo(&domain.User{ID: 7, Username: "bob", Active: true})

	var savedInstruments []string
	repo.updateInstrumentsFunc = func(ctx context.Context, id int64, instruments []string) error {
		savedInstruments = instruments
		return nil
	}

	s := NewService(repo, nopLogger{})

	err := s.UpdateInstruments(context.Background(), 7, &models.UpdateInstrumentsRequest{
		Requester:   "root",
		Instruments: []string{"60", "500"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"60", "500"}, savedInstruments)
}

func TestUpdateInstruments_NonAdminDenied(t *testing.T) {
	s := NewService(adminAwareRepo(&domain.User{ID: 7, Username: "bob", Active: true}), nopLogger{})

	err := s.UpdateInstruments(context.Background(), 7, &models.UpdateInstrumentsRequest{
		Requester:   "alice",
		Instruments: []string{"500"},
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateInstruments_UnknownInstrument(t *testing.T) {
	s := NewService(adminAwareRepo(&domain.User{ID: 7, Username: "bob", Active: true}), nopLogger{})

	err := s.UpdateInstruments(context.Background(), 7, &models.UpdateInstrumentsRequest{
		Requester:   "root",
		Instruments: []string{"900"},
	})

	require.ErrorIs(t, err, ErrUnknownInstrument)
}

func TestUpdateInstruments_InactiveTarget(t *testing.T) {
	s := NewService(adminAwareRepo(&domain.User{ID: 7, Username: "bob", Active: false}), nopLogger{})

	err := s.UpdateInstruments(context.Background(), 7, &models.UpdateInstrumentsRequest{
		Requester:   "root",
		Instruments: []string{"500"},
	})

	require.ErrorIs(t, err, ErrUserInactive)
}

func TestUpdateActive_Success(t *testing.T) {
	repo := adminAwareRepo(nil)

	var savedActive bool
	repo.updateActiveFunc = func(ctx context.Context, id int64, active bool) error {
		savedActive = active
		return nil
	}

	s := NewService(repo, nopLogger{})

	err := s.UpdateActive(context.Background(), 7, &models.UpdateActiveRequest{
		Requester: "root",
		Active:    ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, savedActive)
}

func TestUpdateActive_MissingFlag(t *testing.T) {
	s := NewService(adminAwareRepo(nil), nopLogger{})

	err := s.UpdateActive(context.Background(), 7, &models.UpdateActiveRequest{
		Requester: "root",
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_AdminOnly(t *testing.T) {
	repo := adminAwareRepo(nil)
	repo.listFunc = func(ctx context.Context) ([]*domain.User, error) {
		return []*domain.User{
			{ID: 1, Username: "root", IsAdmin: true, Active: true},
			{ID: 2, Username: "alice", Active: true, Instruments: []string{"500"}},
		}, nil
	}

	s := NewService(repo, nopLogger{})

	resp, err := s.List(context.Background(), "root")
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)

	_, err = s.List(context.Background(), "alice")
	require.ErrorIs(t, err, ErrAccessDenied)
}
