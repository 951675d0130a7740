package labs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	labstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/lab"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	"github.com/kitty100176/nmr-booking-system/internal/service/labs/models"
)

type mockLabRepo struct {
	listFunc       func(ctx context.Context) ([]*domain.Lab, error)
	getByIDFunc    func(ctx context.Context, id int64) (*domain.Lab, error)
	createFunc     func(ctx context.Context, lab *domain.Lab) (*domain.Lab, error)
	updateFunc     func(ctx context.Context, lab *domain.Lab) error
	deleteFunc     func(ctx context.Context, id int64) error
	countUsersFunc func(ctx context.Context, labID int64) (int64, error)
}

func (m *mockLabRepo) List(ctx context.Context) ([]*domain.Lab, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []*domain.Lab{}, nil
}

func (m *mockLabRepo) GetByID(ctx context.Context, id int64) (*domain.Lab, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, labstorage.ErrLabNotFound
}

func (m *mockLabRepo) Create(ctx context.Context, lab *domain.Lab) (*domain.Lab, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, lab)
	}
	created := *lab
	created.ID = 1
	return &created, nil
}

func (m *mockLabRepo) Update(ctx context.Context, lab *domain.Lab) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, lab)
	}
	return nil
}

func (m *mockLabRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockLabRepo) CountUsers(ctx context.Context, labID int64) (int64, error) {
	if m.countUsersFunc != nil {
		return m.countUsersFunc(ctx, labID)
	}
	return 0, nil
}

type mockUserRepo struct {
	getByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, userstorage.ErrUserNotFound
}

// mockTxManager выполняет функцию без реальной транзакции
type mockTxManager struct{}

func (mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (mockTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func adminRepo() *mockUserRepo {
	return &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			switch username {
			case "root":
				return &domain.User{Username: "root", IsAdmin: true, Active: true}, nil
			case "alice":
				return &domain.User{Username: "alice", Active: true}, nil
			}
			return nil, userstorage.ErrUserNotFound
		},
	}
}

func TestCreate_Success(t *testing.T) {
	s := NewService(&mockLabRepo{}, adminRepo(), mockTxManager{}, nopLogger{})

	resp, err := s.Create(context.Background(), &models.CreateLabRequest{
		Requester:   "root",
		Name:        "Smith Lab",
		Description: "Organic synthesis",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Smith Lab", resp.Name)
}

func TestCreate_NonAdminDenied(t *testing.T) {
	s := NewService(&mockLabRepo{}, adminRepo(), mockTxManager{}, nopLogger{})

	_, err := s.Create(context.Background(), &models.CreateLabRequest{
		Requester: "alice",
		Name:      "Smith Lab",
	})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_EmptyName(t *testing.T) {
	s := NewService(&mockLabRepo{}, adminRepo(), mockTxManager{}, nopLogger{})

	_, err := s.Create(context.Background(), &models.CreateLabRequest{Requester: "root"})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_Success(t *testing.T) {
	deleted := false
	labRepo := &mockLabRepo{
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}

	s := NewService(labRepo, adminRepo(), mockTxManager{}, nopLogger{})

	err := s.Delete(context.Background(), 3, "root")

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDelete_LabInUse(t *testing.T) {
	deleted := false
	labRepo := &mockLabRepo{
		countUsersFunc: func(ctx context.Context, labID int64) (int64, error) {
			return 2, nil
		},
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}

	s := NewService(labRepo, adminRepo(), mockTxManager{}, nopLogger{})

	err := s.Delete(context.Background(), 3, "root")

	require.ErrorIs(t, err, ErrLabInUse)
	assert.False(t, deleted)
}

func TestDelete_NotFound(t *testing.T) {
	labRepo := &mockLabRepo{
		deleteFunc: func(ctx context.Context, id int64) error {
			return labstorage.ErrLabNotFound
		},
	}

	s := NewService(labRepo, adminRepo(), mockTxManager{}, nopLogger{})

	err := s.Delete(context.Background(), 404, "root")

	require.ErrorIs(t, err, ErrLabNotFound)
}

func TestUpdate_NotFound(t *testing.T) {
	labRepo := &mockLabRepo{
		updateFunc: func(ctx context.Context, lab *domain.Lab) error {
			return labstorage.ErrLabNotFound
		},
	}

	s := NewService(labRepo, adminRepo(), mockTxManager{}, nopLogger{})

	_, err := s.Update(context.Background(), 404, &models.UpdateLabRequest{
		Requester: "root",
		Name:      "Smith Lab",
	})

	require.ErrorIs(t, err, ErrLabNotFound)
}

func TestList_Public(t *testing.T) {
	labRepo := &mockLabRepo{
		listFunc: func(ctx context.Context) ([]*domain.Lab, error) {
			return []*domain.Lab{
				{ID: 1, Name: "Smith Lab"},
				{ID: 2, Name: "Jones Lab"},
			}, nil
		},
	}

	s := NewService(labRepo, adminRepo(), mockTxManager{}, nopLogger{})

	resp, err := s.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Labs, 2)
}
