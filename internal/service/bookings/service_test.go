package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	bookingstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/booking"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	"github.com/kitty100176/nmr-booking-system/internal/service/bookings/models"
)

type mockBookingRepo struct {
	getByIDFunc       func(ctx context.Context, id int64) (*domain.Booking, error)
	getByUsernameFunc func(ctx context.Context, username string) ([]*domain.Booking, error)
	deleteFunc        func(ctx context.Context, id int64) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, bookingstorage.ErrBookingNotFound
}

func (m *mockBookingRepo) GetByUsername(ctx context.Context, username string) ([]*domain.Booking, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return []*domain.Booking{}, nil
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
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

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(bookingRepo BookingRepository, userRepo UserRepository, now time.Time) *Service {
	s := NewService(bookingRepo, userRepo, nopLogger{})
	s.timeProvider = &fakeTimeProvider{now: now}
	return s
}

func futureBooking() *domain.Booking {
	return &domain.Booking{
		ID:         5,
		Username:   "alice",
		Instrument: "500",
		Date:       time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "09:00-09:30",
	}
}

func TestCancel_OwnerSuccess(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	deleted := false
	bookingRepo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return futureBooking(), nil
		},
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}

	s := newTestService(bookingRepo, &mockUserRepo{}, now)

	err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{Username: "alice"})

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCancel_AdminMayCancelForeignBooking(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return futureBooking(), nil
		},
	}
	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username, IsAdmin: true, Active: true}, nil
		},
	}

	s := newTestService(bookingRepo, userRepo, now)

	err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{Username: "root"})

	require.NoError(t, err)
}

func TestCancel_ForeignBookingDenied(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	deleted := false
	bookingRepo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return futureBooking(), nil
		},
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{Username: username, IsAdmin: false, Active: true}, nil
		},
	}

	s := newTestService(bookingRepo, userRepo, now)

	err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{Username: "bob"})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, deleted)
}

func TestCancel_PastSlotDenied(t *testing.T) {
	// Слот 09:00-09:30 на 11 марта уже начался
	now := time.Date(2026, 3, 11, 9, 5, 0, 0, time.UTC)

	deleted := false
	bookingRepo := &mockBookingRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return futureBooking(), nil
		},
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}

	s := newTestService(bookingRepo, &mockUserRepo{}, now)

	err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{Username: "alice"})

	require.ErrorIs(t, err, ErrPastTimeSlot)
	assert.False(t, deleted)
}

func TestCancel_NotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	s := newTestService(&mockBookingRepo{}, &mockUserRepo{}, now)

	err := s.Cancel(context.Background(), 404, &models.CancelBookingRequest{Username: "alice"})

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{
		getByUsernameFunc: func(ctx context.Context, username string) ([]*domain.Booking, error) {
			return []*domain.Booking{futureBooking()}, nil
		},
	}

	s := newTestService(bookingRepo, &mockUserRepo{}, now)

	resp, err := s.GetUserBookings(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2026-03-11", resp.Bookings[0].Date)
	assert.Equal(t, "09:00-09:30", resp.Bookings[0].TimeSlot)
}
