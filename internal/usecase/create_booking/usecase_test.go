package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	bookingstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/booking"
	settingsstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/settings"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
)

type mockBookingRepo struct {
	createFunc func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	created := *booking
	created.ID = 1
	created.BookedAt = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &created, nil
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

type mockLabRepo struct {
	getByIDFunc func(ctx context.Context, id int64) (*domain.Lab, error)
}

func (m *mockLabRepo) GetByID(ctx context.Context, id int64) (*domain.Lab, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Lab{ID: id, Name: "Smith Lab"}, nil
}

type mockSettingsRepo struct {
	loadFunc func(ctx context.Context, name string) (*domain.TimeSlotConfig, error)
}

func (m *mockSettingsRepo) Load(ctx context.Context, name string) (*domain.TimeSlotConfig, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, name)
	}
	config := domain.DefaultTimeSlotConfig
	return &config, nil
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

func newTestUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	labRepo LabRepository,
	settingsRepo SettingsRepository,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, userRepo, labRepo, settingsRepo, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func testUser() *domain.User {
	return &domain.User{
		ID:          7,
		Username:    "alice",
		DisplayName: "Alice Chen",
		LabID:       3,
		Instruments: []string{"500"},
		Active:      true,
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return testUser(), nil
		},
	}

	var savedBooking *domain.Booking
	bookingRepo := &mockBookingRepo{
		createFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			savedBooking = booking
			created := *booking
			created.ID = 42
			created.BookedAt = now
			return &created, nil
		},
	}

	uc := newTestUseCase(bookingRepo, userRepo, &mockLabRepo{}, &mockSettingsRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Username:   "alice",
		Instrument: "500",
		Date:       date,
		TimeSlot:   "09:00-09:30",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, domain.SlotLabel("09:00-09:30"), resp.TimeSlot)

	require.NotNil(t, savedBooking)
	assert.Equal(t, "Alice Chen", savedBooking.DisplayName)
	assert.Equal(t, "Smith Lab", savedBooking.LabName)
	assert.Equal(t, int64(3), savedBooking.LabID)
}

func TestExecute_PermissionDenied(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return testUser(), nil
		},
	}

	createCalled := false
	bookingRepo := &mockBookingRepo{
		createFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			createCalled = true
			return booking, nil
		},
	}

	uc := newTestUseCase(bookingRepo, userRepo, &mockLabRepo{}, &mockSettingsRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		Username:   "alice",
		Instrument: "60",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "09:00-09:30",
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.False(t, createCalled, "booking must not be created when permission is denied")
}

func TestExecute_AdminMayBookAnyInstrument(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			admin := testUser()
			admin.IsAdmin = true
			admin.Instruments = nil
			return admin, nil
		},
	}

	uc := newTestUseCase(&mockBookingRepo{}, userRepo, &mockLabRepo{}, &mockSettingsRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Username:   "alice",
		Instrument: "60",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "10:00-10:30",
	})

	require.NoError(t, err)
	assert.Equal(t, "60", resp.Instrument)
}

func TestExecute_PastTimeSlot(t *testing.T) {
	// Сейчас 10:15, слот 10:00-10:30 уже начался
	now := time.Date(2026, 3, 10, 10, 15, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return testUser(), nil
		},
	}

	uc := newTestUseCase(&mockBookingRepo{}, userRepo, &mockLabRepo{}, &mockSettingsRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		Username:   "alice",
		Instrument: "500",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "10:00-10:30",
	})

	require.ErrorIs(t, err, ErrPastTimeSlot)
}

func TestExecute_FutureDateNotPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return testUser(), nil
		},
	}

	uc := newTestUseCase(&mockBookingRepo{}, userRepo, &mockLabRepo{}, &mockSettingsRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		Username:   "alice",
		Instrument: "500",
		Date:       time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "09:00-09:30",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestExecute_SlotNotInGrid(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return testUser(), nil
		},
	}

	tests := []struct {
		name string
		slot domain.SlotLabel
	}{
		{name: "misaligned start", slot: "09:15-09:45"},
		{name: "outside windows", slot: "03:00-03:30"},
		{name: "malformed label", slot: "morning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&mockBookingRepo{}, userRepo, &mockLabRepo{}, &mockSettingsRepo{}, now)

			_, err := uc.Execute(context.Background(), &Request{
				Username:   "alice",
				Instrument: "500",
				Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				TimeSlot:   tt.slot,
			})

			require.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return testUser(), nil
		},
	}

	bookingRepo := &mockBookingRepo{
		createFunc: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			return nil, bookingstorage.ErrSlotTaken
		},
	}

	uc := newTestUseCase(bookingRepo, userRepo, &mockLabRepo{}, &mockSettingsRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		Username:   "alice",
		Instrument: "500",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "09:00-09:30",
	})

	require.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_DefaultConfigWhenMissing(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	userRepo := &mockUserRepo{
		getByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			return testUser(), nil
		},
	}

	settingsRepo := &mockSettingsRepo{
		loadFunc: func(ctx context.Context, name string) (*domain.TimeSlotConfig, error) {
			return nil, settingsstorage.ErrConfigNotFound
		},
	}

	uc := newTestUseCase(&mockBookingRepo{}, userRepo, &mockLabRepo{}, settingsRepo, now)

	// Ночной слот существует только в конфигурации по умолчанию
	resp, err := uc.Execute(context.Background(), &Request{
		Username:   "alice",
		Instrument: "500",
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "21:00-09:00",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SlotLabel("21:00-09:00"), resp.TimeSlot)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&mockBookingRepo{}, &mockUserRepo{}, &mockLabRepo{}, &mockSettingsRepo{}, now)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty username", req: &Request{Instrument: "500", Date: now, TimeSlot: "09:00-09:30"}},
		{name: "empty instrument", req: &Request{Username: "alice", Date: now, TimeSlot: "09:00-09:30"}},
		{name: "zero date", req: &Request{Username: "alice", Instrument: "500", TimeSlot: "09:00-09:30"}},
		{name: "empty slot", req: &Request{Username: "alice", Instrument: "500", Date: now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}
