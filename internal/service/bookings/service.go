package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	bookingstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/booking"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
	"github.com/kitty100176/nmr-booking-system/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetUserBookings получает историю бронирований пользователя
func (s *Service) GetUserBookings(ctx context.Context, username string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", username)

	bookings, err := s.bookingRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", username, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), username)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Временной шлюз действует и на отмену: бронирование со слотом, начало
// которого уже прошло, отменить нельзя даже администратору.
// Отменить бронирование может его владелец или администратор
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%s", bookingID, req.Username)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем временной шлюз
	past, err := domain.IsSlotPast(booking.Date, booking.TimeSlot, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Cancel: invalid slot label %q in booking id=%d: %v", booking.TimeSlot, bookingID, err)
		return fmt.Errorf("%w: Cancel - invalid slot label: %v", ErrInternal, err)
	}
	if past {
		s.logger.Warn("Cancel: booking id=%d slot %s already started", bookingID, booking.TimeSlot)
		return ErrPastTimeSlot
	}

	// Проверяем права: владелец или администратор
	if err := s.checkCancelAccess(ctx, booking, req.Username); err != nil {
		return err
	}

	// Удаляем бронирование
	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during deletion", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// checkCancelAccess проверяет, что пользователь вправе отменить бронирование
func (s *Service) checkCancelAccess(ctx context.Context, booking *domain.Booking, username string) error {
	if booking.IsOwnedBy(username) {
		return nil
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userstorage.ErrUserNotFound) {
			s.logger.Warn("checkCancelAccess: user %s not found", username)
			return ErrUserNotFound
		}
		s.logger.Error("checkCancelAccess: failed to get user %s: %v", username, err)
		return fmt.Errorf("%w: checkCancelAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin {
		s.logger.Warn("checkCancelAccess: user %s cannot cancel booking id=%d owned by %s",
			username, booking.ID, booking.Username)
		return ErrAccessDenied
	}

	return nil
}
