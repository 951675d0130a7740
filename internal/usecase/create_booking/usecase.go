package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	bookingstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/booking"
	labstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/lab"
	settingsstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/settings"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
)

// UseCase создание бронирования слота на инструменте
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	labRepo      LabRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase создания бронирования
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	labRepo LabRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		labRepo:      labRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет создание бронирования.
//
// Слот не резервируется заранее: запись вставляется сразу, а гонку за один
// и тот же слот разрешает уникальный индекс БД. Проигравший получает
// ErrSlotAlreadyBooked и перечитывает расписание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем входные данные
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Получаем пользователя, от имени которого создается бронирование
	user, err := uc.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userstorage.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, req.Username)
		}
		uc.logger.Error("create_booking: failed to get user %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Execute - get user: %v", ErrInternal, err)
	}

	// 3. Проверяем право на инструмент до любых записей в БД
	if !user.CanUse(req.Instrument) {
		return nil, fmt.Errorf("%w: user %q, instrument %q",
			ErrPermissionDenied, req.Username, req.Instrument)
	}

	// 4. Загружаем активную конфигурацию сетки слотов
	config, err := uc.settingsRepo.Load(ctx, domain.TimeSlotConfigName)
	if err != nil {
		if !errors.Is(err, settingsstorage.ErrConfigNotFound) {
			uc.logger.Error("create_booking: failed to load slot config: %v", err)
			return nil, fmt.Errorf("%w: Execute - load slot config: %v", ErrInternal, err)
		}
		defaultConfig := domain.DefaultTimeSlotConfig
		config = &defaultConfig
	}

	// 5. Проверяем, что метка слота входит в текущую сетку
	contains, err := config.ContainsSlot(req.TimeSlot)
	if err != nil {
		uc.logger.Error("create_booking: failed to generate slot grid: %v", err)
		return nil, fmt.Errorf("%w: Execute - generate slot grid: %v", ErrInternal, err)
	}
	if !contains {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, req.TimeSlot)
	}

	// 6. Временной шлюз: начало слота не должно быть в прошлом
	past, err := domain.IsSlotPast(req.Date, req.TimeSlot, uc.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, req.TimeSlot)
	}
	if past {
		return nil, fmt.Errorf("%w: %s %s", ErrPastTimeSlot,
			req.Date.Format(domain.DateFormat), req.TimeSlot)
	}

	// 7. Снимаем название лаборатории для снимка в бронировании
	labName := ""
	if user.LabID != 0 {
		lab, err := uc.labRepo.GetByID(ctx, user.LabID)
		if err != nil && !errors.Is(err, labstorage.ErrLabNotFound) {
			uc.logger.Error("create_booking: failed to get lab %d: %v", user.LabID, err)
			return nil, fmt.Errorf("%w: Execute - get lab: %v", ErrInternal, err)
		}
		if err == nil {
			labName = lab.Name
		}
	}

	// 8. Вставляем бронирование; конфликт уникального индекса означает,
	// что слот успел занять другой пользователь
	booking := &domain.Booking{
		Username:    user.Username,
		DisplayName: user.DisplayName,
		LabID:       user.LabID,
		LabName:     labName,
		Instrument:  req.Instrument,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrSlotTaken) {
			return nil, fmt.Errorf("%w: %s %s %s", ErrSlotAlreadyBooked,
				req.Instrument, req.Date.Format(domain.DateFormat), req.TimeSlot)
		}
		uc.logger.Error("create_booking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("create_booking: user %q booked %s %s %s",
		user.Username, created.Instrument, created.Date.Format(domain.DateFormat), created.TimeSlot)

	return &Response{
		ID:          created.ID,
		Username:    created.Username,
		Instrument:  created.Instrument,
		Date:        created.Date,
		TimeSlot:    created.TimeSlot,
		DisplayName: created.DisplayName,
		LabID:       created.LabID,
		LabName:     created.LabName,
		BookedAt:    created.BookedAt,
	}, nil
}
