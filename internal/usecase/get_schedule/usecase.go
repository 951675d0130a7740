package get_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	settingsstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/settings"
	userstorage "github.com/kitty100176/nmr-booking-system/internal/infra/storage/user"
)

// UseCase получение расписания инструмента на дату с состоянием каждого слота
type UseCase struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр usecase получения расписания
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет получение расписания инструмента на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем входные данные
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Получаем запрашивающего пользователя
	user, err := uc.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userstorage.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, req.Username)
		}
		uc.logger.Error("get_schedule: failed to get user %q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Execute - get user: %v", ErrInternal, err)
	}

	// 3. Расписание показывается только по разрешенным инструментам
	if !user.CanUse(req.Instrument) {
		return nil, fmt.Errorf("%w: user %q, instrument %q",
			ErrPermissionDenied, req.Username, req.Instrument)
	}

	// 4. Загружаем активную конфигурацию сетки слотов
	config, err := uc.settingsRepo.Load(ctx, domain.TimeSlotConfigName)
	if err != nil {
		if !errors.Is(err, settingsstorage.ErrConfigNotFound) {
			uc.logger.Error("get_schedule: failed to load slot config: %v", err)
			return nil, fmt.Errorf("%w: Execute - load slot config: %v", ErrInternal, err)
		}
		defaultConfig := domain.DefaultTimeSlotConfig
		config = &defaultConfig
	}

	// 5. Генерируем сетку слотов дня
	grid, err := config.GenerateSlots()
	if err != nil {
		uc.logger.Error("get_schedule: failed to generate slot grid: %v", err)
		return nil, fmt.Errorf("%w: Execute - generate slot grid: %v", ErrInternal, err)
	}

	// 6. Получаем бронирования инструмента на дату
	bookings, err := uc.bookingRepo.GetByInstrumentAndDate(ctx, req.Instrument, req.Date)
	if err != nil {
		uc.logger.Error("get_schedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: Execute - get bookings: %v", ErrInternal, err)
	}

	// 7. Вычисляем состояние каждого слота
	slots := resolveSlots(grid, bookings, req.Date, req.Username, uc.timeProvider.Now())

	return &Response{
		Instrument: req.Instrument,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
