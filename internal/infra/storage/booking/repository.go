package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	"github.com/kitty100176/nmr-booking-system/pkg/dbmetrics"
	"github.com/kitty100176/nmr-booking-system/pkg/psqlbuilder"
)

// Уникальное нарушение PostgreSQL (unique_violation)
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Уникальность (instrument, date, time_slot) обеспечивает индекс в БД —
// это единственный механизм взаимного исключения при гонке за слот.
// Нарушение уникальности возвращается как ErrSlotTaken и отличимо
// от остальных ошибок персистентности
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"username",
			"display_name",
			"lab_id",
			"lab_name",
			"instrument",
			"date",
			"time_slot",
		).
		Values(
			booking.Username,
			booking.DisplayName,
			booking.LabID,
			booking.LabName,
			booking.Instrument,
			booking.Date,
			booking.TimeSlot,
		).
		Suffix("RETURNING id, booked_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var bookedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&bookedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.BookedAt = bookedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var bookedAt sql.NullTime
	var slot string

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.Username,
		&booking.DisplayName,
		&booking.LabID,
		&booking.LabName,
		&booking.Instrument,
		&booking.Date,
		&slot,
		&bookedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.TimeSlot = domain.SlotLabel(slot)
	booking.BookedAt = bookedAt.Time

	return &booking, nil
}

// GetByInstrumentAndDate получает все бронирования инструмента на дату
// Используется для раскраски сетки слотов
func (r *Repository) GetByInstrumentAndDate(ctx context.Context, instrument string, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"instrument": instrument}).
		Where(squirrel.Eq{"date": date}).
		OrderBy("time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstrumentAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstrumentAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByUsername получает историю бронирований пользователя
// (сначала новые)
func (r *Repository) GetByUsername(ctx context.Context, username string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"username": username}).
		OrderBy("date DESC, time_slot DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Delete удаляет бронирование (физическое удаление: отмена снимает слот)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"username",
		"display_name",
		"lab_id",
		"lab_name",
		"instrument",
		"date",
		"time_slot",
		"booked_at",
	).From("bookings")
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var bookedAt sql.NullTime
		var slot string

		err := rows.Scan(
			&booking.ID,
			&booking.Username,
			&booking.DisplayName,
			&booking.LabID,
			&booking.LabName,
			&booking.Instrument,
			&booking.Date,
			&slot,
			&bookedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.TimeSlot = domain.SlotLabel(slot)
		booking.BookedAt = bookedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
