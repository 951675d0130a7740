package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	"github.com/kitty100176/nmr-booking-system/pkg/dbmetrics"
	"github.com/kitty100176/nmr-booking-system/pkg/psqlbuilder"
	"github.com/kitty100176/nmr-booking-system/pkg/types"
)

// Repository репозиторий настроек: конфигурация сетки слотов и текст правил.
// Конфигурация хранится как именованный объект с явными Load/Save,
// а не как "строка с id=1"
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Load загружает конфигурацию сетки слотов по имени
func (r *Repository) Load(ctx context.Context, name string) (*domain.TimeSlotConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"name",
		"day_start",
		"day_end",
		"day_interval_minutes",
		"night_start",
		"night_end",
		"night_interval_minutes",
		"updated_at",
	).
		From("timeslot_settings").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.TimeSlotConfig
	var dayStart, dayEnd, nightStart, nightEnd string
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.Name,
		&dayStart,
		&dayEnd,
		&config.DayIntervalMinutes,
		&nightStart,
		&nightEnd,
		&config.NightIntervalMinutes,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan config: %v", ErrScanRow, err)
	}

	config.DayStart = types.TimeString(dayStart)
	config.DayEnd = types.TimeString(dayEnd)
	config.NightStart = types.TimeString(nightStart)
	config.NightEnd = types.TimeString(nightEnd)
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Save сохраняет конфигурацию сетки слотов (insert или update по имени)
func (r *Repository) Save(ctx context.Context, config *domain.TimeSlotConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("timeslot_settings").
		Columns(
			"name",
			"day_start",
			"day_end",
			"day_interval_minutes",
			"night_start",
			"night_end",
			"night_interval_minutes",
		).
		Values(
			config.Name,
			config.DayStart.String(),
			config.DayEnd.String(),
			config.DayIntervalMinutes,
			config.NightStart.String(),
			config.NightEnd.String(),
			config.NightIntervalMinutes,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			day_start = EXCLUDED.day_start,
			day_end = EXCLUDED.day_end,
			day_interval_minutes = EXCLUDED.day_interval_minutes,
			night_start = EXCLUDED.night_start,
			night_end = EXCLUDED.night_end,
			night_interval_minutes = EXCLUDED.night_interval_minutes,
			updated_at = NOW()
			RETURNING updated_at`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	config.UpdatedAt = updatedAt.Time

	return nil
}

// LoadRules загружает упорядоченный список правил пользования
func (r *Repository) LoadRules(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("rules").
		From("system_settings").
		Where(squirrel.Eq{"name": domain.RulesSettingsName}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadRules - build select query: %v", ErrBuildQuery, err)
	}

	var rules pq.StringArray
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rules)

	if err == sql.ErrNoRows {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LoadRules - scan rules: %v", ErrScanRow, err)
	}

	return []string(rules), nil
}

// SaveRules сохраняет упорядоченный список правил пользования
func (r *Repository) SaveRules(ctx context.Context, rules []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("system_settings").
		Columns("name", "rules").
		Values(domain.RulesSettingsName, pq.Array(rules)).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			rules = EXCLUDED.rules,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveRules - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveRules - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
