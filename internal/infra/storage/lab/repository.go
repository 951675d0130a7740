package lab

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/kitty100176/nmr-booking-system/internal/domain"
	"github.com/kitty100176/nmr-booking-system/pkg/dbmetrics"
	"github.com/kitty100176/nmr-booking-system/pkg/psqlbuilder"
)

// Repository репозиторий для работы с лабораториями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лабораторий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все лаборатории, упорядоченные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Lab, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description").
		From("labs").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	labs := make([]*domain.Lab, 0)
	for rows.Next() {
		var lab domain.Lab
		if err := rows.Scan(&lab.ID, &lab.Name, &lab.Description); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		labs = append(labs, &lab)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return labs, nil
}

// GetByID получает лабораторию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Lab, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description").
		From("labs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var lab domain.Lab
	err = executor.QueryRowContext(ctx, query, args...).Scan(&lab.ID, &lab.Name, &lab.Description)

	if err == sql.ErrNoRows {
		return nil, ErrLabNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan lab: %v", ErrScanRow, err)
	}

	return &lab, nil
}

// Create создает новую лабораторию
func (r *Repository) Create(ctx context.Context, lab *domain.Lab) (*domain.Lab, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("labs").
		Columns("name", "description").
		Values(lab.Name, lab.Description).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&lab.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return lab, nil
}

// Update обновляет название и описание лаборатории
func (r *Repository) Update(ctx context.Context, lab *domain.Lab) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("labs").
		Set("name", lab.Name).
		Set("description", lab.Description).
		Where(squirrel.Eq{"id": lab.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrLabNotFound
	}

	return nil
}

// Delete удаляет лабораторию
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("labs").
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
		return ErrLabNotFound
	}

	return nil
}

// CountUsers возвращает количество пользователей, состоящих в лаборатории
// Используется для проверки ссылочного инварианта перед удалением
func (r *Repository) CountUsers(ctx context.Context, labID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"lab_id": labID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUsers - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUsers - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
