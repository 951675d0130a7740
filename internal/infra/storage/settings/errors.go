package settings

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация сетки не сохранена
	ErrConfigNotFound = errors.New("settings.repository: time slot config not found")

	// ErrRulesNotFound возвращается, когда текст правил не сохранен
	ErrRulesNotFound = errors.New("settings.repository: rules not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
