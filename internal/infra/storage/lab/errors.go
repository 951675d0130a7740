package lab

import "errors"

var (
	// ErrLabNotFound возвращается, когда лаборатория не найдена
	ErrLabNotFound = errors.New("lab.repository: lab not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("lab.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("lab.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("lab.repository: failed to scan row")
)
