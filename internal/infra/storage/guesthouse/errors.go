package guesthouse

import "errors"

var (
	// ErrGuestHouseNotFound возвращается, когда гостевой дом не найден
	ErrGuestHouseNotFound = errors.New("guesthouse.repository: guest house not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("guesthouse.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("guesthouse.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("guesthouse.repository: failed to scan row")
)
