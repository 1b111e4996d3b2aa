package service

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrInvalidDuration возвращается при попытке записать неизвестный код длительности
	ErrInvalidDuration = errors.New("service.repository: invalid duration code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("service.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("service.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("service.repository: failed to scan row")

	// ErrEmptyUpdate возвращается при попытке обновления без изменяемых полей
	ErrEmptyUpdate = errors.New("service.repository: no fields to update")
)
