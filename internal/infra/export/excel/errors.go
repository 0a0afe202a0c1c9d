package excel

import "errors"

var (
	// ErrNoData нет данных для выгрузки
	ErrNoData = errors.New("no data to export")
	// ErrWriteWorkbook ошибка формирования xlsx файла
	ErrWriteWorkbook = errors.New("failed to write workbook")
)
