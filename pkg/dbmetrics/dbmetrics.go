package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/GHM-BookingService/pkg/metrics"
)

// DB обёртка над *sql.DB, которая пишет длительность каждого запроса
// в метрики. Запросы внутри открытой транзакции идут мимо обёртки
// напрямую через *sql.Tx.
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// Wrap создает обёртку с метриками вокруг соединения
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, m: m}
}

// ExecContext выполняет запрос без результата и записывает метрику
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.m.RecordDBQuery(operation(query), time.Since(start))
	return res, err
}

// QueryContext выполняет запрос с результатом и записывает метрику
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.m.RecordDBQuery(operation(query), time.Since(start))
	return rows, err
}

// QueryRowContext выполняет запрос одной строки и записывает метрику
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.m.RecordDBQuery(operation(query), time.Since(start))
	return row
}

// operation извлекает тип операции из SQL запроса: SELECT, INSERT и так далее
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
