// Package dbmetrics оборачивает выполнение SQL запросов записью метрик
// Репозитории получают executor через GetExecutor, поэтому подмена
// соединения (например, транзакцией из контекста) не требует их изменения
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Executor минимальный контракт для выполнения запросов
// Поддерживает *sql.DB, *sql.Tx и обертки над ними
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Recorder контракт записи метрик запросов БД
type Recorder interface {
	ObserveDBQuery(query string, d time.Duration, success bool)
}

type ctxKey struct{}

// WithExecutor кладет executor в контекст
// Используется для подмены соединения транзакцией
func WithExecutor(ctx context.Context, ex Executor) context.Context {
	return context.WithValue(ctx, ctxKey{}, ex)
}

// GetExecutor возвращает executor из контекста или fallback
// Репозитории вызывают его перед каждым запросом
func GetExecutor(ctx context.Context, fallback Executor) Executor {
	if ex, ok := ctx.Value(ctxKey{}).(Executor); ok {
		return ex
	}
	return fallback
}

// DB executor, записывающий длительность и статус каждого запроса
type DB struct {
	inner    Executor
	recorder Recorder
}

// Wrap оборачивает executor записью метрик
// nil recorder возвращает executor без изменений
func Wrap(db Executor, recorder Recorder) Executor {
	if recorder == nil {
		return db
	}
	return &DB{inner: db, recorder: recorder}
}

// QueryContext выполняет запрос и записывает метрики
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	started := time.Now()
	rows, err := d.inner.QueryContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(queryKind(query), time.Since(started), err == nil)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки и записывает метрики
// Ошибка строки откладывается до Scan, поэтому статус всегда успешный
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	started := time.Now()
	row := d.inner.QueryRowContext(ctx, query, args...)
	d.recorder.ObserveDBQuery(queryKind(query), time.Since(started), true)
	return row
}

// queryKind возвращает первое ключевое слово запроса для метки метрики
// Полный текст запроса в метку не попадает — кардинальность должна
// оставаться ограниченной
func queryKind(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
