package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	err error

	gotQuery string
}

func (f *fakeExecutor) QueryContext(_ context.Context, query string, _ ...interface{}) (*sql.Rows, error) {
	f.gotQuery = query
	return nil, f.err
}

func (f *fakeExecutor) QueryRowContext(_ context.Context, query string, _ ...interface{}) *sql.Row {
	f.gotQuery = query
	return nil
}

type fakeRecorder struct {
	query   string
	success bool
	calls   int
}

func (f *fakeRecorder) ObserveDBQuery(query string, _ time.Duration, success bool) {
	f.query = query
	f.success = success
	f.calls++
}

func TestWrapRecordsQueryContext(t *testing.T) {
	inner := &fakeExecutor{}
	recorder := &fakeRecorder{}
	db := Wrap(inner, recorder)

	_, err := db.QueryContext(context.Background(), "SELECT id FROM excursions WHERE id = $1", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, recorder.calls)
	assert.Equal(t, "select", recorder.query)
	assert.True(t, recorder.success)
	assert.Contains(t, inner.gotQuery, "excursions")
}

func TestWrapRecordsFailure(t *testing.T) {
	inner := &fakeExecutor{err: errors.New("connection refused")}
	recorder := &fakeRecorder{}
	db := Wrap(inner, recorder)

	_, err := db.QueryContext(context.Background(), "SELECT 1")
	require.Error(t, err)

	assert.Equal(t, 1, recorder.calls)
	assert.False(t, recorder.success)
}

func TestWrapRecordsQueryRowContext(t *testing.T) {
	inner := &fakeExecutor{}
	recorder := &fakeRecorder{}
	db := Wrap(inner, recorder)

	db.QueryRowContext(context.Background(), "SELECT version FROM excursions WHERE id = $1", 1)

	assert.Equal(t, 1, recorder.calls)
	assert.Equal(t, "select", recorder.query)
	// Ошибка строки откладывается до Scan — статус всегда успешный
	assert.True(t, recorder.success)
}

func TestWrapNilRecorderPassesThrough(t *testing.T) {
	inner := &fakeExecutor{}

	db := Wrap(inner, nil)

	assert.Equal(t, Executor(inner), db)
}

func TestGetExecutor(t *testing.T) {
	fallback := &fakeExecutor{}
	override := &fakeExecutor{}

	// Без подмены в контексте возвращается fallback
	assert.Equal(t, Executor(fallback), GetExecutor(context.Background(), fallback))

	ctx := WithExecutor(context.Background(), override)
	assert.Equal(t, Executor(override), GetExecutor(ctx, fallback))
}

func TestQueryKind(t *testing.T) {
	assert.Equal(t, "select", queryKind("SELECT * FROM bookings"))
	assert.Equal(t, "with", queryKind("WITH t AS (SELECT 1) SELECT * FROM t"))
	assert.Equal(t, "unknown", queryKind("  "))
}
