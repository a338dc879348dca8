// Package ledger читает журнал бронирований платформы
// Журнал для движка строго read-only и eventually-consistent: авторитетная
// проверка вместимости повторяется платформой в момент фиксации заказа
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ExcursionService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExcursionService/pkg/psqlbuilder"
)

// activeStatuses статусы бронирований, занимающих места
// Отмененные и несостоявшиеся бронирования вместимость не расходуют
var activeStatuses = []string{"pending", "confirmed", "in_progress"}

// DBExecutor минимальный контракт для выполнения запросов
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repository read-only репозиторий журнала бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountCommittedParticipants возвращает суммарное количество участников в
// активных бронированиях продукта, пересекающихся с диапазоном [from, to]
// Пересечение включительное: existingStart <= to AND existingEnd >= from
func (r *Repository) CountCommittedParticipants(ctx context.Context, productID int64, from, to time.Time) (int, error) {
	query, args, err := psqlbuilder.Select("COALESCE(SUM(participants), 0)").
		From("bookings").
		Where(squirrel.Eq{"excursion_id": productID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.LtOrEq{"start_date": to}).
		Where(squirrel.GtOrEq{"end_date": from}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCommittedParticipants - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := dbmetrics.GetExecutor(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountCommittedParticipants - execute select: %v", ErrExecQuery, err)
	}

	return total, nil
}

// CountOverlappingBookings возвращает количество активных бронирований
// продукта, пересекающихся с диапазоном [from, to]
func (r *Repository) CountOverlappingBookings(ctx context.Context, productID int64, from, to time.Time) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"excursion_id": productID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.LtOrEq{"start_date": to}).
		Where(squirrel.GtOrEq{"end_date": from}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlappingBookings - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := dbmetrics.GetExecutor(ctx, r.db).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlappingBookings - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}
