package availability

import (
	"context"
	"time"
)

// Ledger интерфейс read-only доступа к журналу бронирований
// Движок никогда не пишет в журнал; данные считаются eventually-consistent,
// авторитетная проверка мест выполняется платформой в момент фиксации заказа
type Ledger interface {
	// CountCommittedParticipants возвращает количество участников, уже
	// забронированных на пересекающиеся с [from, to] даты
	CountCommittedParticipants(ctx context.Context, productID int64, from, to time.Time) (int, error)
	// CountOverlappingBookings возвращает количество активных бронирований,
	// пересекающихся с [from, to]
	CountOverlappingBookings(ctx context.Context, productID int64, from, to time.Time) (int, error)
}
