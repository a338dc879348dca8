package validate_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ExcursionService/internal/availability"
	"github.com/m04kA/SMC-ExcursionService/internal/domain"
)

// ConfigStore интерфейс хранилища конфигураций продуктов (read-only)
type ConfigStore interface {
	GetConfig(ctx context.Context, productID int64) (*domain.ExcursionConfig, error)
	// ConfigVersion возвращает монотонно растущий токен версии конфигурации,
	// используемый для инвалидации кеша
	ConfigVersion(ctx context.Context, productID int64) (int64, error)
}

// AvailabilityChecker интерфейс проверки правил доступности
type AvailabilityChecker interface {
	CheckDateRules(cfg *domain.ExcursionConfig, date time.Time) *availability.Violation
	CheckLeadTime(cfg *domain.ExcursionConfig, start, now time.Time) *availability.Violation
	CheckSeats(ctx context.Context, cfg *domain.ExcursionConfig, from, to time.Time, participants int) (*availability.Violation, error)
	CheckSimultaneous(ctx context.Context, cfg *domain.ExcursionConfig, from, to time.Time) (*availability.Violation, error)
}

// ResultCache интерфейс кеша результатов (get-or-compute)
type ResultCache interface {
	GetOrCompute(ctx context.Context, operation string, key uint64, productID int64, compute func(ctx context.Context) (interface{}, error)) (interface{}, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
