package quote_price

import (
	"context"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
)

// ConfigStore интерфейс хранилища конфигураций продуктов (read-only)
type ConfigStore interface {
	GetConfig(ctx context.Context, productID int64) (*domain.ExcursionConfig, error)
	ConfigVersion(ctx context.Context, productID int64) (int64, error)
}

// ResultCache интерфейс кеша результатов (get-or-compute)
type ResultCache interface {
	GetOrCompute(ctx context.Context, operation string, key uint64, productID int64, compute func(ctx context.Context) (interface{}, error)) (interface{}, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
