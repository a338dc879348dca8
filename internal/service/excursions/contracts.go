package excursions

import (
	"context"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигураций продуктов
type ConfigRepository interface {
	GetConfig(ctx context.Context, productID int64) (*domain.ExcursionConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
