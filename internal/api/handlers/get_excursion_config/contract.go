package get_excursion_config

import (
	"context"

	"github.com/m04kA/SMC-ExcursionService/internal/service/excursions/models"
)

type ExcursionsService interface {
	GetExcursionConfig(ctx context.Context, productID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
