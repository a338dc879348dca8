package quote_price

import (
	"context"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
)

type QuotePriceUseCase interface {
	Execute(ctx context.Context, req domain.BookingRequest) (*domain.PriceBreakdown, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
