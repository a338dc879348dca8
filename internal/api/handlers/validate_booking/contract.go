package validate_booking

import (
	"context"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
)

type ValidateBookingUseCase interface {
	Execute(ctx context.Context, req domain.BookingRequest) (domain.ValidationResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
