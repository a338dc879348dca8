package validate_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExcursionService/internal/api/handlers"
	validateBooking "github.com/m04kA/SMC-ExcursionService/internal/usecase/validate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProductID   = "некорректный идентификатор продукта"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase ValidateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ValidateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/excursions/{productId}/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /excursions/{productId}/validate - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req ValidateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /excursions/%d/validate - Invalid request body: %v", productID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToBookingRequest(productID))
	if err != nil {
		switch {
		case errors.Is(err, validateBooking.ErrInvalidInput):
			h.logger.Warn("POST /excursions/%d/validate - Invalid input: %v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /excursions/%d/validate - Failed to validate booking: %v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /excursions/%d/validate - Verdict: valid=%t, code=%s",
		productID, result.Valid, result.Code)
	handlers.RespondJSON(w, http.StatusOK, FromResult(result))
}
