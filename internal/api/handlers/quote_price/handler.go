package quote_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExcursionService/internal/api/handlers"
	quotePrice "github.com/m04kA/SMC-ExcursionService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidProductID   = "некорректный идентификатор продукта"
	msgProductNotFound    = "экскурсия не найдена"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата окончания раньше даты начала"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/excursions/{productId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /excursions/{productId}/quote - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /excursions/%d/quote - Invalid request body: %v", productID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToBookingRequest(productID))
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrProductNotFound):
			h.logger.Warn("POST /excursions/%d/quote - Product not found", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, quotePrice.ErrInvalidDate):
			h.logger.Warn("POST /excursions/%d/quote - Invalid date: %v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, quotePrice.ErrInvalidDateRange):
			h.logger.Warn("POST /excursions/%d/quote - Invalid date range: %v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /excursions/%d/quote - Invalid input: %v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /excursions/%d/quote - Failed to compute quote: %v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /excursions/%d/quote - Quote computed: total=%d %s",
		productID, result.TotalPrice, result.Currency)
	handlers.RespondJSON(w, http.StatusOK, FromBreakdown(result))
}
