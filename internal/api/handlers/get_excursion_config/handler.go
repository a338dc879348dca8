package get_excursion_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExcursionService/internal/api/handlers"
	excursionsService "github.com/m04kA/SMC-ExcursionService/internal/service/excursions"
)

const (
	msgInvalidProductID = "некорректный идентификатор продукта"
	msgProductNotFound  = "экскурсия не найдена"
)

type Handler struct {
	service ExcursionsService
	logger  Logger
}

func NewHandler(service ExcursionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/excursions/{productId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /excursions/{productId}/config - Invalid product id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	config, err := h.service.GetExcursionConfig(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, excursionsService.ErrExcursionNotFound):
			h.logger.Warn("GET /excursions/%d/config - Not found", productID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, excursionsService.ErrInvalidInput):
			h.logger.Warn("GET /excursions/%d/config - Invalid input: %v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidProductID)

		default:
			h.logger.Error("GET /excursions/%d/config - Failed to get config: %v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, config)
}
