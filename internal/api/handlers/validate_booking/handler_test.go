package validate_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ExcursionService/internal/domain"
	validateBooking "github.com/m04kA/SMC-ExcursionService/internal/usecase/validate_booking"
)

type fakeUseCase struct {
	result domain.ValidationResult
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, _ domain.BookingRequest) (domain.ValidationResult, error) {
	return f.result, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc ValidateBookingUseCase, productID, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/excursions/{productId}/validate", NewHandler(uc, noopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/excursions/"+productID+"/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleValidVerdict(t *testing.T) {
	uc := &fakeUseCase{result: domain.ValidResult(2)}

	rec := doRequest(t, uc, "1", `{"participants":10,"startDate":"2025-06-10","endDate":"2025-06-12"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.ErrorCode)
	assert.Equal(t, 2, resp.VehiclesNeeded)
}

func TestHandleInvalidVerdictIsStillOK(t *testing.T) {
	// Невыполнимая заявка — данные для формы, а не ошибка HTTP
	uc := &fakeUseCase{result: domain.InvalidResult(
		domain.CodeInsufficientSeats, "only 5 seats remain for the requested dates")}

	rec := doRequest(t, uc, "1", `{"participants":10,"startDate":"2025-06-10"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, "InsufficientSeats", resp.ErrorCode)
	assert.Contains(t, resp.Message, "5 seats")
}

func TestHandleValidateErrors(t *testing.T) {
	tests := []struct {
		name       string
		productID  string
		body       string
		useCaseErr error
		wantStatus int
	}{
		{name: "bad product id", productID: "xyz", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", productID: "1", body: `{"participants":`, wantStatus: http.StatusBadRequest},
		{name: "invalid input", productID: "1", body: `{"participants":0,"startDate":"2025-06-10"}`,
			useCaseErr: validateBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", productID: "1", body: `{"participants":4,"startDate":"2025-06-10"}`,
			useCaseErr: validateBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.useCaseErr}, tt.productID, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
