package quote_price

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден
	ErrProductNotFound = errors.New("quote_price: excursion product not found")

	// ErrInvalidDate возвращается, когда дата запроса не парсится как YYYY-MM-DD
	ErrInvalidDate = errors.New("quote_price: invalid date format")

	// ErrInvalidDateRange возвращается, когда дата окончания раньше даты начала
	ErrInvalidDateRange = errors.New("quote_price: end date is before start date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
