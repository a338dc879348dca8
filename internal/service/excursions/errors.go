package excursions

import "errors"

var (
	// ErrExcursionNotFound возвращается, когда продукт не найден
	ErrExcursionNotFound = errors.New("excursions.service: excursion not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("excursions.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("excursions.service: internal error")
)
