package submit_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrGatesNotSatisfied возвращается, когда не все гейты шагов открыты
	ErrGatesNotSatisfied = errors.New("submit_booking: not all step gates are satisfied")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят.
	// Выбор в сессии сохраняется: пользователь выбирает другой слот и повторяет submit.
	ErrSlotNotAvailable = errors.New("submit_booking: time slot is no longer available")

	// ErrValidationRejected возвращается, когда CatalogService отклонил бронирование.
	// Сообщение вышестоящего сервиса прокидывается без изменений.
	ErrValidationRejected = errors.New("submit_booking: booking rejected by catalog service")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
