package catalogservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("catalogservice client: booking not found")

	// ErrSlotConflict возвращается, когда выбранный слот уже занят или заблокирован
	ErrSlotConflict = errors.New("catalogservice client: time slot no longer available")

	// ErrValidation возвращается, когда CatalogService отклонил запрос как некорректный
	ErrValidation = errors.New("catalogservice client: validation failed")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить в текущем статусе
	ErrCannotCancel = errors.New("catalogservice client: booking cannot be cancelled")

	// ErrUnauthorized возвращается, когда админская сессия отсутствует или истекла
	ErrUnauthorized = errors.New("catalogservice client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
