package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrStepGateClosed возвращается при попытке перейти вперед с закрытым гейтом шага
	ErrStepGateClosed = errors.New("sessions: step gate is closed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
