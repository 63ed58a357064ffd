package retreat_step

import (
	sessionModels "github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

// SessionsService интерфейс сервиса сессий визарда
type SessionsService interface {
	Retreat(id string) (*sessionModels.SessionState, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
