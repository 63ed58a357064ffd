package update_selection

import (
	sessionModels "github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// SessionsService интерфейс сервиса сессий визарда
type SessionsService interface {
	UpdateSelection(id string, update wizard.SelectionUpdate) (*sessionModels.SessionState, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
