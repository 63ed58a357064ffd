package retreat_step

import (
	sessionModels "github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

// RetreatResponse ответ на шаг назад.
// Exited == true означает выход из визарда (Back на первом шаге):
// сессия удалена, дальнейшую навигацию выполняет фронтенд.
type RetreatResponse struct {
	Exited  bool                        `json:"exited"`
	Session *sessionModels.SessionState `json:"session,omitempty"`
}
