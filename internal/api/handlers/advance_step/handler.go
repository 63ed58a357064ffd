package advance_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions"
)

const (
	msgSessionNotFound = "сессия не найдена или истекла"
	msgGateClosed      = "текущий шаг не завершен"
)

type Handler struct {
	sessions SessionsService
	logger   Logger
}

func NewHandler(sessions SessionsService, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/wizard/sessions/{sessionId}/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.sessions.Advance(sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/next - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrStepGateClosed):
			// Гейт закрыт — ошибка валидации, до сети дело не дошло
			h.logger.Warn("POST /wizard/sessions/{id}/next - Gate closed: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgGateClosed)

		default:
			h.logger.Error("POST /wizard/sessions/{id}/next - Failed to advance: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state)
}
