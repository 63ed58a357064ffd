package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
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

// Handle POST /api/v1/wizard/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, err := h.sessions.Create()
	if err != nil {
		h.logger.Error("POST /wizard/sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard/sessions - Session created: session_id=%s", state.ID)
	handlers.RespondJSON(w, http.StatusCreated, state)
}
