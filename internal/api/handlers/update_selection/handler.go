package update_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFieldTooLong       = "значение поля превышает допустимую длину"
	msgSessionNotFound    = "сессия не найдена или истекла"
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

// Handle PATCH /api/v1/wizard/sessions/{sessionId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /wizard/sessions/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.validate(); err != nil {
		h.logger.Warn("PATCH /wizard/sessions/{id}/selection - Validation failed: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondBadRequest(w, msgFieldTooLong)
		return
	}

	state, err := h.sessions.UpdateSelection(sessionID, req.ToSelectionUpdate())
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			h.logger.Warn("PATCH /wizard/sessions/{id}/selection - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("PATCH /wizard/sessions/{id}/selection - Failed to update selection: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state)
}
