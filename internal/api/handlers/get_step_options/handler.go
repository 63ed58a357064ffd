package get_step_options

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	getStepOptions "github.com/m04kA/SMC-DetailingService/internal/usecase/get_step_options"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

const (
	msgSessionNotFound  = "сессия не найдена или истекла"
	msgUnknownStep      = "неизвестный шаг визарда"
	msgStepHasNoOptions = "у этого шага нет загружаемых опций"
	msgDependencyUnset  = "сначала нужно сделать выбор на предыдущем шаге"
	msgInvalidDate      = "некорректная дата, ожидается YYYY-MM-DD"
	msgFetchFailed      = "не удалось загрузить опции, попробуйте еще раз"
)

type Handler struct {
	useCase GetStepOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetStepOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/wizard/sessions/{sessionId}/options?step=package&date=2025-01-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	stepName := r.URL.Query().Get("step")
	step, ok := wizard.ParseStep(stepName)
	if !ok {
		h.logger.Warn("GET /wizard/sessions/{id}/options - Unknown step: %q", stepName)
		handlers.RespondBadRequest(w, msgUnknownStep)
		return
	}

	req := &getStepOptions.Request{
		SessionID: sessionID,
		Step:      step,
		Date:      r.URL.Query().Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getStepOptions.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/sessions/{id}/options - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getStepOptions.ErrInvalidStep):
			h.logger.Warn("GET /wizard/sessions/{id}/options - Step has no options: step=%s", stepName)
			handlers.RespondBadRequest(w, msgStepHasNoOptions)

		case errors.Is(err, getStepOptions.ErrDependencyNotSelected):
			h.logger.Warn("GET /wizard/sessions/{id}/options - Dependency not selected: session_id=%s, step=%s",
				sessionID, stepName)
			handlers.RespondError(w, http.StatusConflict, msgDependencyUnset)

		case errors.Is(err, getStepOptions.ErrInvalidDate):
			h.logger.Warn("GET /wizard/sessions/{id}/options - Invalid date: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getStepOptions.ErrFetchFailed):
			// Ошибка локальна для шага: выбор пользователя не тронут,
			// повторная загрузка — по повторному заходу на шаг
			h.logger.Error("GET /wizard/sessions/{id}/options - Fetch failed: session_id=%s, step=%s, error=%v",
				sessionID, stepName, err)
			handlers.RespondError(w, http.StatusBadGateway, msgFetchFailed)

		default:
			h.logger.Error("GET /wizard/sessions/{id}/options - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
