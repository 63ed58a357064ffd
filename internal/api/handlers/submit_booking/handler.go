package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-DetailingService/internal/usecase/submit_booking"
)

const (
	msgSessionNotFound   = "сессия не найдена или истекла"
	msgGatesNotSatisfied = "не все шаги визарда завершены"
	msgSlotNotAvailable  = "выбранный временной слот уже занят, выберите другой"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrGatesNotSatisfied):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Gates not satisfied: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgGatesNotSatisfied)

		case errors.Is(err, submitBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Slot conflict: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, submitBooking.ErrValidationRejected):
			// Сообщение CatalogService прокидывается пользователю без изменений
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Rejected by upstream: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /wizard/sessions/{id}/submit - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/submit - Booking created: reference=%s, session_id=%s",
		result.Reference, sessionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
