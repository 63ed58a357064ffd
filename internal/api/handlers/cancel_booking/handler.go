package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/bookings"
)

const (
	msgBookingNotFound = "бронирование не найдено"
	msgCannotCancel    = "бронирование не может быть отменено"
	msgInvalidInput    = "некорректный номер бронирования"
)

type Handler struct {
	bookings BookingsService
	logger   Logger
}

func NewHandler(bookings BookingsService, logger Logger) *Handler {
	return &Handler{
		bookings: bookings,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/bookings/{reference}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	err := h.bookings.Cancel(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{reference} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("DELETE /bookings/{reference} - Booking cannot be cancelled: reference=%s", reference)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{reference} - Invalid reference: reference=%s, error=%v", reference, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("DELETE /bookings/{reference} - Failed to cancel booking: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{reference} - Booking cancelled: reference=%s", reference)
	handlers.RespondNoContent(w)
}
