package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingService/internal/service/bookings"
)

const msgUnauthorized = "сессия администратора недействительна"

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

// Handle GET /api/v1/admin/bookings?page=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state := parsePagination(r)

	list, err := h.bookings.ListForAdmin(r.Context(), r.Header.Get("Cookie"))
	if err != nil {
		if errors.Is(err, bookings.ErrUnauthorized) {
			h.logger.Warn("GET /admin/bookings - Admin session rejected by upstream")
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, buildPage(list, state))
}
