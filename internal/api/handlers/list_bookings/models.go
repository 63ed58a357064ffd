package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/pager"
	bookingModels "github.com/m04kA/SMC-DetailingService/internal/service/bookings/models"
)

// ListBookingsResponse страница бронирований для админки
type ListBookingsResponse struct {
	Bookings    []*bookingModels.BookingResponse `json:"bookings"`
	CurrentPage int                              `json:"currentPage"`
	TotalPages  int                              `json:"totalPages"`
	TotalItems  int                              `json:"totalItems"`
	PageSize    int                              `json:"pageSize"`
	HasPrev     bool                             `json:"hasPrev"`
	HasNext     bool                             `json:"hasNext"`
}

// parsePagination читает параметры page и size из query-строки.
// Некорректные значения не являются ошибкой: pager сам приводит
// их к допустимому диапазону.
func parsePagination(r *http.Request) *pager.State {
	state := pager.NewState(domain.DefaultPageSize, domain.AllowedPageSizes)

	if raw := r.URL.Query().Get("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			state.SetPageSize(size)
		}
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			state.SetPage(page)
		}
	}

	return state
}

// buildPage режет полный список бронирований на запрошенную страницу
func buildPage(list *bookingModels.BookingListResponse, state *pager.State) *ListBookingsResponse {
	page := state.Paginate(list.Total)

	return &ListBookingsResponse{
		Bookings:    list.Bookings[page.Start:page.End],
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalItems:  page.TotalItems,
		PageSize:    page.PageSize,
		HasPrev:     page.HasPrev(),
		HasNext:     page.HasNext(),
	}
}
