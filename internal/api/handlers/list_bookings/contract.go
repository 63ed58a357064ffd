package list_bookings

import (
	"context"

	bookingModels "github.com/m04kA/SMC-DetailingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	ListForAdmin(ctx context.Context, sessionCookie string) (*bookingModels.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
