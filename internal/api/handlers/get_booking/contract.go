package get_booking

import (
	"context"

	bookingModels "github.com/m04kA/SMC-DetailingService/internal/service/bookings/models"
)

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	GetByReference(ctx context.Context, reference string) (*bookingModels.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
