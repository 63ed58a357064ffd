package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// SessionAccessor доступ к сессии визарда под блокировкой хранилища
type SessionAccessor interface {
	Do(id string, fn func(session *wizard.Session) error) error
	Finish(id string)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	CreateBooking(ctx context.Context, req *catalogservice.CreateBookingRequest) (*domain.Booking, error)
	ListDeliveryTypes(ctx context.Context) ([]domain.DeliveryType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
