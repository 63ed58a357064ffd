package get_step_options

import (
	"context"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// SessionAccessor доступ к сессии визарда под блокировкой хранилища
type SessionAccessor interface {
	Do(id string, fn func(session *wizard.Session) error) error
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
	ListPackages(ctx context.Context, vehicleTypeID int64) ([]domain.Package, error)
	ListAddOns(ctx context.Context, packageID int64) ([]domain.AddOn, error)
	ListDeliveryTypes(ctx context.Context) ([]domain.DeliveryType, error)
	ListTimeSlots(ctx context.Context, date string) ([]domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
