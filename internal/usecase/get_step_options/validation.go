package get_step_options

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInternal)
	}

	if !req.Step.IsValid() || req.Step == wizard.StepConfirmation {
		return ErrInvalidStep
	}

	// Дата обязательна только для шага слотов
	if req.Step == wizard.StepTimeSlot {
		if req.Date == "" {
			return fmt.Errorf("%w: date is required for the time slot step", ErrInvalidDate)
		}
		if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
			return fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, req.Date)
		}
	}

	return nil
}

// activeVehicleTypes отфильтровывает неактивные позиции каталога.
// CatalogService сам фильтрует публичные выдачи, но флаг isActive
// уважается и здесь на случай рассинхронизации.
func activeVehicleTypes(items []domain.VehicleType) []domain.VehicleType {
	result := make([]domain.VehicleType, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			result = append(result, item)
		}
	}
	return result
}

func activePackages(items []domain.Package) []domain.Package {
	result := make([]domain.Package, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			result = append(result, item)
		}
	}
	return result
}

func activeAddOns(items []domain.AddOn) []domain.AddOn {
	result := make([]domain.AddOn, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			result = append(result, item)
		}
	}
	return result
}

func activeDeliveryTypes(items []domain.DeliveryType) []domain.DeliveryType {
	result := make([]domain.DeliveryType, 0, len(items))
	for _, item := range items {
		if item.IsActive {
			result = append(result, item)
		}
	}
	return result
}

// availableSlots оставляет только слоты со статусом AVAILABLE —
// занятые и заблокированные пользователю не предлагаются
func availableSlots(items []domain.TimeSlot) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(items))
	for _, item := range items {
		if item.IsAvailable() {
			result = append(result, item)
		}
	}
	return result
}
