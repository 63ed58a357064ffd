package get_step_options

import (
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// Request запрос опций шага
type Request struct {
	SessionID string
	Step      wizard.Step
	Date      string // обязательна только для шага слотов, YYYY-MM-DD
}

// VehicleTypeOption тип транспорта для отображения на шаге выбора
type VehicleTypeOption struct {
	ID            int64
	Name          string
	Description   *string
	BasePrice     float64
	IsDeliverable bool
}

// PackageOption пакет услуг для отображения на шаге выбора
type PackageOption struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
}

// AddOnOption дополнительная услуга для отображения на шаге выбора
type AddOnOption struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
}

// TimeSlotOption временной слот для отображения на шаге выбора
// Пользователю предлагаются только слоты со статусом AVAILABLE
type TimeSlotOption struct {
	ID        int64
	Date      string
	StartTime string
	EndTime   string
}

// DeliveryTypeOption тип доставки для отображения на шаге выбора
type DeliveryTypeOption struct {
	ID              int64
	Name            string
	Price           float64
	RequiresAddress bool
}

// Response опции запрошенного шага; заполнен только список этого шага
type Response struct {
	Step          wizard.Step
	VehicleTypes  []VehicleTypeOption
	Packages      []PackageOption
	AddOns        []AddOnOption
	TimeSlots     []TimeSlotOption
	DeliveryTypes []DeliveryTypeOption
}

func vehicleTypeOptions(items []domain.VehicleType) []VehicleTypeOption {
	result := make([]VehicleTypeOption, 0, len(items))
	for _, item := range items {
		result = append(result, VehicleTypeOption{
			ID:            item.ID,
			Name:          item.Name,
			Description:   item.Description,
			BasePrice:     item.BasePrice,
			IsDeliverable: item.IsDeliverable,
		})
	}
	return result
}

func packageOptions(items []domain.Package) []PackageOption {
	result := make([]PackageOption, 0, len(items))
	for _, item := range items {
		result = append(result, PackageOption{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return result
}

func addOnOptions(items []domain.AddOn) []AddOnOption {
	result := make([]AddOnOption, 0, len(items))
	for _, item := range items {
		result = append(result, AddOnOption{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return result
}

func timeSlotOptions(items []domain.TimeSlot) []TimeSlotOption {
	result := make([]TimeSlotOption, 0, len(items))
	for _, item := range items {
		result = append(result, TimeSlotOption{
			ID:        item.ID,
			Date:      item.Date,
			StartTime: item.StartTime.String(),
			EndTime:   item.EndTime.String(),
		})
	}
	return result
}

func deliveryTypeOptions(items []domain.DeliveryType) []DeliveryTypeOption {
	result := make([]DeliveryTypeOption, 0, len(items))
	for _, item := range items {
		result = append(result, DeliveryTypeOption{
			ID:              item.ID,
			Name:            item.Name,
			Price:           item.Price,
			RequiresAddress: item.RequiresAddress,
		})
	}
	return result
}
