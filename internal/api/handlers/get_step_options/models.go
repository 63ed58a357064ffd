package get_step_options

import (
	getStepOptions "github.com/m04kA/SMC-DetailingService/internal/usecase/get_step_options"
)

// VehicleTypeResponse тип транспорта в ответе API
type VehicleTypeResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	BasePrice     float64 `json:"basePrice"`
	IsDeliverable bool    `json:"isDeliverable"`
}

// PackageResponse пакет услуг в ответе API
type PackageResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// AddOnResponse дополнительная услуга в ответе API
type AddOnResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// TimeSlotResponse временной слот в ответе API
type TimeSlotResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DeliveryTypeResponse тип доставки в ответе API
type DeliveryTypeResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	RequiresAddress bool    `json:"requiresAddress"`
}

// StepOptionsResponse HTTP-ответ с опциями шага
// Заполнен только список запрошенного шага
type StepOptionsResponse struct {
	Step          string                 `json:"step"`
	VehicleTypes  []VehicleTypeResponse  `json:"vehicleTypes,omitempty"`
	Packages      []PackageResponse      `json:"packages,omitempty"`
	AddOns        []AddOnResponse        `json:"addOns,omitempty"`
	TimeSlots     []TimeSlotResponse     `json:"timeSlots,omitempty"`
	DeliveryTypes []DeliveryTypeResponse `json:"deliveryTypes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStepOptions.Response) *StepOptionsResponse {
	result := &StepOptionsResponse{Step: resp.Step.String()}

	for _, item := range resp.VehicleTypes {
		result.VehicleTypes = append(result.VehicleTypes, VehicleTypeResponse{
			ID:            item.ID,
			Name:          item.Name,
			Description:   item.Description,
			BasePrice:     item.BasePrice,
			IsDeliverable: item.IsDeliverable,
		})
	}
	for _, item := range resp.Packages {
		result.Packages = append(result.Packages, PackageResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	for _, item := range resp.AddOns {
		result.AddOns = append(result.AddOns, AddOnResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	for _, item := range resp.TimeSlots {
		result.TimeSlots = append(result.TimeSlots, TimeSlotResponse{
			ID:        item.ID,
			Date:      item.Date,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
		})
	}
	for _, item := range resp.DeliveryTypes {
		result.DeliveryTypes = append(result.DeliveryTypes, DeliveryTypeResponse{
			ID:              item.ID,
			Name:            item.Name,
			Price:           item.Price,
			RequiresAddress: item.RequiresAddress,
		})
	}

	return result
}
