package submit_booking

import (
	"time"

	submitBooking "github.com/m04kA/SMC-DetailingService/internal/usecase/submit_booking"
)

// PriceResponse раскладка цены на момент отправки
type PriceResponse struct {
	BasePrice     float64 `json:"basePrice"`
	PackagePrice  float64 `json:"packagePrice"`
	AddOnsTotal   float64 `json:"addOnsTotal"`
	DeliveryPrice float64 `json:"deliveryPrice"`
	Total         float64 `json:"total"`
}

// SubmitBookingResponse HTTP-ответ с созданным бронированием
type SubmitBookingResponse struct {
	Reference  string        `json:"reference"`
	Status     string        `json:"status"`
	TotalPrice float64       `json:"totalPrice"`
	Price      PriceResponse `json:"price"`
	CreatedAt  string        `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Reference:  resp.Reference,
		Status:     resp.Status,
		TotalPrice: resp.TotalPrice,
		Price: PriceResponse{
			BasePrice:     resp.Price.BasePrice,
			PackagePrice:  resp.Price.PackagePrice,
			AddOnsTotal:   resp.Price.AddOnsTotal,
			DeliveryPrice: resp.Price.DeliveryPrice,
			Total:         resp.Price.Total,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
