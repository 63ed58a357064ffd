package models

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// CatalogItem позиция каталога в составе бронирования
type CatalogItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// TimeSlot временной слот бронирования
type TimeSlot struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingResponse бронирование для выдачи клиенту
type BookingResponse struct {
	ID                 int64         `json:"id"`
	Reference          string        `json:"reference"`
	Status             string        `json:"status"`
	VehicleType        CatalogItem   `json:"vehicleType"`
	Package            CatalogItem   `json:"package"`
	AddOns             []CatalogItem `json:"addOns"`
	TimeSlot           TimeSlot      `json:"timeSlot"`
	DeliveryType       CatalogItem   `json:"deliveryType"`
	Address            *string       `json:"address,omitempty"`
	TotalPrice         float64       `json:"totalPrice"`
	FirstName          string        `json:"firstName"`
	LastName           string        `json:"lastName"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	VehicleRegNumber   string        `json:"vehicleRegNumber"`
	Notes              *string       `json:"notes,omitempty"`
	CancellationReason *string       `json:"cancellationReason,omitempty"`
	CanBeCancelled     bool          `json:"canBeCancelled"`
	CreatedAt          string        `json:"createdAt"`
	UpdatedAt          string        `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain-бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	addOns := make([]CatalogItem, 0, len(b.AddOns))
	for _, a := range b.AddOns {
		addOns = append(addOns, CatalogItem{ID: a.ID, Name: a.Name, Price: a.Price})
	}

	return &BookingResponse{
		ID:        b.ID,
		Reference: b.Reference,
		Status:    string(b.Status),
		VehicleType: CatalogItem{
			ID:    b.VehicleType.ID,
			Name:  b.VehicleType.Name,
			Price: b.VehicleType.BasePrice,
		},
		Package: CatalogItem{
			ID:    b.Package.ID,
			Name:  b.Package.Name,
			Price: b.Package.Price,
		},
		AddOns: addOns,
		TimeSlot: TimeSlot{
			ID:        b.TimeSlot.ID,
			Date:      b.TimeSlot.Date,
			StartTime: b.TimeSlot.StartTime.String(),
			EndTime:   b.TimeSlot.EndTime.String(),
		},
		DeliveryType: CatalogItem{
			ID:    b.DeliveryType.ID,
			Name:  b.DeliveryType.Name,
			Price: b.DeliveryType.Price,
		},
		Address:            b.Address,
		TotalPrice:         b.TotalPrice,
		FirstName:          b.FirstName,
		LastName:           b.LastName,
		Email:              b.Email,
		Phone:              b.Phone,
		VehicleRegNumber:   b.VehicleRegNumber,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CanBeCancelled:     b.CanBeCancelled(),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
