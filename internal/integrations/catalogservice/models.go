package catalogservice

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// VehicleType модель типа транспорта из CatalogService
type VehicleType struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	BasePrice     float64 `json:"basePrice"`
	IsDeliverable bool    `json:"isDeliverable"`
	DisplayOrder  int     `json:"displayOrder"`
	IsActive      bool    `json:"isActive"`
}

// Package модель пакета услуг из CatalogService
type Package struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     bool    `json:"isActive"`
}

// AddOn модель дополнительной услуги из CatalogService
type AddOn struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Price        float64 `json:"price"`
	DisplayOrder int     `json:"displayOrder"`
	IsActive     bool    `json:"isActive"`
}

// DeliveryType модель типа доставки из CatalogService
type DeliveryType struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	RequiresAddress bool    `json:"requiresAddress"`
	IsActive        bool    `json:"isActive"`
}

// TimeSlot модель временного слота из CatalogService
type TimeSlot struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`      // "2025-01-15"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Status    string `json:"status"`    // AVAILABLE | BOOKED | BLOCKED
}

// CreateBookingRequest тело запроса создания бронирования
// Пустые необязательные поля (address, notes) передаются как отсутствующие,
// а не как пустые строки
type CreateBookingRequest struct {
	VehicleTypeID    int64   `json:"vehicleTypeId"`
	PackageID        int64   `json:"packageId"`
	AddOnIDs         []int64 `json:"addOnIds"`
	TimeSlotID       int64   `json:"timeSlotId"`
	DeliveryTypeID   int64   `json:"deliveryTypeId"`
	Address          *string `json:"address,omitempty"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	VehicleRegNumber string  `json:"vehicleRegNumber"`
	Notes            *string `json:"notes,omitempty"`
}

// Booking модель бронирования из CatalogService
type Booking struct {
	ID                 int64        `json:"id"`
	Reference          string       `json:"reference"`
	Status             string       `json:"status"`
	VehicleType        VehicleType  `json:"vehicleType"`
	Package            Package      `json:"package"`
	AddOns             []AddOn      `json:"addOns"`
	TimeSlot           TimeSlot     `json:"timeSlot"`
	DeliveryType       DeliveryType `json:"deliveryType"`
	Address            *string      `json:"address"`
	TotalPrice         float64      `json:"totalPrice"`
	FirstName          string       `json:"firstName"`
	LastName           string       `json:"lastName"`
	Phone              string       `json:"phoneNumber"`
	Email              string       `json:"email"`
	VehicleRegNumber   string       `json:"vehicleRegistrationNumber"`
	Notes              *string      `json:"additionalComments"`
	CancellationReason *string      `json:"cancellationReason"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует тип транспорта в domain-модель
func (v VehicleType) ToDomain() domain.VehicleType {
	return domain.VehicleType{
		ID:            v.ID,
		Name:          v.Name,
		Description:   v.Description,
		BasePrice:     v.BasePrice,
		IsDeliverable: v.IsDeliverable,
		DisplayOrder:  v.DisplayOrder,
		IsActive:      v.IsActive,
	}
}

// ToDomain конвертирует пакет в domain-модель
func (p Package) ToDomain() domain.Package {
	return domain.Package{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DisplayOrder: p.DisplayOrder,
		IsActive:     p.IsActive,
	}
}

// ToDomain конвертирует дополнительную услугу в domain-модель
func (a AddOn) ToDomain() domain.AddOn {
	return domain.AddOn{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Price:        a.Price,
		DisplayOrder: a.DisplayOrder,
		IsActive:     a.IsActive,
	}
}

// ToDomain конвертирует тип доставки в domain-модель
func (d DeliveryType) ToDomain() domain.DeliveryType {
	return domain.DeliveryType{
		ID:              d.ID,
		Name:            d.Name,
		Price:           d.Price,
		RequiresAddress: d.RequiresAddress,
		IsActive:        d.IsActive,
	}
}

// ToDomain конвертирует временной слот в domain-модель
func (t TimeSlot) ToDomain() domain.TimeSlot {
	return domain.TimeSlot{
		ID:        t.ID,
		Date:      t.Date,
		StartTime: types.TimeString(t.StartTime),
		EndTime:   types.TimeString(t.EndTime),
		Status:    domain.SlotStatus(t.Status),
	}
}

// ToDomain конвертирует бронирование в domain-модель
func (b Booking) ToDomain() *domain.Booking {
	addOns := make([]domain.AddOn, 0, len(b.AddOns))
	for _, a := range b.AddOns {
		addOns = append(addOns, a.ToDomain())
	}

	return &domain.Booking{
		ID:                 b.ID,
		Reference:          b.Reference,
		Status:             domain.BookingStatus(b.Status),
		VehicleType:        b.VehicleType.ToDomain(),
		Package:            b.Package.ToDomain(),
		AddOns:             addOns,
		TimeSlot:           b.TimeSlot.ToDomain(),
		DeliveryType:       b.DeliveryType.ToDomain(),
		Address:            b.Address,
		TotalPrice:         b.TotalPrice,
		FirstName:          b.FirstName,
		LastName:           b.LastName,
		Email:              b.Email,
		Phone:              b.Phone,
		VehicleRegNumber:   b.VehicleRegNumber,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
