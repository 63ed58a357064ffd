package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "PENDING"
	StatusConfirmed           BookingStatus = "CONFIRMED"
	StatusCancelledByCustomer BookingStatus = "CANCELLED_BY_CUSTOMER"
	StatusCancelledByAdmin    BookingStatus = "CANCELLED_BY_ADMIN"
	StatusCompleted           BookingStatus = "COMPLETED"
)

// Booking represents a detailing booking as returned by the upstream service
type Booking struct {
	ID        int64
	Reference string
	Status    BookingStatus

	VehicleType  VehicleType
	Package      Package
	AddOns       []AddOn
	TimeSlot     TimeSlot
	DeliveryType DeliveryType
	Address      *string
	TotalPrice   float64

	FirstName        string
	LastName         string
	Email            string
	Phone            string
	VehicleRegNumber string
	Notes            *string

	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled by the customer
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByAdmin
}
