package domain

import "github.com/m04kA/SMC-DetailingService/pkg/types"

// SlotStatus represents the availability status of a time slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "AVAILABLE"
	SlotBooked    SlotStatus = "BOOKED"
	SlotBlocked   SlotStatus = "BLOCKED"
)

// VehicleType represents a bookable vehicle category (e.g. sedan, SUV)
type VehicleType struct {
	ID            int64
	Name          string
	Description   *string
	BasePrice     float64
	IsDeliverable bool
	DisplayOrder  int
	IsActive      bool
}

// Package represents a detailing package offered for a vehicle type
type Package struct {
	ID           int64
	Name         string
	Description  *string
	Price        float64
	DisplayOrder int
	IsActive     bool
}

// AddOn represents an optional extra applicable to a package
type AddOn struct {
	ID           int64
	Name         string
	Description  *string
	Price        float64
	DisplayOrder int
	IsActive     bool
}

// DeliveryType represents how the vehicle reaches the workshop
// (customer drop-off, pickup by the business, etc.)
type DeliveryType struct {
	ID              int64
	Name            string
	Price           float64
	RequiresAddress bool
	IsActive        bool
}

// TimeSlot represents a bookable time window on a specific date
type TimeSlot struct {
	ID        int64
	Date      string // YYYY-MM-DD
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    SlotStatus
}

// IsAvailable returns true if the slot can still be booked
func (s *TimeSlot) IsAvailable() bool {
	return s.Status == SlotAvailable
}
