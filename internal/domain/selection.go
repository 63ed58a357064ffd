package domain

import "strings"

// Contact holds the customer details collected on the confirmation step
type Contact struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	VehicleRegNumber string
	Notes            string
}

// IsComplete returns true if all required contact fields are filled in.
// Notes are optional.
func (c Contact) IsComplete() bool {
	return strings.TrimSpace(c.FirstName) != "" &&
		strings.TrimSpace(c.LastName) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Phone) != "" &&
		strings.TrimSpace(c.VehicleRegNumber) != ""
}

// Selection holds everything the customer has picked so far in the wizard.
// Selections form a dependency chain vehicle type → package → add-ons;
// time slot and delivery type are independent axes.
type Selection struct {
	VehicleTypeID  *int64
	PackageID      *int64
	AddOnIDs       []int64
	TimeSlotID     *int64
	DeliveryTypeID *int64
	Address        string
	Contact        Contact
}

// HasAddOn returns true if the add-on id is currently selected
func (s *Selection) HasAddOn(id int64) bool {
	for _, selected := range s.AddOnIDs {
		if selected == id {
			return true
		}
	}
	return false
}
