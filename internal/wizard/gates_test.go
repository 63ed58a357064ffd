package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/ptr"
)

var testDeliveryTypes = []domain.DeliveryType{
	{ID: 1, Name: "Самостоятельный приезд", Price: 0, RequiresAddress: false, IsActive: true},
	{ID: 2, Name: "Забор автомобиля", Price: 10, RequiresAddress: true, IsActive: true},
}

func completeSelection() *domain.Selection {
	return &domain.Selection{
		VehicleTypeID:  ptr.Ptr(int64(1)),
		PackageID:      ptr.Ptr(int64(10)),
		AddOnIDs:       []int64{100},
		TimeSlotID:     ptr.Ptr(int64(500)),
		DeliveryTypeID: ptr.Ptr(int64(1)),
		Contact: domain.Contact{
			FirstName:        "Иван",
			LastName:         "Петров",
			Email:            "ivan@example.com",
			Phone:            "+79990001122",
			VehicleRegNumber: "А123БВ77",
		},
	}
}

func TestCanAdvance_PerStep(t *testing.T) {
	tests := []struct {
		name     string
		step     Step
		mutate   func(sel *domain.Selection)
		expected bool
	}{
		{
			name:     "vehicle type step requires selection",
			step:     StepVehicleType,
			mutate:   func(sel *domain.Selection) { sel.VehicleTypeID = nil },
			expected: false,
		},
		{
			name:     "vehicle type step open when selected",
			step:     StepVehicleType,
			mutate:   func(sel *domain.Selection) {},
			expected: true,
		},
		{
			name:     "package step requires selection",
			step:     StepPackage,
			mutate:   func(sel *domain.Selection) { sel.PackageID = nil },
			expected: false,
		},
		{
			name:     "add-ons step always open",
			step:     StepAddOns,
			mutate:   func(sel *domain.Selection) { sel.AddOnIDs = nil },
			expected: true,
		},
		{
			name:     "time slot step requires selection",
			step:     StepTimeSlot,
			mutate:   func(sel *domain.Selection) { sel.TimeSlotID = nil },
			expected: false,
		},
		{
			name:     "delivery step requires selection",
			step:     StepDelivery,
			mutate:   func(sel *domain.Selection) { sel.DeliveryTypeID = nil },
			expected: false,
		},
		{
			name:     "delivery step open without address when not required",
			step:     StepDelivery,
			mutate:   func(sel *domain.Selection) {},
			expected: true,
		},
		{
			name: "delivery step closed when address required and empty",
			step: StepDelivery,
			mutate: func(sel *domain.Selection) {
				sel.DeliveryTypeID = ptr.Ptr(int64(2))
			},
			expected: false,
		},
		{
			name: "delivery step closed when address is whitespace",
			step: StepDelivery,
			mutate: func(sel *domain.Selection) {
				sel.DeliveryTypeID = ptr.Ptr(int64(2))
				sel.Address = "   "
			},
			expected: false,
		},
		{
			name: "delivery step open when required address filled",
			step: StepDelivery,
			mutate: func(sel *domain.Selection) {
				sel.DeliveryTypeID = ptr.Ptr(int64(2))
				sel.Address = "ул. Ленина, 1"
			},
			expected: true,
		},
		{
			name: "delivery step closed when selected type missing from catalog",
			step: StepDelivery,
			mutate: func(sel *domain.Selection) {
				sel.DeliveryTypeID = ptr.Ptr(int64(99))
			},
			expected: false,
		},
		{
			name:     "confirmation open for complete selection",
			step:     StepConfirmation,
			mutate:   func(sel *domain.Selection) {},
			expected: true,
		},
		{
			name:     "confirmation requires contact",
			step:     StepConfirmation,
			mutate:   func(sel *domain.Selection) { sel.Contact.Email = "" },
			expected: false,
		},
		{
			name:     "confirmation requires all prior gates",
			step:     StepConfirmation,
			mutate:   func(sel *domain.Selection) { sel.TimeSlotID = nil },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := completeSelection()
			tt.mutate(sel)
			assert.Equal(t, tt.expected, CanAdvance(tt.step, sel, testDeliveryTypes))
		})
	}
}

func TestGates(t *testing.T) {
	sel := &domain.Selection{VehicleTypeID: ptr.Ptr(int64(1))}

	gates := Gates(sel, testDeliveryTypes)

	assert.Len(t, gates, int(LastStep))
	assert.True(t, gates[StepVehicleType])
	assert.False(t, gates[StepPackage])
	assert.True(t, gates[StepAddOns])
	assert.False(t, gates[StepTimeSlot])
	assert.False(t, gates[StepDelivery])
	assert.False(t, gates[StepConfirmation])
}
