package models

import (
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// Selection состояние выбора пользователя
type Selection struct {
	VehicleTypeID  *int64  `json:"vehicleTypeId"`
	PackageID      *int64  `json:"packageId"`
	AddOnIDs       []int64 `json:"addOnIds"`
	TimeSlotID     *int64  `json:"timeSlotId"`
	DeliveryTypeID *int64  `json:"deliveryTypeId"`
	Address        string  `json:"address"`

	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	VehicleRegNumber string `json:"vehicleRegNumber"`
	Notes            string `json:"notes"`
}

// Price раскладка цены текущего выбора
type Price struct {
	BasePrice     float64 `json:"basePrice"`
	PackagePrice  float64 `json:"packagePrice"`
	AddOnsTotal   float64 `json:"addOnsTotal"`
	DeliveryPrice float64 `json:"deliveryPrice"`
	Total         float64 `json:"total"`
}

// SessionState снимок состояния сессии визарда
type SessionState struct {
	ID         string          `json:"id"`
	Step       string          `json:"step"`
	StepNumber int             `json:"stepNumber"`
	TotalSteps int             `json:"totalSteps"`
	Selection  Selection       `json:"selection"`
	Price      Price           `json:"price"`
	Gates      map[string]bool `json:"gates"`
	CanAdvance bool            `json:"canAdvance"`
}

// FromSession строит снимок состояния из сессии.
// Вызывается под блокировкой хранилища сессий.
func FromSession(s *wizard.Session) *SessionState {
	price := s.Price()
	gates := wizard.Gates(&s.Selection, s.CurrentDeliveryTypes())

	gatesByName := make(map[string]bool, len(gates))
	for step, open := range gates {
		gatesByName[step.String()] = open
	}

	return &SessionState{
		ID:         s.ID,
		Step:       s.Step.String(),
		StepNumber: int(s.Step),
		TotalSteps: int(wizard.LastStep),
		Selection:  fromDomainSelection(s.Selection),
		Price:      fromDomainPrice(price),
		Gates:      gatesByName,
		CanAdvance: gates[s.Step],
	}
}

func fromDomainSelection(sel domain.Selection) Selection {
	addOnIDs := sel.AddOnIDs
	if addOnIDs == nil {
		addOnIDs = []int64{}
	}

	return Selection{
		VehicleTypeID:    sel.VehicleTypeID,
		PackageID:        sel.PackageID,
		AddOnIDs:         addOnIDs,
		TimeSlotID:       sel.TimeSlotID,
		DeliveryTypeID:   sel.DeliveryTypeID,
		Address:          sel.Address,
		FirstName:        sel.Contact.FirstName,
		LastName:         sel.Contact.LastName,
		Email:            sel.Contact.Email,
		Phone:            sel.Contact.Phone,
		VehicleRegNumber: sel.Contact.VehicleRegNumber,
		Notes:            sel.Contact.Notes,
	}
}

func fromDomainPrice(p domain.PriceBreakdown) Price {
	return Price{
		BasePrice:     p.BasePrice,
		PackagePrice:  p.PackagePrice,
		AddOnsTotal:   p.AddOnsTotal,
		DeliveryPrice: p.DeliveryPrice,
		Total:         p.Total,
	}
}
