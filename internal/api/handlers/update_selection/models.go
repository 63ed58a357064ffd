package update_selection

import (
	"bytes"
	"encoding/json"

	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

var jsonNull = []byte("null")

// OptionalID id-поле PATCH-запроса, различающее три состояния:
// поле отсутствует в запросе (Set == false), явный сброс значением
// null (Set, Value == nil) и установка нового id.
// encoding/json не отличает null от отсутствия поля для указателей,
// поэтому присутствие фиксируется в UnmarshalJSON.
type OptionalID struct {
	Set   bool
	Value *int64
}

// UnmarshalJSON вызывается только для присутствующих в запросе полей,
// в том числе для явного null
func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, jsonNull) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// UpdateSelectionRequest HTTP-модель частичного обновления выбора
type UpdateSelectionRequest struct {
	VehicleTypeID  OptionalID `json:"vehicleTypeId"`
	PackageID      OptionalID `json:"packageId"`
	AddOnIDs       *[]int64   `json:"addOnIds,omitempty"`
	TimeSlotID     OptionalID `json:"timeSlotId"`
	DeliveryTypeID OptionalID `json:"deliveryTypeId"`
	Address        *string    `json:"address,omitempty"`

	FirstName        *string `json:"firstName,omitempty"`
	LastName         *string `json:"lastName,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	VehicleRegNumber *string `json:"vehicleRegNumber,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// ToSelectionUpdate конвертирует HTTP-запрос в модель визарда
func (r *UpdateSelectionRequest) ToSelectionUpdate() wizard.SelectionUpdate {
	return wizard.SelectionUpdate{
		VehicleTypeID:  toOptionalID(r.VehicleTypeID),
		PackageID:      toOptionalID(r.PackageID),
		AddOnIDs:       r.AddOnIDs,
		TimeSlotID:     toOptionalID(r.TimeSlotID),
		DeliveryTypeID: toOptionalID(r.DeliveryTypeID),
		Address:        r.Address,

		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		VehicleRegNumber: r.VehicleRegNumber,
		Notes:            r.Notes,
	}
}

func toOptionalID(field OptionalID) wizard.OptionalID {
	return wizard.OptionalID{Set: field.Set, Value: field.Value}
}
