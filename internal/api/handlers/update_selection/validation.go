package update_selection

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// validate проверяет длину текстовых полей запроса.
// Семантическая валидация (email, применимость допов) принадлежит
// CatalogService, здесь отсекаются только заведомо некорректные данные.
func (r *UpdateSelectionRequest) validate() error {
	limits := []struct {
		name  string
		value *string
		max   int
	}{
		{"address", r.Address, domain.MaxAddressLength},
		{"firstName", r.FirstName, domain.MaxNameLength},
		{"lastName", r.LastName, domain.MaxNameLength},
		{"email", r.Email, domain.MaxNameLength},
		{"phone", r.Phone, domain.MaxNameLength},
		{"vehicleRegNumber", r.VehicleRegNumber, domain.MaxNameLength},
		{"notes", r.Notes, domain.MaxNotesLength},
	}

	for _, field := range limits {
		if field.value == nil {
			continue
		}
		if utf8.RuneCountInString(*field.value) > field.max {
			return fmt.Errorf("field %s exceeds %d characters", field.name, field.max)
		}
	}

	return nil
}
