package wizard

import (
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// CanAdvance проверяет гейт шага: можно ли двигаться вперед с текущим выбором.
// Гейт шага доставки читает requiresAddress у ВЫБРАННОГО сейчас типа доставки,
// поэтому список типов доставки передается явно.
func CanAdvance(step Step, sel *domain.Selection, deliveryTypes []domain.DeliveryType) bool {
	switch step {
	case StepVehicleType:
		return sel.VehicleTypeID != nil

	case StepPackage:
		return sel.PackageID != nil

	case StepAddOns:
		// Допы не обязательны
		return true

	case StepTimeSlot:
		return sel.TimeSlotID != nil

	case StepDelivery:
		return deliveryGateOpen(sel, deliveryTypes)

	case StepConfirmation:
		// Контакты заполнены и все предыдущие гейты открыты
		if !sel.Contact.IsComplete() {
			return false
		}
		for prev := FirstStep; prev < StepConfirmation; prev++ {
			if !CanAdvance(prev, sel, deliveryTypes) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// deliveryGateOpen проверяет гейт шага доставки: тип доставки выбран и,
// если он требует адрес, адрес не пустой (пробелы не считаются)
func deliveryGateOpen(sel *domain.Selection, deliveryTypes []domain.DeliveryType) bool {
	if sel.DeliveryTypeID == nil {
		return false
	}
	for _, dt := range deliveryTypes {
		if dt.ID != *sel.DeliveryTypeID {
			continue
		}
		if dt.RequiresAddress && strings.TrimSpace(sel.Address) == "" {
			return false
		}
		return true
	}
	// Выбранный тип доставки отсутствует в актуальном каталоге —
	// проверить requiresAddress невозможно, гейт закрыт
	return false
}

// GateStatus состояние гейтов всех шагов для отображения в UI
type GateStatus map[Step]bool

// Gates возвращает состояние гейтов каждого шага для текущего выбора
func Gates(sel *domain.Selection, deliveryTypes []domain.DeliveryType) GateStatus {
	status := make(GateStatus, int(LastStep))
	for step := FirstStep; step <= LastStep; step++ {
		status[step] = CanAdvance(step, sel, deliveryTypes)
	}
	return status
}
