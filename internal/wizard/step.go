package wizard

// Step шаг визарда бронирования
// Шаги проходятся строго по порядку: транспорт → пакет → допы → слот → доставка → подтверждение
type Step int

const (
	StepVehicleType Step = iota + 1
	StepPackage
	StepAddOns
	StepTimeSlot
	StepDelivery
	StepConfirmation
)

// FirstStep первый шаг визарда
const FirstStep = StepVehicleType

// LastStep последний шаг визарда
const LastStep = StepConfirmation

var stepNames = map[Step]string{
	StepVehicleType:  "vehicle_type",
	StepPackage:      "package",
	StepAddOns:       "add_ons",
	StepTimeSlot:     "time_slot",
	StepDelivery:     "delivery",
	StepConfirmation: "confirmation",
}

var stepsByName = map[string]Step{
	"vehicle_type": StepVehicleType,
	"package":      StepPackage,
	"add_ons":      StepAddOns,
	"time_slot":    StepTimeSlot,
	"delivery":     StepDelivery,
	"confirmation": StepConfirmation,
}

// String возвращает строковое имя шага для API и логов
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid возвращает true для известного шага
func (s Step) IsValid() bool {
	return s >= FirstStep && s <= LastStep
}

// ParseStep парсит имя шага из строки
func ParseStep(name string) (Step, bool) {
	step, ok := stepsByName[name]
	return step, ok
}
