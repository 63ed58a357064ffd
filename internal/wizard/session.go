package wizard

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// OptionalID необязательное поле частичного обновления выбора
// Set == false означает, что поле не передавалось; Value == nil — явный сброс
type OptionalID struct {
	Set   bool
	Value *int64
}

// SelectionUpdate частичное обновление выбора пользователя
// Поля с nil-указателями не затрагиваются
type SelectionUpdate struct {
	VehicleTypeID  OptionalID
	PackageID      OptionalID
	AddOnIDs       *[]int64
	TimeSlotID     OptionalID
	DeliveryTypeID OptionalID
	Address        *string

	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	VehicleRegNumber *string
	Notes            *string
}

// Session сессия визарда бронирования
// Живет в памяти от старта визарда до успешного submit или истечения TTL.
// Session не потокобезопасна: синхронизацию обеспечивает хранилище сессий.
type Session struct {
	ID        string
	Step      Step
	Selection domain.Selection

	options optionsCache

	CreatedAt time.Time
	UpdatedAt time.Time
}

// optionsCache кэш опций шагов вместе с ключами зависимости, по которым они были получены
// Ответ, пришедший для устаревшего ключа, в кэш не попадает (см. Store*)
type optionsCache struct {
	vehicleTypes  []domain.VehicleType
	deliveryTypes []domain.DeliveryType

	packagesKey *int64 // vehicleTypeID, для которого получен список пакетов
	packages    []domain.Package

	addOnsKey *int64 // packageID, для которого получен список допов
	addOns    []domain.AddOn

	slotsDate string // дата, на которую запрошены слоты
	slots     []domain.TimeSlot
}

// NewSession создает новую сессию на первом шаге с пустым выбором
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Step:      FirstStep,
		Selection: domain.Selection{AddOnIDs: []int64{}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyUpdate применяет частичное обновление выбора с каскадным сбросом.
// Смена vehicleTypeId сбрасывает packageId и addOnIds, смена packageId
// сбрасывает addOnIds. Сравнение идет со СТАРЫМ значением: повторная
// установка того же id каскад не запускает.
func (s *Session) ApplyUpdate(update SelectionUpdate, now time.Time) {
	prev := s.Selection

	if update.VehicleTypeID.Set {
		s.Selection.VehicleTypeID = update.VehicleTypeID.Value
	}
	if update.PackageID.Set {
		s.Selection.PackageID = update.PackageID.Value
	}
	if update.AddOnIDs != nil {
		s.Selection.AddOnIDs = append([]int64{}, (*update.AddOnIDs)...)
	}
	if update.TimeSlotID.Set {
		s.Selection.TimeSlotID = update.TimeSlotID.Value
	}
	if update.DeliveryTypeID.Set {
		s.Selection.DeliveryTypeID = update.DeliveryTypeID.Value
	}
	if update.Address != nil {
		s.Selection.Address = *update.Address
	}

	s.applyContactUpdate(update)

	// Каскадный сброс зависимых выборов
	if update.VehicleTypeID.Set && !idsEqual(prev.VehicleTypeID, s.Selection.VehicleTypeID) {
		s.Selection.PackageID = nil
		s.Selection.AddOnIDs = []int64{}
	}
	if update.PackageID.Set && !idsEqual(prev.PackageID, s.Selection.PackageID) {
		s.Selection.AddOnIDs = []int64{}
	}

	s.UpdatedAt = now
}

func (s *Session) applyContactUpdate(update SelectionUpdate) {
	if update.FirstName != nil {
		s.Selection.Contact.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		s.Selection.Contact.LastName = *update.LastName
	}
	if update.Email != nil {
		s.Selection.Contact.Email = *update.Email
	}
	if update.Phone != nil {
		s.Selection.Contact.Phone = *update.Phone
	}
	if update.VehicleRegNumber != nil {
		s.Selection.Contact.VehicleRegNumber = *update.VehicleRegNumber
	}
	if update.Notes != nil {
		s.Selection.Contact.Notes = *update.Notes
	}
}

// Next продвигает сессию на следующий шаг, если гейт текущего шага открыт.
// Возвращает true, если переход состоялся. На последнем шаге — no-op.
func (s *Session) Next(now time.Time) bool {
	if s.Step >= LastStep {
		return false
	}
	if !CanAdvance(s.Step, &s.Selection, s.CurrentDeliveryTypes()) {
		return false
	}
	s.Step++
	s.UpdatedAt = now
	return true
}

// Back возвращает сессию на предыдущий шаг.
// Возвращает true, если пользователь вышел из визарда (Back на первом шаге).
func (s *Session) Back(now time.Time) (exited bool) {
	if s.Step <= FirstStep {
		return true
	}
	s.Step--
	s.UpdatedAt = now
	return false
}

// StoreVehicleTypes сохраняет список типов транспорта (ключа зависимости нет)
func (s *Session) StoreVehicleTypes(items []domain.VehicleType) {
	s.options.vehicleTypes = items
}

// StoreDeliveryTypes сохраняет список типов доставки (ключа зависимости нет)
func (s *Session) StoreDeliveryTypes(items []domain.DeliveryType) {
	s.options.deliveryTypes = items
}

// StorePackages сохраняет список пакетов, полученный для vehicleTypeID.
// Если к моменту прихода ответа выбран другой тип транспорта, ответ
// устарел и отбрасывается; возвращается false.
func (s *Session) StorePackages(vehicleTypeID int64, items []domain.Package) bool {
	if s.Selection.VehicleTypeID == nil || *s.Selection.VehicleTypeID != vehicleTypeID {
		return false
	}
	s.options.packagesKey = &vehicleTypeID
	s.options.packages = items
	return true
}

// StoreAddOns сохраняет список допов, полученный для packageID.
// Ответ для устаревшего ключа отбрасывается; возвращается false.
func (s *Session) StoreAddOns(packageID int64, items []domain.AddOn) bool {
	if s.Selection.PackageID == nil || *s.Selection.PackageID != packageID {
		return false
	}
	s.options.addOnsKey = &packageID
	s.options.addOns = items
	return true
}

// SetSlotsDate фиксирует дату, на которую пользователь просматривает слоты
func (s *Session) SetSlotsDate(date string) {
	s.options.slotsDate = date
}

// StoreTimeSlots сохраняет слоты, полученные для date.
// Ответ для даты, которую пользователь уже перелистнул, отбрасывается.
func (s *Session) StoreTimeSlots(date string, items []domain.TimeSlot) bool {
	if s.options.slotsDate != date {
		return false
	}
	s.options.slots = items
	return true
}

// CurrentVehicleTypes возвращает закэшированные типы транспорта
func (s *Session) CurrentVehicleTypes() []domain.VehicleType {
	return s.options.vehicleTypes
}

// CurrentDeliveryTypes возвращает закэшированные типы доставки
func (s *Session) CurrentDeliveryTypes() []domain.DeliveryType {
	return s.options.deliveryTypes
}

// CurrentPackages возвращает закэшированные пакеты, только если они были
// получены для текущего выбранного типа транспорта
func (s *Session) CurrentPackages() []domain.Package {
	if s.options.packagesKey == nil || s.Selection.VehicleTypeID == nil {
		return nil
	}
	if *s.options.packagesKey != *s.Selection.VehicleTypeID {
		return nil
	}
	return s.options.packages
}

// CurrentAddOns возвращает закэшированные допы, только если они были
// получены для текущего выбранного пакета
func (s *Session) CurrentAddOns() []domain.AddOn {
	if s.options.addOnsKey == nil || s.Selection.PackageID == nil {
		return nil
	}
	if *s.options.addOnsKey != *s.Selection.PackageID {
		return nil
	}
	return s.options.addOns
}

// CurrentTimeSlots возвращает закэшированные слоты на просматриваемую дату
func (s *Session) CurrentTimeSlots() []domain.TimeSlot {
	return s.options.slots
}

// Price возвращает актуальную раскладку цены по текущему выбору и каталогу
func (s *Session) Price() domain.PriceBreakdown {
	return ComputePrice(&s.Selection, ResolvedCatalog{
		VehicleTypes:  s.CurrentVehicleTypes(),
		Packages:      s.CurrentPackages(),
		AddOns:        s.CurrentAddOns(),
		DeliveryTypes: s.CurrentDeliveryTypes(),
	})
}

func idsEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
