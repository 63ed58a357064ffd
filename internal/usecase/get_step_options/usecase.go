package get_step_options

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// UseCase use case загрузки опций шага визарда.
//
// Опции зависимых шагов (пакеты, допы, слоты) загружаются по ключу
// зависимости, снятому с сессии в момент запроса. Пока шел запрос к
// CatalogService, пользователь мог изменить выбор — тогда ответ устарел
// и в кэш сессии не попадает (stale response discard), а пользователю
// возвращаются опции, актуальные для нового ключа.
type UseCase struct {
	sessions SessionAccessor
	catalog  CatalogServiceClient
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionAccessor, catalog CatalogServiceClient, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// Execute загружает опции запрошенного шага
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStepOptions: validation failed: %v", err)
		return nil, err
	}

	switch req.Step {
	case wizard.StepVehicleType:
		return uc.vehicleTypes(ctx, req)
	case wizard.StepPackage:
		return uc.packages(ctx, req)
	case wizard.StepAddOns:
		return uc.addOns(ctx, req)
	case wizard.StepTimeSlot:
		return uc.timeSlots(ctx, req)
	case wizard.StepDelivery:
		return uc.deliveryTypes(ctx, req)
	default:
		return nil, ErrInvalidStep
	}
}

func (uc *UseCase) vehicleTypes(ctx context.Context, req *Request) (*Response, error) {
	items, err := uc.catalog.ListVehicleTypes(ctx)
	if err != nil {
		uc.logger.Error("GetStepOptions: failed to fetch vehicle types: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	items = activeVehicleTypes(items)

	err = uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		session.StoreVehicleTypes(items)
		return nil
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	uc.logger.Info("GetStepOptions: session=%s loaded %d vehicle types", req.SessionID, len(items))
	return &Response{Step: req.Step, VehicleTypes: vehicleTypeOptions(items)}, nil
}

func (uc *UseCase) packages(ctx context.Context, req *Request) (*Response, error) {
	// 1. Снимаем ключ зависимости с сессии
	var vehicleTypeID int64
	err := uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		if session.Selection.VehicleTypeID == nil {
			return ErrDependencyNotSelected
		}
		vehicleTypeID = *session.Selection.VehicleTypeID
		return nil
	})
	if err != nil {
		return nil, uc.mapSessionErr(err)
	}

	// 2. Запрашиваем опции у CatalogService (вне блокировки сессии)
	items, err := uc.catalog.ListPackages(ctx, vehicleTypeID)
	if err != nil {
		uc.logger.Error("GetStepOptions: failed to fetch packages for vehicle_type=%d: %v", vehicleTypeID, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	items = activePackages(items)

	// 3. Кладем в кэш сессии; ответ для устаревшего ключа отбрасывается
	var current []domain.Package
	err = uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		if !session.StorePackages(vehicleTypeID, items) {
			uc.logger.Info("GetStepOptions: stale packages response discarded, session=%s key=%d",
				req.SessionID, vehicleTypeID)
		}
		current = session.CurrentPackages()
		return nil
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	uc.logger.Info("GetStepOptions: session=%s loaded %d packages for vehicle_type=%d",
		req.SessionID, len(current), vehicleTypeID)
	return &Response{Step: req.Step, Packages: packageOptions(current)}, nil
}

func (uc *UseCase) addOns(ctx context.Context, req *Request) (*Response, error) {
	var packageID int64
	err := uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		if session.Selection.PackageID == nil {
			return ErrDependencyNotSelected
		}
		packageID = *session.Selection.PackageID
		return nil
	})
	if err != nil {
		return nil, uc.mapSessionErr(err)
	}

	items, err := uc.catalog.ListAddOns(ctx, packageID)
	if err != nil {
		uc.logger.Error("GetStepOptions: failed to fetch add-ons for package=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	items = activeAddOns(items)

	var current []domain.AddOn
	err = uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		if !session.StoreAddOns(packageID, items) {
			uc.logger.Info("GetStepOptions: stale add-ons response discarded, session=%s key=%d",
				req.SessionID, packageID)
		}
		current = session.CurrentAddOns()
		return nil
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	uc.logger.Info("GetStepOptions: session=%s loaded %d add-ons for package=%d",
		req.SessionID, len(current), packageID)
	return &Response{Step: req.Step, AddOns: addOnOptions(current)}, nil
}

func (uc *UseCase) timeSlots(ctx context.Context, req *Request) (*Response, error) {
	// Дата — ключ зависимости шага слотов: фиксируем её на сессии до запроса,
	// чтобы ответ на перелистнутую дату был отброшен
	err := uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		session.SetSlotsDate(req.Date)
		return nil
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	items, err := uc.catalog.ListTimeSlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetStepOptions: failed to fetch time slots for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	items = availableSlots(items)

	var current []domain.TimeSlot
	err = uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		if !session.StoreTimeSlots(req.Date, items) {
			uc.logger.Info("GetStepOptions: stale time slots response discarded, session=%s date=%s",
				req.SessionID, req.Date)
		}
		current = session.CurrentTimeSlots()
		return nil
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	uc.logger.Info("GetStepOptions: session=%s loaded %d time slots for date=%s",
		req.SessionID, len(current), req.Date)
	return &Response{Step: req.Step, TimeSlots: timeSlotOptions(current)}, nil
}

func (uc *UseCase) deliveryTypes(ctx context.Context, req *Request) (*Response, error) {
	items, err := uc.catalog.ListDeliveryTypes(ctx)
	if err != nil {
		uc.logger.Error("GetStepOptions: failed to fetch delivery types: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	items = activeDeliveryTypes(items)

	err = uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		session.StoreDeliveryTypes(items)
		return nil
	})
	if err != nil {
		return nil, ErrSessionNotFound
	}

	uc.logger.Info("GetStepOptions: session=%s loaded %d delivery types", req.SessionID, len(items))
	return &Response{Step: req.Step, DeliveryTypes: deliveryTypeOptions(items)}, nil
}

func (uc *UseCase) mapSessionErr(err error) error {
	if err == ErrDependencyNotSelected {
		return ErrDependencyNotSelected
	}
	return ErrSessionNotFound
}
