package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	catalogClient "github.com/m04kA/SMC-DetailingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
)

// UseCase use case отправки бронирования.
// Один вызов — один запрос к CatalogService, без автоматических повторов.
// При любой ошибке выбор в сессии остается нетронутым, чтобы повторная
// отправка пользователем была дешевой.
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

// Execute выполняет отправку бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s", req.SessionID)

	// 1. Убеждаемся, что каталог доставки загружен: без него гейт шага
	// доставки проверить нельзя
	if err := uc.ensureDeliveryCatalog(ctx, req.SessionID); err != nil {
		return nil, err
	}

	// 2. Под блокировкой сессии проверяем гейты всех шагов и снимаем
	// снимок выбора и цены. Выбор не мутируется.
	var (
		payload *catalogClient.CreateBookingRequest
		price   domain.PriceBreakdown
	)
	err := uc.sessions.Do(req.SessionID, func(session *wizard.Session) error {
		deliveryTypes := session.CurrentDeliveryTypes()
		for step := wizard.FirstStep; step <= wizard.LastStep; step++ {
			if !wizard.CanAdvance(step, &session.Selection, deliveryTypes) {
				uc.logger.Warn("SubmitBooking: gate closed for session=%s step=%s", req.SessionID, step)
				return fmt.Errorf("%w: step %s", ErrGatesNotSatisfied, step)
			}
		}

		payload = buildPayload(&session.Selection)
		price = session.Price()
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrGatesNotSatisfied) {
			return nil, err
		}
		return nil, ErrSessionNotFound
	}

	// 3. Единственная попытка создать бронирование
	booking, err := uc.catalog.CreateBooking(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, catalogClient.ErrSlotConflict):
			uc.logger.Warn("SubmitBooking: slot conflict for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, catalogClient.ErrValidation):
			uc.logger.Warn("SubmitBooking: validation rejected for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrValidationRejected, err)
		default:
			uc.logger.Error("SubmitBooking: failed to create booking for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	// 4. Успех — сессия завершена, терминальное состояние визарда
	uc.sessions.Finish(req.SessionID)

	uc.logger.Info("SubmitBooking: booking created reference=%s total=%.2f for session=%s",
		booking.Reference, booking.TotalPrice, req.SessionID)

	return &Response{
		Reference:  booking.Reference,
		Status:     string(booking.Status),
		TotalPrice: booking.TotalPrice,
		Booking:    booking,
		Price:      price,
		CreatedAt:  booking.CreatedAt,
	}, nil
}

// ensureDeliveryCatalog подгружает типы доставки в кэш сессии, если их там нет
func (uc *UseCase) ensureDeliveryCatalog(ctx context.Context, sessionID string) error {
	var loaded bool
	err := uc.sessions.Do(sessionID, func(session *wizard.Session) error {
		loaded = len(session.CurrentDeliveryTypes()) > 0
		return nil
	})
	if err != nil {
		return ErrSessionNotFound
	}
	if loaded {
		return nil
	}

	items, err := uc.catalog.ListDeliveryTypes(ctx)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to fetch delivery types: %v", err)
		return fmt.Errorf("%w: failed to fetch delivery types: %v", ErrInternal, err)
	}

	err = uc.sessions.Do(sessionID, func(session *wizard.Session) error {
		session.StoreDeliveryTypes(items)
		return nil
	})
	if err != nil {
		return ErrSessionNotFound
	}
	return nil
}

// buildPayload собирает тело запроса к CatalogService из выбора.
// Пустые необязательные поля маппятся в отсутствующие (nil), а не в пустые
// строки. Выбранные id допов передаются как есть: валидация применимости
// принадлежит CatalogService.
func buildPayload(sel *domain.Selection) *catalogClient.CreateBookingRequest {
	payload := &catalogClient.CreateBookingRequest{
		VehicleTypeID:    *sel.VehicleTypeID,
		PackageID:        *sel.PackageID,
		AddOnIDs:         append([]int64{}, sel.AddOnIDs...),
		TimeSlotID:       *sel.TimeSlotID,
		DeliveryTypeID:   *sel.DeliveryTypeID,
		FirstName:        strings.TrimSpace(sel.Contact.FirstName),
		LastName:         strings.TrimSpace(sel.Contact.LastName),
		Phone:            strings.TrimSpace(sel.Contact.Phone),
		Email:            strings.TrimSpace(sel.Contact.Email),
		VehicleRegNumber: strings.TrimSpace(sel.Contact.VehicleRegNumber),
	}

	if address := strings.TrimSpace(sel.Address); address != "" {
		payload.Address = &address
	}
	if notes := strings.TrimSpace(sel.Contact.Notes); notes != "" {
		payload.Notes = &notes
	}

	return payload
}
