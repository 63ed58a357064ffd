package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	catalogClient "github.com/m04kA/SMC-DetailingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-DetailingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями.
// Данные живут в CatalogService; сервис отвечает за маппинг ошибок
// и форму ответа для фронтенда.
type Service struct {
	catalog CatalogServiceClient
	logger  Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(catalog CatalogServiceClient, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// GetByReference получает бронирование по референс-коду
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	booking, err := s.catalog.GetBookingByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, catalogClient.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: upstream error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByReference: successfully fetched booking reference=%s status=%s", reference, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование по референс-коду.
// Отмена разрешена только в статусах PENDING и CONFIRMED — это правило
// принадлежит CatalogService, здесь лишь маппится его отказ.
func (s *Service) Cancel(ctx context.Context, reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking reference=%s", reference)

	if err := s.catalog.CancelBooking(ctx, reference); err != nil {
		switch {
		case errors.Is(err, catalogClient.ErrBookingNotFound):
			s.logger.Warn("Cancel: booking reference=%s not found", reference)
			return ErrBookingNotFound
		case errors.Is(err, catalogClient.ErrCannotCancel):
			s.logger.Warn("Cancel: booking reference=%s cannot be cancelled", reference)
			return ErrCannotCancel
		default:
			s.logger.Error("Cancel: upstream error for reference=%s: %v", reference, err)
			return fmt.Errorf("%w: Cancel - upstream error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking reference=%s", reference)
	return nil
}

// ListForAdmin получает все бронирования для админки.
// Сессионная cookie администратора прокидывается вышестоящему сервису.
func (s *Service) ListForAdmin(ctx context.Context, sessionCookie string) (*models.BookingListResponse, error) {
	s.logger.Info("ListForAdmin: fetching bookings")

	bookings, err := s.catalog.ListBookings(ctx, sessionCookie)
	if err != nil {
		if errors.Is(err, catalogClient.ErrUnauthorized) {
			s.logger.Warn("ListForAdmin: admin session rejected by upstream")
			return nil, ErrUnauthorized
		}
		s.logger.Error("ListForAdmin: upstream error: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - upstream error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForAdmin: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}
