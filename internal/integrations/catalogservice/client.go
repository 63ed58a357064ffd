package catalogservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/httpmetrics"
)

// Client клиент для работы с CatalogService — вышестоящим сервисом,
// владеющим каталогом, слотами и бронированиями
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService.
// collector может быть nil — тогда метрики исходящих запросов не собираются.
func NewClient(baseURL string, timeout time.Duration, collector httpmetrics.Collector, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: httpmetrics.WrapTransport(nil, collector),
		},
		log: log,
	}
}

// ListVehicleTypes получает список типов транспорта
func (c *Client) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	var items []VehicleType
	if err := c.getJSON(ctx, "ListVehicleTypes", "/vehicle-types", &items); err != nil {
		return nil, err
	}

	result := make([]domain.VehicleType, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// ListPackages получает список пакетов для типа транспорта
func (c *Client) ListPackages(ctx context.Context, vehicleTypeID int64) ([]domain.Package, error) {
	path := fmt.Sprintf("/vehicle-types/%d/packages", vehicleTypeID)

	var items []Package
	if err := c.getJSON(ctx, "ListPackages", path, &items); err != nil {
		return nil, err
	}

	result := make([]domain.Package, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// ListAddOns получает список дополнительных услуг для пакета
func (c *Client) ListAddOns(ctx context.Context, packageID int64) ([]domain.AddOn, error) {
	path := fmt.Sprintf("/packages/%d/add-ons", packageID)

	var items []AddOn
	if err := c.getJSON(ctx, "ListAddOns", path, &items); err != nil {
		return nil, err
	}

	result := make([]domain.AddOn, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// ListDeliveryTypes получает список типов доставки
func (c *Client) ListDeliveryTypes(ctx context.Context) ([]domain.DeliveryType, error) {
	var items []DeliveryType
	if err := c.getJSON(ctx, "ListDeliveryTypes", "/delivery-types", &items); err != nil {
		return nil, err
	}

	result := make([]domain.DeliveryType, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// ListTimeSlots получает список временных слотов на дату
func (c *Client) ListTimeSlots(ctx context.Context, date string) ([]domain.TimeSlot, error) {
	path := "/time-slots?date=" + url.QueryEscape(date)

	var items []TimeSlot
	if err := c.getJSON(ctx, "ListTimeSlots", path, &items); err != nil {
		return nil, err
	}

	result := make([]domain.TimeSlot, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// CreateBooking создает бронирование.
// 409 от сервиса означает, что слот уже занят; 400 — отклоненную валидацию,
// сообщение сервиса прокидывается вызывающему без изменений.
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*domain.Booking, error) {
	ctx = httpmetrics.WithOperation(ctx, "CreateBooking")

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		// Продолжаем обработку
	case http.StatusConflict:
		return nil, fmt.Errorf("%w: %s", ErrSlotConflict, readErrorMessage(resp.Body))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: %s", ErrValidation, readErrorMessage(resp.Body))
	default:
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain(), nil
}

// GetBookingByReference получает бронирование по референс-коду
func (c *Client) GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	ctx = httpmetrics.WithOperation(ctx, "GetBookingByReference")
	path := "/bookings/" + url.PathEscape(reference)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	default:
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	var booking Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return booking.ToDomain(), nil
}

// CancelBooking отменяет бронирование по референс-коду.
// Сервис разрешает отмену только в статусах PENDING и CONFIRMED.
func (c *Client) CancelBooking(ctx context.Context, reference string) error {
	ctx = httpmetrics.WithOperation(ctx, "CancelBooking")
	path := "/bookings/" + url.PathEscape(reference)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrBookingNotFound
	case http.StatusConflict, http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrCannotCancel, readErrorMessage(resp.Body))
	default:
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}
}

// ListBookings получает список бронирований для админки.
// Сессионная cookie администратора прокидывается вышестоящему сервису:
// аутентификацией владеет он, а не этот сервис.
func (c *Client) ListBookings(ctx context.Context, sessionCookie string) ([]*domain.Booking, error) {
	ctx = httpmetrics.WithOperation(ctx, "ListBookings")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/admin/bookings", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Cookie", sessionCookie)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	var items []Booking
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	result := make([]*domain.Booking, 0, len(items))
	for _, item := range items {
		result = append(result, item.ToDomain())
	}
	return result, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ
func (c *Client) getJSON(ctx context.Context, operation, path string, out interface{}) error {
	ctx = httpmetrics.WithOperation(ctx, operation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage извлекает сообщение об ошибке из тела ответа.
// Если тело не является ErrorResponse, возвращает его как есть.
func readErrorMessage(body io.Reader) string {
	payload, err := io.ReadAll(body)
	if err != nil || len(payload) == 0 {
		return "no details"
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(payload, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(payload)
}
