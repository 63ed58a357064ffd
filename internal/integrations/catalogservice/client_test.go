package catalogservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, 5*time.Second, nil, noopLogger{})
	return client, server
}

func TestListVehicleTypes(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/vehicle-types", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Седан", "basePrice": 40, "isDeliverable": true, "displayOrder": 1, "isActive": true},
			{"id": 2, "name": "Внедорожник", "basePrice": 55, "isDeliverable": false, "displayOrder": 2, "isActive": true}
		]`))
	})
	defer server.Close()

	items, err := client.ListVehicleTypes(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Седан", items[0].Name)
	assert.Equal(t, 40.0, items[0].BasePrice)
	assert.True(t, items[0].IsDeliverable)
}

func TestListPackages(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehicle-types/1/packages", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 10, "name": "Базовый", "price": 20, "displayOrder": 1, "isActive": true}]`))
	})
	defer server.Close()

	items, err := client.ListPackages(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(10), items[0].ID)
	assert.Equal(t, 20.0, items[0].Price)
}

func TestListTimeSlots(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/time-slots", r.URL.Path)
		assert.Equal(t, "2026-03-15", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 500, "date": "2026-03-15", "startTime": "09:00", "endTime": "11:00", "status": "AVAILABLE"},
			{"id": 501, "date": "2026-03-15", "startTime": "11:00", "endTime": "13:00", "status": "BOOKED"}
		]`))
	})
	defer server.Close()

	items, err := client.ListTimeSlots(context.Background(), "2026-03-15")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "09:00", items[0].StartTime.String())
	assert.Equal(t, domain.SlotAvailable, items[0].Status)
	assert.Equal(t, domain.SlotBooked, items[1].Status)
}

func TestCreateBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/bookings", r.URL.Path)

			var req CreateBookingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(1), req.VehicleTypeID)
			assert.Equal(t, []int64{100}, req.AddOnIDs)
			assert.Nil(t, req.Address)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{
				"id": 7,
				"reference": "BK-2026-0007",
				"status": "PENDING",
				"vehicleType": {"id": 1, "name": "Седан", "basePrice": 40},
				"package": {"id": 10, "name": "Базовый", "price": 20},
				"addOns": [{"id": 100, "name": "Воск", "price": 5}],
				"timeSlot": {"id": 500, "date": "2026-03-15", "startTime": "09:00", "endTime": "11:00", "status": "BOOKED"},
				"deliveryType": {"id": 1, "name": "Самостоятельный приезд", "price": 0},
				"totalPrice": 65,
				"firstName": "Иван",
				"lastName": "Петров",
				"email": "ivan@example.com",
				"phoneNumber": "+79990001122",
				"vehicleRegistrationNumber": "А123БВ77",
				"createdAt": "2026-03-10T12:00:00Z",
				"updatedAt": "2026-03-10T12:00:00Z"
			}`))
		})
		defer server.Close()

		booking, err := client.CreateBooking(context.Background(), &CreateBookingRequest{
			VehicleTypeID:    1,
			PackageID:        10,
			AddOnIDs:         []int64{100},
			TimeSlotID:       500,
			DeliveryTypeID:   1,
			FirstName:        "Иван",
			LastName:         "Петров",
			Phone:            "+79990001122",
			Email:            "ivan@example.com",
			VehicleRegNumber: "А123БВ77",
		})

		require.NoError(t, err)
		assert.Equal(t, "BK-2026-0007", booking.Reference)
		assert.Equal(t, domain.StatusPending, booking.Status)
		assert.Equal(t, 65.0, booking.TotalPrice)
	})

	t.Run("slot conflict", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message": "Time slot is no longer available"}`))
		})
		defer server.Close()

		_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSlotConflict)
		assert.Contains(t, err.Error(), "Time slot is no longer available")
	})

	t.Run("validation rejected passes message through", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message": "email is invalid"}`))
		})
		defer server.Close()

		_, err := client.CreateBooking(context.Background(), &CreateBookingRequest{})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "email is invalid")
	})
}

func TestGetBookingByReference(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer server.Close()

		_, err := client.GetBookingByReference(context.Background(), "BK-MISSING")

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/bookings/BK-2026-0007", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})
		defer server.Close()

		err := client.CancelBooking(context.Background(), "BK-2026-0007")
		assert.NoError(t, err)
	})

	t.Run("cannot cancel completed booking", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message": "Booking is already completed"}`))
		})
		defer server.Close()

		err := client.CancelBooking(context.Background(), "BK-2026-0007")
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestListBookings(t *testing.T) {
	t.Run("forwards admin session cookie", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/admin/bookings", r.URL.Path)
			assert.Equal(t, "SESSION=abc123", r.Header.Get("Cookie"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		})
		defer server.Close()

		items, err := client.ListBookings(context.Background(), "SESSION=abc123")

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("unauthorized", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer server.Close()

		_, err := client.ListBookings(context.Background(), "SESSION=expired")

		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
