package get_step_options

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/wizard"
	"github.com/m04kA/SMC-DetailingService/pkg/ptr"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

type mockSessionAccessor struct {
	sessions map[string]*wizard.Session
}

func (m *mockSessionAccessor) Do(id string, fn func(session *wizard.Session) error) error {
	session, ok := m.sessions[id]
	if !ok {
		return errors.New("sessions: session not found")
	}
	return fn(session)
}

type mockCatalogClient struct {
	vehicleTypes  []domain.VehicleType
	packages      []domain.Package
	addOns        []domain.AddOn
	timeSlots     []domain.TimeSlot
	deliveryTypes []domain.DeliveryType
	err           error

	// выполняется во время "сетевого" запроса, до возврата ответа
	duringFetch func()
}

func (m *mockCatalogClient) fetch() {
	if m.duringFetch != nil {
		m.duringFetch()
	}
}

func (m *mockCatalogClient) ListVehicleTypes(context.Context) ([]domain.VehicleType, error) {
	m.fetch()
	return m.vehicleTypes, m.err
}

func (m *mockCatalogClient) ListPackages(_ context.Context, _ int64) ([]domain.Package, error) {
	m.fetch()
	return m.packages, m.err
}

func (m *mockCatalogClient) ListAddOns(_ context.Context, _ int64) ([]domain.AddOn, error) {
	m.fetch()
	return m.addOns, m.err
}

func (m *mockCatalogClient) ListTimeSlots(_ context.Context, _ string) ([]domain.TimeSlot, error) {
	m.fetch()
	return m.timeSlots, m.err
}

func (m *mockCatalogClient) ListDeliveryTypes(context.Context) ([]domain.DeliveryType, error) {
	m.fetch()
	return m.deliveryTypes, m.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func setup(catalog *mockCatalogClient) (*UseCase, *wizard.Session) {
	session := wizard.NewSession("sess-1", time.Now())
	sessions := &mockSessionAccessor{sessions: map[string]*wizard.Session{"sess-1": session}}
	return NewUseCase(sessions, catalog, noopLogger{}), session
}

func selectVehicleType(session *wizard.Session, id int64) {
	session.ApplyUpdate(wizard.SelectionUpdate{
		VehicleTypeID: wizard.OptionalID{Set: true, Value: ptr.Ptr(id)},
	}, time.Now())
}

func TestExecute_VehicleTypes(t *testing.T) {
	catalog := &mockCatalogClient{
		vehicleTypes: []domain.VehicleType{
			{ID: 1, Name: "Седан", BasePrice: 40, IsActive: true},
			{ID: 2, Name: "Снятый с продажи", BasePrice: 30, IsActive: false},
		},
	}
	uc, session := setup(catalog)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Step: wizard.StepVehicleType})

	require.NoError(t, err)
	require.Len(t, resp.VehicleTypes, 1)
	assert.Equal(t, int64(1), resp.VehicleTypes[0].ID)

	// Активные типы попали в кэш сессии
	require.Len(t, session.CurrentVehicleTypes(), 1)
}

func TestExecute_PackagesRequireVehicleType(t *testing.T) {
	uc, _ := setup(&mockCatalogClient{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Step: wizard.StepPackage})

	assert.ErrorIs(t, err, ErrDependencyNotSelected)
}

func TestExecute_Packages(t *testing.T) {
	catalog := &mockCatalogClient{
		packages: []domain.Package{
			{ID: 10, Name: "Базовый", Price: 20, IsActive: true},
			{ID: 11, Name: "Архивный", Price: 15, IsActive: false},
		},
	}
	uc, session := setup(catalog)
	selectVehicleType(session, 1)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Step: wizard.StepPackage})

	require.NoError(t, err)
	require.Len(t, resp.Packages, 1)
	assert.Equal(t, int64(10), resp.Packages[0].ID)
	require.Len(t, session.CurrentPackages(), 1)
}

func TestExecute_Packages_StaleResponseDiscarded(t *testing.T) {
	catalog := &mockCatalogClient{
		packages: []domain.Package{{ID: 10, Name: "Базовый", Price: 20, IsActive: true}},
	}
	uc, session := setup(catalog)
	selectVehicleType(session, 1)

	// Пока "шел" запрос, пользователь сменил тип транспорта
	catalog.duringFetch = func() { selectVehicleType(session, 2) }

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Step: wizard.StepPackage})

	require.NoError(t, err)
	assert.Empty(t, resp.Packages)
	assert.Nil(t, session.CurrentPackages())
}

func TestExecute_TimeSlots(t *testing.T) {
	start, _ := types.NewTimeStringFromString("09:00")
	end, _ := types.NewTimeStringFromString("11:00")

	catalog := &mockCatalogClient{
		timeSlots: []domain.TimeSlot{
			{ID: 500, Date: "2026-03-15", StartTime: start, EndTime: end, Status: domain.SlotAvailable},
			{ID: 501, Date: "2026-03-15", StartTime: start, EndTime: end, Status: domain.SlotBooked},
			{ID: 502, Date: "2026-03-15", StartTime: start, EndTime: end, Status: domain.SlotBlocked},
		},
	}
	uc, _ := setup(catalog)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		Step:      wizard.StepTimeSlot,
		Date:      "2026-03-15",
	})

	require.NoError(t, err)
	require.Len(t, resp.TimeSlots, 1)
	assert.Equal(t, int64(500), resp.TimeSlots[0].ID)
	assert.Equal(t, "09:00", resp.TimeSlots[0].StartTime)
}

func TestExecute_TimeSlots_DateValidation(t *testing.T) {
	uc, _ := setup(&mockCatalogClient{})

	t.Run("date required", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Step: wizard.StepTimeSlot})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("date format enforced", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			SessionID: "sess-1",
			Step:      wizard.StepTimeSlot,
			Date:      "15.03.2026",
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestExecute_TimeSlots_StaleDateDiscarded(t *testing.T) {
	start, _ := types.NewTimeStringFromString("09:00")
	end, _ := types.NewTimeStringFromString("11:00")

	catalog := &mockCatalogClient{
		timeSlots: []domain.TimeSlot{
			{ID: 500, Date: "2026-03-15", StartTime: start, EndTime: end, Status: domain.SlotAvailable},
		},
	}
	uc, session := setup(catalog)

	// Пока "шел" запрос, пользователь перелистнул дату
	catalog.duringFetch = func() { session.SetSlotsDate("2026-03-16") }

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "sess-1",
		Step:      wizard.StepTimeSlot,
		Date:      "2026-03-15",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.TimeSlots)
}

func TestExecute_DeliveryTypes(t *testing.T) {
	catalog := &mockCatalogClient{
		deliveryTypes: []domain.DeliveryType{
			{ID: 1, Name: "Самостоятельный приезд", Price: 0, IsActive: true},
			{ID: 2, Name: "Забор автомобиля", Price: 10, RequiresAddress: true, IsActive: true},
		},
	}
	uc, session := setup(catalog)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Step: wizard.StepDelivery})

	require.NoError(t, err)
	require.Len(t, resp.DeliveryTypes, 2)
	assert.True(t, resp.DeliveryTypes[1].RequiresAddress)
	require.Len(t, session.CurrentDeliveryTypes(), 2)
}

func TestExecute_ConfirmationStepHasNoOptions(t *testing.T) {
	uc, _ := setup(&mockCatalogClient{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Step: wizard.StepConfirmation})

	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	catalog := &mockCatalogClient{err: errors.New("catalogservice: connection refused")}
	uc, _ := setup(catalog)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1", Step: wizard.StepVehicleType})

	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestExecute_SessionNotFound(t *testing.T) {
	uc, _ := setup(&mockCatalogClient{vehicleTypes: []domain.VehicleType{}})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", Step: wizard.StepVehicleType})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
