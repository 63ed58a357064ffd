package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/ptr"
)

func testCatalog() ResolvedCatalog {
	return ResolvedCatalog{
		VehicleTypes: []domain.VehicleType{
			{ID: 1, Name: "Седан", BasePrice: 40},
			{ID: 2, Name: "Внедорожник", BasePrice: 55},
		},
		Packages: []domain.Package{
			{ID: 10, Name: "Базовый", Price: 20},
			{ID: 11, Name: "Премиум", Price: 45},
		},
		AddOns: []domain.AddOn{
			{ID: 100, Name: "Воск", Price: 5},
			{ID: 101, Name: "Полировка", Price: 8},
		},
		DeliveryTypes: []domain.DeliveryType{
			{ID: 1, Name: "Самостоятельный приезд", Price: 0},
			{ID: 2, Name: "Забор автомобиля", Price: 10},
		},
	}
}

func TestComputePrice(t *testing.T) {
	t.Run("full selection sums all components", func(t *testing.T) {
		sel := &domain.Selection{
			VehicleTypeID:  ptr.Ptr(int64(1)),
			PackageID:      ptr.Ptr(int64(10)),
			AddOnIDs:       []int64{100, 101},
			DeliveryTypeID: ptr.Ptr(int64(2)),
		}

		breakdown := ComputePrice(sel, testCatalog())

		assert.Equal(t, 40.0, breakdown.BasePrice)
		assert.Equal(t, 20.0, breakdown.PackagePrice)
		assert.Equal(t, 13.0, breakdown.AddOnsTotal)
		assert.Equal(t, 10.0, breakdown.DeliveryPrice)
		assert.Equal(t, 83.0, breakdown.Total)
	})

	t.Run("empty selection is zero", func(t *testing.T) {
		breakdown := ComputePrice(&domain.Selection{}, testCatalog())
		assert.Equal(t, domain.PriceBreakdown{}, breakdown)
	})

	t.Run("unresolvable id contributes zero", func(t *testing.T) {
		sel := &domain.Selection{
			VehicleTypeID: ptr.Ptr(int64(999)),
			AddOnIDs:      []int64{100, 777},
		}

		breakdown := ComputePrice(sel, testCatalog())

		assert.Equal(t, 0.0, breakdown.BasePrice)
		assert.Equal(t, 5.0, breakdown.AddOnsTotal)
		assert.Equal(t, 5.0, breakdown.Total)
	})

	t.Run("empty catalog yields zero without error", func(t *testing.T) {
		sel := &domain.Selection{
			VehicleTypeID: ptr.Ptr(int64(1)),
			PackageID:     ptr.Ptr(int64(10)),
			AddOnIDs:      []int64{100},
		}

		breakdown := ComputePrice(sel, ResolvedCatalog{})
		assert.Equal(t, domain.PriceBreakdown{}, breakdown)
	})
}

func TestSessionPrice_UsesCurrentCaches(t *testing.T) {
	now := time.Now()
	s := newTestSession()
	catalog := testCatalog()

	s.ApplyUpdate(SelectionUpdate{VehicleTypeID: setID(1)}, now)
	s.StoreVehicleTypes(catalog.VehicleTypes)
	s.ApplyUpdate(SelectionUpdate{PackageID: setID(10)}, now)
	s.StorePackages(1, catalog.Packages)
	s.ApplyUpdate(SelectionUpdate{AddOnIDs: &[]int64{100}}, now)
	s.StoreAddOns(10, catalog.AddOns)
	s.ApplyUpdate(SelectionUpdate{DeliveryTypeID: setID(1)}, now)
	s.StoreDeliveryTypes(catalog.DeliveryTypes)

	breakdown := s.Price()
	assert.Equal(t, 65.0, breakdown.Total)

	// Смена пакета каскадно сбрасывает допы, кэш допов устаревает
	s.ApplyUpdate(SelectionUpdate{PackageID: setID(11)}, now)

	breakdown = s.Price()
	assert.Equal(t, 40.0, breakdown.BasePrice)
	assert.Equal(t, 45.0, breakdown.PackagePrice)
	assert.Equal(t, 0.0, breakdown.AddOnsTotal)
	assert.Equal(t, 85.0, breakdown.Total)
}
