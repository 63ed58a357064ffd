package wizard

import "github.com/m04kA/SMC-DetailingService/internal/domain"

// ResolvedCatalog сущности каталога, актуальные для текущего выбора.
// Списки могут быть nil, если соответствующие опции еще не загружены
// или были получены для устаревшего ключа зависимости.
type ResolvedCatalog struct {
	VehicleTypes  []domain.VehicleType
	Packages      []domain.Package
	AddOns        []domain.AddOn
	DeliveryTypes []domain.DeliveryType
}

// ComputePrice вычисляет раскладку цены по текущему выбору.
// Чистая функция: не ошибается и не кэширует. Невыбранная или
// неразрешимая в актуальном каталоге позиция дает вклад 0 —
// в частности, id допа, пропавшего из каталога после смены пакета,
// из выбора не удаляется, но из суммы исчезает.
func ComputePrice(sel *domain.Selection, catalog ResolvedCatalog) domain.PriceBreakdown {
	var breakdown domain.PriceBreakdown

	if sel.VehicleTypeID != nil {
		for _, vt := range catalog.VehicleTypes {
			if vt.ID == *sel.VehicleTypeID {
				breakdown.BasePrice = vt.BasePrice
				break
			}
		}
	}

	if sel.PackageID != nil {
		for _, pkg := range catalog.Packages {
			if pkg.ID == *sel.PackageID {
				breakdown.PackagePrice = pkg.Price
				break
			}
		}
	}

	for _, addOn := range catalog.AddOns {
		if sel.HasAddOn(addOn.ID) {
			breakdown.AddOnsTotal += addOn.Price
		}
	}

	if sel.DeliveryTypeID != nil {
		for _, dt := range catalog.DeliveryTypes {
			if dt.ID == *sel.DeliveryTypeID {
				breakdown.DeliveryPrice = dt.Price
				break
			}
		}
	}

	breakdown.Total = breakdown.BasePrice + breakdown.PackagePrice +
		breakdown.AddOnsTotal + breakdown.DeliveryPrice

	return breakdown
}
