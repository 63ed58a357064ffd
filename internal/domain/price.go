package domain

// PriceBreakdown is the running price of a wizard selection.
// It is derived on every read and never stored: each line reflects only
// entities resolvable in the currently fetched catalog, so a stale add-on id
// simply stops contributing instead of freezing an outdated price.
type PriceBreakdown struct {
	BasePrice     float64
	PackagePrice  float64
	AddOnsTotal   float64
	DeliveryPrice float64
	Total         float64
}
