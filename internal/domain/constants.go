package domain

// DateFormat layout for calendar dates exchanged with CatalogService
const DateFormat = "2006-01-02" // YYYY-MM-DD

// Input length limits enforced before submission
const (
	MaxAddressLength = 255
	MaxNotesLength   = 500
	MaxNameLength    = 100
)

// AllowedPageSizes размеры страниц, доступные в админских списках
// Значение вне этого набора заменяется на DefaultPageSize
var AllowedPageSizes = []int{10, 25, 50}

// DefaultPageSize размер страницы по умолчанию
const DefaultPageSize = 10
