package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// Request модель запроса на отправку бронирования
type Request struct {
	SessionID string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reference  string                // Референс-код для поиска и отмены
	Status     string                // Статус бронирования
	TotalPrice float64               // Итоговая цена, рассчитанная CatalogService
	Booking    *domain.Booking       // Полное бронирование, как его вернул CatalogService
	Price      domain.PriceBreakdown // Раскладка цены на момент отправки
	CreatedAt  time.Time
}
