package get_step_options

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("get_step_options: session not found")

	// ErrInvalidStep возвращается для шага без загружаемых опций
	ErrInvalidStep = errors.New("get_step_options: step has no options")

	// ErrDependencyNotSelected возвращается, когда не выбран родительский шаг
	// (например, запрошены пакеты до выбора типа транспорта)
	ErrDependencyNotSelected = errors.New("get_step_options: upstream selection is missing")

	// ErrInvalidDate возвращается при некорректной дате для шага слотов
	ErrInvalidDate = errors.New("get_step_options: invalid date")

	// ErrFetchFailed возвращается, когда не удалось получить опции из CatalogService.
	// Ошибка локальна для шага: выбор и предыдущие шаги не затрагиваются.
	ErrFetchFailed = errors.New("get_step_options: failed to fetch options")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_step_options: internal error")
)
