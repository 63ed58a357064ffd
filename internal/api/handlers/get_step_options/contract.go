package get_step_options

import (
	"context"

	getStepOptions "github.com/m04kA/SMC-DetailingService/internal/usecase/get_step_options"
)

// GetStepOptionsUseCase интерфейс use case загрузки опций шага
type GetStepOptionsUseCase interface {
	Execute(ctx context.Context, req *getStepOptions.Request) (*getStepOptions.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
