package get_floor_status

import (
	"context"

	getFloorStatus "github.com/Lingges29/mypark/internal/usecase/get_floor_status"
)

type GetFloorStatusUseCase interface {
	Execute(ctx context.Context, req *getFloorStatus.Request) (*getFloorStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
