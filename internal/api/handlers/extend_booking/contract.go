package extend_booking

import (
	"context"

	extendBooking "github.com/Lingges29/mypark/internal/usecase/extend_booking"
)

type ExtendBookingUseCase interface {
	Execute(ctx context.Context, req *extendBooking.Request) (*extendBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
