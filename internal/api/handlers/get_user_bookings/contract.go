package get_user_bookings

import (
	"context"

	"github.com/Lingges29/mypark/internal/service/bookings/models"
)

type BookingService interface {
	GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
