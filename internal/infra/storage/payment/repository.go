package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/pkg/dbmetrics"
	"github.com/Lingges29/mypark/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository records confirmed payments
type Repository struct {
	db DBExecutor
}

// NewRepository creates a payment repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create records a payment for a booking
func (r *Repository) Create(ctx context.Context, bookingID int64, paymentTime time.Time) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("booking_id", "payment_time").
		Values(bookingID, paymentTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	p := &domain.Payment{BookingID: bookingID, PaymentTime: paymentTime}
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// SumPaidAmount sums booking amounts that have at least one recorded
// payment
func (r *Repository) SumPaidAmount(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(b.amount), 0)").
		From("bookings b").
		Join("payments p ON p.booking_id = b.id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumPaidAmount - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("%w: SumPaidAmount - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}
