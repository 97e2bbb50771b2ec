package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/pkg/dbmetrics"
	"github.com/Lingges29/mypark/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"slot_id",
	"user_id",
	"vehicle_id",
	"start_time",
	"end_time",
	"amount",
	"receipt_ref",
	"created_at",
}

// Repository persists bookings. Rows are append-only: the only updates are
// the extension (end_time/amount grow) and the receipt attachment.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in the generated id and creation
// timestamp. If the context carries an active transaction the insert runs
// inside it; the conflict-checked create path relies on that.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_id",
			"user_id",
			"vehicle_id",
			"start_time",
			"end_time",
			"amount",
		).
		Values(
			b.SlotID,
			b.UserID,
			b.VehicleID,
			b.StartTime,
			b.EndTime,
			b.Amount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID fetches a booking by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// The extend path loads the booking inside a transaction before
	// rewriting it, so lock the row there
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// HasOverlapping reports whether any booking on the slot intersects the
// half-open interval [start, end). Touching boundaries do not count. When
// called inside a transaction the matching rows are locked FOR UPDATE so
// the subsequent insert cannot race a concurrent request.
func (r *Repository) HasOverlapping(ctx context.Context, slotID string, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		Where("NOT (end_time <= ? OR start_time >= ?)", start, end)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: HasOverlapping - rows error: %v", ErrScanRow, err)
	}

	return found, nil
}

// ListUpcomingForFloor returns every booking on the floor's slots that has
// not yet ended at the given instant. One query feeds the whole floor
// classification.
func (r *Repository) ListUpcomingForFloor(ctx context.Context, floor int, now time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	prefixed := make([]string, len(bookingColumns))
	for i, col := range bookingColumns {
		prefixed[i] = "b." + col
	}

	query, args, err := psqlbuilder.Select(prefixed...).
		From("bookings b").
		Join("parking_slots ps ON ps.slot_id = b.slot_id").
		Where(squirrel.Eq{"ps.floor": floor}).
		Where(squirrel.Gt{"b.end_time": now}).
		OrderBy("b.slot_id ASC, b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingForFloor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcomingForFloor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListActiveSlotIDs returns the ids of slots with a booking covering the
// given instant
func (r *Repository) ListActiveSlotIDs(ctx context.Context, now time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT slot_id").
		From("bookings").
		Where(squirrel.LtOrEq{"start_time": now}).
		Where(squirrel.Gt{"end_time": now}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: ListActiveSlotIDs - scan slot_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveSlotIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// ExtendEnd pushes the booking's end forward and adds the surcharge
func (r *Repository) ExtendEnd(ctx context.Context, id int64, newEnd time.Time, extraAmount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("end_time", newEnd).
		Set("amount", squirrel.Expr("amount + ?", extraAmount)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ExtendEnd - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ExtendEnd - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ExtendEnd - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// AttachReceipt stores the receipt artifact token on the booking
func (r *Repository) AttachReceipt(ctx context.Context, id int64, receiptRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("receipt_ref", receiptRef).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AttachReceipt - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AttachReceipt - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AttachReceipt - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListByUser returns the user's bookings, newest created first
func (r *Repository) ListByUser(ctx context.Context, userID int64, limit uint64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveForUser returns the user's booking covering the given instant
// with the soonest end, or ErrBookingNotFound
func (r *Repository) GetActiveForUser(ctx context.Context, userID int64, now time.Time) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.LtOrEq{"start_time": now}).
		Where(squirrel.Gt{"end_time": now}).
		OrderBy("end_time ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForUser - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveForUser - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var receiptRef sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.SlotID,
		&b.UserID,
		&b.VehicleID,
		&b.StartTime,
		&b.EndTime,
		&b.Amount,
		&receiptRef,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if receiptRef.Valid {
		b.ReceiptRef = &receiptRef.String
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
