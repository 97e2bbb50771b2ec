// Package analytics holds the read-only aggregate queries behind the admin
// dashboard. Nothing here mutates state.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/pkg/dbmetrics"
	"github.com/Lingges29/mypark/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// BucketCount is one row of a grouped count (day, month, hour or floor)
type BucketCount struct {
	Label string
	Count int
}

// Repository runs aggregate queries over bookings and slots
type Repository struct {
	db DBExecutor
}

// NewRepository creates an analytics repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountActiveBookings counts bookings covering the given instant
func (r *Repository) CountActiveBookings(ctx context.Context, now time.Time) (int, error) {
	return r.countWhere(ctx, "CountActiveBookings", squirrel.And{
		squirrel.LtOrEq{"start_time": now},
		squirrel.Gt{"end_time": now},
	})
}

// CountDistinctActiveSlots counts slots occupied at the given instant
func (r *Repository) CountDistinctActiveSlots(ctx context.Context, now time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(DISTINCT slot_id)").
		From("bookings").
		Where(squirrel.LtOrEq{"start_time": now}).
		Where(squirrel.Gt{"end_time": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountDistinctActiveSlots - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountDistinctActiveSlots - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountBookingsWithinNextHour counts bookings that occupy any part of the
// coming hour, feeding the occupancy prediction
func (r *Repository) CountBookingsWithinNextHour(ctx context.Context, now time.Time) (int, error) {
	return r.countWhere(ctx, "CountBookingsWithinNextHour", squirrel.And{
		squirrel.LtOrEq{"start_time": now.Add(time.Hour)},
		squirrel.Gt{"end_time": now},
	})
}

// CountPerDay groups bookings by creation day, oldest first
func (r *Repository) CountPerDay(ctx context.Context) ([]BucketCount, error) {
	return r.groupedCount(ctx, "CountPerDay", "to_char(created_at, 'YYYY-MM-DD')")
}

// CountPerMonth groups bookings by creation month, oldest first
func (r *Repository) CountPerMonth(ctx context.Context) ([]BucketCount, error) {
	return r.groupedCount(ctx, "CountPerMonth", "to_char(created_at, 'YYYY-MM')")
}

// CountPerStartHour groups bookings by the hour of day they start in
func (r *Repository) CountPerStartHour(ctx context.Context) ([]BucketCount, error) {
	return r.groupedCount(ctx, "CountPerStartHour", "to_char(start_time, 'HH24')")
}

// CountPerFloor groups bookings by the floor of their slot, busiest first
func (r *Repository) CountPerFloor(ctx context.Context) ([]BucketCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("ps.floor::text", "COUNT(*)").
		From("bookings b").
		Join("parking_slots ps ON ps.slot_id = b.slot_id").
		GroupBy("ps.floor").
		OrderBy("COUNT(*) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountPerFloor - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBuckets(ctx, executor, "CountPerFloor", query, args)
}

// ListLeastUsedSlots returns the slots with the fewest historical bookings
func (r *Repository) ListLeastUsedSlots(ctx context.Context, limit uint64) ([]*domain.SlotUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"ps.slot_id",
		"ps.floor",
		"COUNT(b.id) AS usage_count",
	).
		From("parking_slots ps").
		LeftJoin("bookings b ON b.slot_id = ps.slot_id").
		GroupBy("ps.slot_id", "ps.floor").
		OrderBy("usage_count ASC, ps.floor ASC, length(ps.slot_id) ASC, ps.slot_id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLeastUsedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLeastUsedSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	usage := make([]*domain.SlotUsage, 0)
	for rows.Next() {
		var u domain.SlotUsage
		if err := rows.Scan(&u.SlotID, &u.Floor, &u.Usage); err != nil {
			return nil, fmt.Errorf("%w: ListLeastUsedSlots - scan row: %v", ErrScanRow, err)
		}
		usage = append(usage, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLeastUsedSlots - rows error: %v", ErrScanRow, err)
	}

	return usage, nil
}

func (r *Repository) countWhere(ctx context.Context, method string, pred squirrel.Sqlizer) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(pred).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, method, err)
	}

	return count, nil
}

func (r *Repository) groupedCount(ctx context.Context, method, bucketExpr string) ([]BucketCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bucketExpr+" AS bucket", "COUNT(*)").
		From("bookings").
		GroupBy("bucket").
		OrderBy("bucket ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	return r.scanBuckets(ctx, executor, method, query, args)
}

func (r *Repository) scanBuckets(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) ([]BucketCount, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	buckets := make([]BucketCount, 0)
	for rows.Next() {
		var b BucketCount
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return buckets, nil
}
