package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Lingges29/mypark/internal/domain"
	"github.com/Lingges29/mypark/pkg/dbmetrics"
	"github.com/Lingges29/mypark/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository is the read-only registry of parking slots
type Repository struct {
	db DBExecutor
}

// NewRepository creates a slot repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID returns a single slot
func (r *Repository) GetByID(ctx context.Context, slotID string) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_id", "floor").
		From("parking_slots").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Floor)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListByFloor returns every slot on the given floor, id ascending by
// numeric suffix
func (r *Repository) ListByFloor(ctx context.Context, floor int) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slot_id", "floor").
		From("parking_slots").
		Where(squirrel.Eq{"floor": floor}).
		OrderBy("length(slot_id) ASC, slot_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFloor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFloor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.Floor); err != nil {
			return nil, fmt.Errorf("%w: ListByFloor - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByFloor - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Count returns the total number of slots in the grid
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("parking_slots").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListUsage returns every slot with its total historical booking count
func (r *Repository) ListUsage(ctx context.Context) ([]*domain.SlotUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"ps.slot_id",
		"ps.floor",
		"COUNT(b.id) AS usage_count",
	).
		From("parking_slots ps").
		LeftJoin("bookings b ON b.slot_id = ps.slot_id").
		GroupBy("ps.slot_id", "ps.floor").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUsage - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUsage - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	usage := make([]*domain.SlotUsage, 0)
	for rows.Next() {
		var u domain.SlotUsage
		if err := rows.Scan(&u.SlotID, &u.Floor, &u.Usage); err != nil {
			return nil, fmt.Errorf("%w: ListUsage - scan row: %v", ErrScanRow, err)
		}
		usage = append(usage, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUsage - rows error: %v", ErrScanRow, err)
	}

	return usage, nil
}
