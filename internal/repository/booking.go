package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/07-Dili/Bike-RentalBooking-System/internal/domain"
)

// Postgres error codes we translate into domain errors.
const (
	pgFKViolation        = "23503"
	pgExclusionViolation = "23P01"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, bike_id, holder_id, from_at, to_at, total_cost, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.BikeID, b.HolderID, b.Window.From, b.Window.To,
		b.Cost, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			return domain.ErrBikeNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, bike_id, holder_id, from_at, to_at, total_cost, payment_ref, status, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.BikeID, &b.HolderID, &b.Window.From, &b.Window.To,
		&b.Cost, &b.PaymentRef, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

// HasPaidOverlap checks the window against paid bookings only. Two half-open
// windows [a,b) and [c,d) overlap iff a < d AND b > c; touching windows do
// not conflict.
func (r *BookingRepository) HasPaidOverlap(ctx context.Context, bikeID string, w domain.Window) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE bike_id = $1 AND status = $2
				  AND from_at < $4 AND to_at > $3
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bikeID, domain.BookingStatusPaid, w.From, w.To)
	if err != nil {
		return false, fmt.Errorf("overlap check: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan overlap check: %w", err)
	}

	return exists, nil
}

// ConfirmPaid is the commit point of the reservation engine: one conditional
// UPDATE both re-checks the overlap invariant and flips the booking to paid.
// The bookings_no_paid_overlap exclusion constraint backs the same invariant
// at the storage level, so concurrent confirms across process instances
// cannot both succeed.
func (r *BookingRepository) ConfirmPaid(ctx context.Context, id string, cost int64, paymentRef string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings b
			  SET status = $2, total_cost = $3, payment_ref = $4, updated_at = now()
			  WHERE b.id = $1
			    AND b.status = $5
			    AND NOT EXISTS (
			      SELECT 1 FROM bookings o
			      WHERE o.bike_id = b.bike_id
			        AND o.id <> b.id
			        AND o.status = $2
			        AND o.from_at < b.to_at
			        AND o.to_at > b.from_at
			    )`
	res, err := tx.ExecContext(
		ctx, query, id,
		domain.BookingStatusPaid, cost, paymentRef,
		domain.BookingStatusPending,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrSlotConflict
		}
		return fmt.Errorf("confirm booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// Diagnose: unknown booking, already terminal, or overlap lost.
		var status domain.BookingStatus
		var ref sql.NullString
		checkQuery := `SELECT status, payment_ref FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status, &ref); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		if status == domain.BookingStatusPaid {
			if ref.Valid && ref.String == paymentRef {
				// Another retry of the same payment already won; idempotent.
				return nil
			}
			return domain.ErrNotPending
		}
		if status == domain.BookingStatusPending {
			return domain.ErrSlotConflict
		}
		return domain.ErrNotPending
	}

	return tx.Commit()
}

func (r *BookingRepository) SetStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrSlotConflict
		}
		return fmt.Errorf("set status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) FailStale(ctx context.Context, olderThan time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND created_at + make_interval(secs => $3) < now()
			  RETURNING id, bike_id, holder_id, from_at, to_at, total_cost, payment_ref, status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusFailed, olderThan.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("fail stale: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListByHolder(ctx context.Context, holderID string) ([]*domain.Booking, error) {
	query := `SELECT id, bike_id, holder_id, from_at, to_at, total_cost, payment_ref, status, created_at, updated_at
			  FROM bookings
			  WHERE holder_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, holderID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by holder: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, bike_id, holder_id, from_at, to_at, total_cost, payment_ref, status, created_at, updated_at
			  FROM bookings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) PaidBikeIDs(ctx context.Context, w domain.Window) ([]string, error) {
	query := `SELECT DISTINCT bike_id FROM bookings
			  WHERE status = $1 AND from_at < $3 AND to_at > $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusPaid, w.From, w.To)
	if err != nil {
		return nil, fmt.Errorf("list booked bike ids: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan bike id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.BikeID, &b.HolderID, &b.Window.From, &b.Window.To,
			&b.Cost, &b.PaymentRef, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
