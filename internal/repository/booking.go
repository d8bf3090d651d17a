package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/ndmitrv/seatbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
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

// Reserve books seats with the pessimistic strategy: the event row is locked
// for the whole transaction, so the capacity check and the decrement cannot
// interleave with another reservation or cancellation of the same event.
func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Лочим строку мероприятия до конца транзакции
	var seatsRemaining int
	lockQuery := `SELECT seats_remaining FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.EventID).Scan(&seatsRemaining); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event row: %w", err)
	}

	if seatsRemaining < b.Seats {
		return domain.ErrNotEnoughSeats
	}

	decQuery := `UPDATE events SET seats_remaining = seats_remaining - $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, decQuery, b.EventID, b.Seats); err != nil {
		return fmt.Errorf("decrement seats: %w", err)
	}

	if err = insertBooking(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit()
}

// ReserveAtomic books seats with a single conditional decrement. The statement
// touches the row only when seats_remaining >= seats, so no explicit lock is
// held across a check. Zero rows affected means either the event does not
// exist or capacity is exhausted; the statement result cannot distinguish the
// two and both surface as ErrNotEnoughSeats.
func (r *BookingRepository) ReserveAtomic(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	decQuery := `UPDATE events
				 SET seats_remaining = seats_remaining - $2, updated_at = now()
				 WHERE id = $1 AND seats_remaining >= $2`
	res, err := tx.ExecContext(ctx, decQuery, b.EventID, b.Seats)
	if err != nil {
		return fmt.Errorf("conditional decrement: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotEnoughSeats
	}

	if err = insertBooking(ctx, tx, b); err != nil {
		return err
	}

	return tx.Commit()
}

func insertBooking(ctx context.Context, tx *sql.Tx, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, event_id, user_id, seats, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.ExecContext(
		ctx, query, b.ID, b.EventID,
		b.UserID, b.Seats, b.Status, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

// Cancel flips a booking to canceled and restores its seats to the event.
// Re-cancelling an already canceled booking returns the booking unchanged.
// The booking row is locked first so a concurrent cancel of the same booking
// cannot restore the seats twice, then the event row is locked with the same
// discipline as Reserve.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b domain.Booking
	lockQuery := `SELECT id, event_id, user_id, seats, status, created_at
				  FROM bookings
				  WHERE id = $1
				  FOR UPDATE`
	err = tx.QueryRowContext(ctx, lockQuery, id).
		Scan(&b.ID, &b.EventID, &b.UserID, &b.Seats, &b.Status, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking row: %w", err)
	}

	if b.Status == domain.BookingStatusCanceled {
		return &b, tx.Commit()
	}

	// A confirmed booking whose event row is gone means the inventory is
	// already inconsistent; report it instead of dropping the increment.
	var eventID string
	eventLock := `SELECT id FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, eventLock, b.EventID).Scan(&eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event %s missing for confirmed booking %s: %w",
				b.EventID, b.ID, domain.ErrEventNotFound)
		}
		return nil, fmt.Errorf("lock event row: %w", err)
	}

	updQuery := `UPDATE bookings SET status = $2 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updQuery, b.ID, domain.BookingStatusCanceled); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	incQuery := `UPDATE events SET seats_remaining = seats_remaining + $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, incQuery, b.EventID, b.Seats); err != nil {
		return nil, fmt.Errorf("restore seats: %w", err)
	}

	b.Status = domain.BookingStatusCanceled
	return &b, tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, event_id, user_id, seats, status, created_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.ID, &b.EventID, &b.UserID, &b.Seats, &b.Status, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT id, event_id, user_id, seats, status, created_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.EventID, &b.UserID, &b.Seats, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT id, event_id, user_id, seats, status, created_at
			  FROM bookings
			  WHERE event_id = $1 AND status = $2
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.EventID, &b.UserID, &b.Seats, &b.Status, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking by event: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
