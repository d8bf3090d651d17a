package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ndmitrv/seatbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, start_time, end_time, capacity, seats_remaining, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.StartTime, e.EndTime,
		e.Capacity, e.SeatsRemaining, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, start_time, end_time, capacity, seats_remaining, created_at, updated_at
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
		&e.Capacity, &e.SeatsRemaining, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context, page, size int) ([]*domain.Event, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM events`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan event count: %w", err)
	}

	query := `SELECT id, title, description, start_time, end_time, capacity, seats_remaining, created_at, updated_at
			  FROM events
			  ORDER BY start_time DESC
			  LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
			&e.Capacity, &e.SeatsRemaining, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, total, rows.Err()
}

// Update applies a partial update. A capacity change shifts seats_remaining by
// the capacity delta (clamped at zero); the event row is locked for the
// transaction so concurrent reservations cannot read the counter mid-resize.
func (r *EventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var e domain.Event
	lockQuery := `SELECT id, title, description, start_time, end_time, capacity, seats_remaining, created_at, updated_at
				  FROM events
				  WHERE id = $1
				  FOR UPDATE`
	err = tx.QueryRowContext(ctx, lockQuery, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime,
		&e.Capacity, &e.SeatsRemaining, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event row: %w", err)
	}

	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.StartTime != nil {
		e.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		e.EndTime = *upd.EndTime
	}
	if upd.Capacity != nil {
		e.SeatsRemaining = domain.AdjustSeats(e.Capacity, *upd.Capacity, e.SeatsRemaining)
		e.Capacity = *upd.Capacity
	}
	e.UpdatedAt = time.Now().UTC()

	query := `UPDATE events
			  SET title = $2, description = $3, start_time = $4, end_time = $5,
				  capacity = $6, seats_remaining = $7, updated_at = $8
			  WHERE id = $1`
	_, err = tx.ExecContext(
		ctx, query, e.ID, e.Title, e.Description, e.StartTime, e.EndTime,
		e.Capacity, e.SeatsRemaining, e.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return &e, tx.Commit()
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// FindDrift returns every event where seats_remaining no longer equals
// capacity minus the sum of confirmed booking seats.
func (r *EventRepository) FindDrift(ctx context.Context) ([]*domain.InventoryDrift, error) {
	query := `SELECT e.id, e.capacity, e.seats_remaining,
					 COALESCE(SUM(b.seats) FILTER (WHERE b.status = $1), 0) AS confirmed_seats
			  FROM events e
			  LEFT JOIN bookings b ON b.event_id = e.id
			  GROUP BY e.id
			  HAVING e.seats_remaining <> e.capacity - COALESCE(SUM(b.seats) FILTER (WHERE b.status = $1), 0)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("find drift: %w", err)
	}
	defer rows.Close()

	var res []*domain.InventoryDrift
	for rows.Next() {
		var d domain.InventoryDrift
		if err = rows.Scan(&d.EventID, &d.Capacity, &d.SeatsRemaining, &d.ConfirmedSeats); err != nil {
			return nil, fmt.Errorf("scan drift: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}
