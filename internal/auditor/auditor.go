// Package auditor periodically checks the inventory invariant: for every
// event, seats_remaining must equal capacity minus the sum of confirmed
// booking seats. Drift means the reservation primitives were bypassed or a
// transaction committed partially; the auditor reports it, it does not repair.
package auditor

import (
	"context"
	"time"

	"github.com/ndmitrv/seatbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type inventoryAuditor interface {
	FindDrift(ctx context.Context) ([]*domain.InventoryDrift, error)
}

type Auditor struct {
	repo     inventoryAuditor
	interval time.Duration
	logger   logger.Logger
}

func New(
	repo inventoryAuditor,
	interval time.Duration,
	logger logger.Logger,
) *Auditor {
	return &Auditor{
		repo:     repo,
		interval: interval,
		logger:   logger,
	}
}

func (a *Auditor) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.Info("inventory auditor started",
		logger.String("interval", a.interval.String()),
	)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("inventory auditor stopped")
			return
		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

func (a *Auditor) tick(ctx context.Context) {
	drifts, err := a.repo.FindDrift(ctx)
	if err != nil {
		a.logger.Error("inventory audit failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, d := range drifts {
		a.logger.Error("inventory drift detected",
			logger.String("event_id", d.EventID),
			logger.Int("capacity", d.Capacity),
			logger.Int("seats_remaining", d.SeatsRemaining),
			logger.Int("confirmed_seats", d.ConfirmedSeats),
		)
	}
}
