package auditor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndmitrv/seatbooker/internal/auditor/mocks"
	"github.com/ndmitrv/seatbooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestAuditor_Tick_ReportsDrift(t *testing.T) {
	repo := mocks.NewMockInventoryAuditor(t)
	log := newTestLogger(t)

	a := New(repo, 50*time.Millisecond, log)

	drifts := []*domain.InventoryDrift{
		{EventID: "e1", Capacity: 100, SeatsRemaining: 60, ConfirmedSeats: 30},
	}
	repo.EXPECT().FindDrift(mock.Anything).Return(drifts, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(repo.Calls), 1)
}

func TestAuditor_Tick_HandlesError(t *testing.T) {
	repo := mocks.NewMockInventoryAuditor(t)
	log := newTestLogger(t)

	a := New(repo, 50*time.Millisecond, log)

	repo.EXPECT().FindDrift(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	assert.GreaterOrEqual(t, len(repo.Calls), 1)
}

func TestAuditor_StopsOnContextCancel(t *testing.T) {
	repo := mocks.NewMockInventoryAuditor(t)
	log := newTestLogger(t)

	a := New(repo, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		a.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("auditor did not stop on context cancel")
	}
}

func TestAuditor_MultipleTicks(t *testing.T) {
	repo := mocks.NewMockInventoryAuditor(t)
	log := newTestLogger(t)

	a := New(repo, 30*time.Millisecond, log)

	repo.EXPECT().FindDrift(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	a.Start(ctx)

	calls := len(repo.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
