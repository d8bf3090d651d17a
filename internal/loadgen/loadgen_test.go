package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndmitrv/seatbooker/internal/domain"
	"github.com/ndmitrv/seatbooker/internal/handler"
	"github.com/ndmitrv/seatbooker/internal/router"
	"github.com/ndmitrv/seatbooker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

// memStore is a mutex-guarded in-memory substitute for the Postgres
// repositories. It reproduces their reservation semantics exactly, so the
// full service/handler stack can be exercised under real concurrency
// without a database.
type memStore struct {
	mu       sync.Mutex
	events   map[string]*domain.Event
	bookings map[string]*domain.Booking
	users    map[string]*domain.User
}

func newMemStore() *memStore {
	return &memStore{
		events:   make(map[string]*domain.Event),
		bookings: make(map[string]*domain.Booking),
		users:    make(map[string]*domain.User),
	}
}

// --- ports.BookingRepo ---

func (s *memStore) Reserve(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[b.EventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if event.SeatsRemaining < b.Seats {
		return domain.ErrNotEnoughSeats
	}

	event.SeatsRemaining -= b.Seats
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (s *memStore) ReserveAtomic(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// the conditional decrement folds a missing event and an exhausted
	// counter into the same zero-rows result
	event, ok := s.events[b.EventID]
	if !ok || event.SeatsRemaining < b.Seats {
		return domain.ErrNotEnoughSeats
	}

	event.SeatsRemaining -= b.Seats
	cp := *b
	s.bookings[b.ID] = &cp
	return nil
}

func (s *memStore) Cancel(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if booking.Status == domain.BookingStatusCanceled {
		cp := *booking
		return &cp, nil
	}

	event, ok := s.events[booking.EventID]
	if !ok {
		return nil, fmt.Errorf("event %s missing for confirmed booking %s: %w", booking.EventID, id, domain.ErrEventNotFound)
	}

	booking.Status = domain.BookingStatusCanceled
	event.SeatsRemaining += booking.Seats

	cp := *booking
	return &cp, nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *booking
	return &cp, nil
}

func (s *memStore) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memStore) ListByEvent(_ context.Context, eventID string) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.EventID == eventID && b.Status == domain.BookingStatusConfirmed {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- eventStore implements ports.EventRepo over the same data ---

type eventStore struct{ *memStore }

func (s eventStore) Create(_ context.Context, e *domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *e
	s.events[e.ID] = &cp
	return nil
}

func (s eventStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *event
	return &cp, nil
}

func (s eventStore) List(_ context.Context, page, size int) ([]*domain.Event, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Event
	for _, e := range s.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (s eventStore) Update(_ context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if upd.Title != nil {
		event.Title = *upd.Title
	}
	if upd.Capacity != nil {
		event.SeatsRemaining = domain.AdjustSeats(event.Capacity, *upd.Capacity, event.SeatsRemaining)
		event.Capacity = *upd.Capacity
	}
	cp := *event
	return &cp, nil
}

func (s eventStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

// --- userStore implements ports.UserRepo over the same data ---

type userStore struct{ *memStore }

func (s userStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s userStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (s userStore) List(_ context.Context) ([]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.User
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyBookingConfirmed(context.Context, *domain.User, *domain.Event, *domain.Booking) {
}
func (noopNotifier) NotifyBookingCanceled(context.Context, *domain.User, *domain.Event, *domain.Booking) {
}

type noopPublisher struct{}

func (noopPublisher) PublishBookingConfirmed(context.Context, *domain.Booking) error { return nil }
func (noopPublisher) PublishBookingCanceled(context.Context, *domain.Booking) error  { return nil }

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// startServer wires the real services, handler and router over the in-memory
// store and exposes them on an httptest server.
func startServer(t *testing.T) (*memStore, *httptest.Server) {
	t.Helper()

	store := newMemStore()
	log := newTestLogger(t)

	bookingSvc := service.NewBookingService(store, eventStore{store}, userStore{store}, noopNotifier{}, noopPublisher{}, log)
	eventSvc := service.NewEventService(eventStore{store}, store)
	userSvc := service.NewUserService(userStore{store})

	h := handler.NewHandler(eventSvc, bookingSvc, userSvc)
	srv := httptest.NewServer(router.InitRouter("test", h))
	t.Cleanup(srv.Close)

	return store, srv
}

func seedEvent(t *testing.T, store *memStore, capacity int) string {
	t.Helper()

	id := uuid.New().String()
	now := time.Now().UTC()
	store.events[id] = &domain.Event{
		ID:             id,
		Title:          "Load test event",
		StartTime:      now.Add(24 * time.Hour),
		EndTime:        now.Add(26 * time.Hour),
		Capacity:       capacity,
		SeatsRemaining: capacity,
		CreatedAt:      now,
	}
	return id
}

func seedUsers(t *testing.T, store *memStore, n int) []string {
	t.Helper()

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.New().String()
		store.users[id] = &domain.User{
			ID:        id,
			Email:     fmt.Sprintf("user%d@example.com", i),
			CreatedAt: time.Now().UTC(),
		}
		ids = append(ids, id)
	}
	return ids
}

func book(t *testing.T, srv *httptest.Server, strategy Strategy, eventID, userID string) int {
	t.Helper()

	body, _ := json.Marshal(map[string]any{"user_id": userID, "seats": 1})
	resp, err := http.Post(srv.URL+strategy.Endpoint(eventID), "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode
}

func confirmedSeats(store *memStore, eventID string) int {
	store.mu.Lock()
	defer store.mu.Unlock()

	total := 0
	for _, b := range store.bookings {
		if b.EventID == eventID && b.Status == domain.BookingStatusConfirmed {
			total += b.Seats
		}
	}
	return total
}

func TestRunner_NoOverbooking(t *testing.T) {
	const (
		capacity    = 50
		attempts    = 100
		concurrency = 40
	)

	for _, strategy := range []Strategy{StrategyLocked, StrategyAtomic} {
		t.Run(string(strategy), func(t *testing.T) {
			store, srv := startServer(t)
			eventID := seedEvent(t, store, capacity)
			userIDs := seedUsers(t, store, 10)

			runner, err := NewRunner(Config{
				BaseURL:     srv.URL,
				EventID:     eventID,
				Strategy:    strategy,
				UserIDs:     userIDs,
				Attempts:    attempts,
				Concurrency: concurrency,
			})
			require.NoError(t, err)

			tally := runner.Run(context.Background())

			assert.Equal(t, capacity, tally[OutcomeConfirmed])
			assert.Equal(t, attempts-capacity, tally[OutcomeConflict])
			assert.Zero(t, tally[OutcomeError])
			assert.Zero(t, tally[OutcomeNotFound])

			store.mu.Lock()
			remaining := store.events[eventID].SeatsRemaining
			store.mu.Unlock()
			assert.Zero(t, remaining)
			assert.Equal(t, capacity, confirmedSeats(store, eventID))
		})
	}
}

func TestRunner_SequentialCapacityFive(t *testing.T) {
	for _, strategy := range []Strategy{StrategyLocked, StrategyAtomic} {
		t.Run(string(strategy), func(t *testing.T) {
			store, srv := startServer(t)
			eventID := seedEvent(t, store, 5)
			userIDs := seedUsers(t, store, 6)

			// первые пять занимают все места
			for i := 0; i < 5; i++ {
				code := book(t, srv, strategy, eventID, userIDs[i])
				assert.Equal(t, http.StatusCreated, code, "booking %d", i+1)
			}

			code := book(t, srv, strategy, eventID, userIDs[5])
			assert.Equal(t, http.StatusConflict, code, "sixth booking must be rejected")

			store.mu.Lock()
			remaining := store.events[eventID].SeatsRemaining
			store.mu.Unlock()
			assert.Zero(t, remaining)
		})
	}
}

func TestRunner_MissingEvent(t *testing.T) {
	store, srv := startServer(t)
	userIDs := seedUsers(t, store, 1)

	runner, err := NewRunner(Config{
		BaseURL:     srv.URL,
		EventID:     uuid.New().String(),
		Strategy:    StrategyLocked,
		UserIDs:     userIDs,
		Attempts:    3,
		Concurrency: 2,
	})
	require.NoError(t, err)

	tally := runner.Run(context.Background())

	assert.Equal(t, 3, tally[OutcomeNotFound])
}

func TestCancel_RestoresSeats(t *testing.T) {
	store, srv := startServer(t)
	eventID := seedEvent(t, store, 1)
	userIDs := seedUsers(t, store, 2)

	code := book(t, srv, StrategyLocked, eventID, userIDs[0])
	require.Equal(t, http.StatusCreated, code)

	// event is sold out
	code = book(t, srv, StrategyLocked, eventID, userIDs[1])
	require.Equal(t, http.StatusConflict, code)

	var bookingID string
	store.mu.Lock()
	for id := range store.bookings {
		bookingID = id
	}
	store.mu.Unlock()
	require.NotEmpty(t, bookingID)

	resp, err := http.Post(srv.URL+"/api/bookings/"+bookingID+"/cancel", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	store.mu.Lock()
	remaining := store.events[eventID].SeatsRemaining
	store.mu.Unlock()
	assert.Equal(t, 1, remaining)

	// the freed seat can be taken again
	code = book(t, srv, StrategyAtomic, eventID, userIDs[1])
	assert.Equal(t, http.StatusCreated, code)
}

func TestCancel_Idempotent(t *testing.T) {
	store, srv := startServer(t)
	eventID := seedEvent(t, store, 2)
	userIDs := seedUsers(t, store, 1)

	code := book(t, srv, StrategyLocked, eventID, userIDs[0])
	require.Equal(t, http.StatusCreated, code)

	var bookingID string
	store.mu.Lock()
	for id := range store.bookings {
		bookingID = id
	}
	store.mu.Unlock()

	for i := 0; i < 2; i++ {
		resp, err := http.Post(srv.URL+"/api/bookings/"+bookingID+"/cancel", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// второй cancel не возвращает место дважды
	store.mu.Lock()
	remaining := store.events[eventID].SeatsRemaining
	store.mu.Unlock()
	assert.Equal(t, 2, remaining)
}

func TestNewRunner_Validation(t *testing.T) {
	base := Config{
		BaseURL:     "http://localhost",
		EventID:     uuid.New().String(),
		Strategy:    StrategyLocked,
		UserIDs:     []string{uuid.New().String()},
		Attempts:    1,
		Concurrency: 1,
	}

	t.Run("ok", func(t *testing.T) {
		_, err := NewRunner(base)
		assert.NoError(t, err)
	})

	t.Run("no attempts", func(t *testing.T) {
		cfg := base
		cfg.Attempts = 0
		_, err := NewRunner(cfg)
		assert.Error(t, err)
	})

	t.Run("no concurrency", func(t *testing.T) {
		cfg := base
		cfg.Concurrency = 0
		_, err := NewRunner(cfg)
		assert.Error(t, err)
	})

	t.Run("no users", func(t *testing.T) {
		cfg := base
		cfg.UserIDs = nil
		_, err := NewRunner(cfg)
		assert.Error(t, err)
	})
}

func TestStrategy_Endpoint(t *testing.T) {
	assert.Equal(t, "/api/events/e1/book", StrategyLocked.Endpoint("e1"))
	assert.Equal(t, "/api/events/e1/book_atomic", StrategyAtomic.Endpoint("e1"))
}
