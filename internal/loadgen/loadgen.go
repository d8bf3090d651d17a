// Package loadgen drives concurrent booking attempts against a running
// instance and tallies the outcomes. It doubles as the correctness oracle for
// the reservation strategies: with capacity C and N > C single-seat attempts,
// a correct inventory yields exactly C confirmed and N-C conflict outcomes.
package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

type Strategy string

const (
	StrategyLocked Strategy = "locked"
	StrategyAtomic Strategy = "atomic"
)

// Endpoint returns the reservation path for the strategy.
func (s Strategy) Endpoint(eventID string) string {
	if s == StrategyAtomic {
		return "/api/events/" + eventID + "/book_atomic"
	}
	return "/api/events/" + eventID + "/book"
}

type Outcome string

const (
	OutcomeConfirmed Outcome = "confirmed"
	OutcomeConflict  Outcome = "conflict"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeError     Outcome = "error"
)

// Tally counts attempt outcomes per category.
type Tally map[Outcome]int

type Config struct {
	BaseURL  string
	EventID  string
	Strategy Strategy
	// UserIDs supplies the distinct identities; attempt i books as
	// UserIDs[i % len(UserIDs)].
	UserIDs     []string
	Attempts    int
	Concurrency int
	Client      *http.Client
}

type Runner struct {
	cfg Config
}

func NewRunner(cfg Config) (*Runner, error) {
	if cfg.Attempts < 1 {
		return nil, fmt.Errorf("attempts must be at least 1")
	}
	if cfg.Concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1")
	}
	if len(cfg.UserIDs) == 0 {
		return nil, fmt.Errorf("at least one user id is required")
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}

	return &Runner{cfg: cfg}, nil
}

// Run dispatches the attempts across a bounded pool of workers and blocks
// until every attempt has reported. Attempts are independent: one failing
// never cancels the others.
func (r *Runner) Run(ctx context.Context) Tally {
	jobs := make(chan int)
	results := make(chan Outcome)

	var wg sync.WaitGroup
	for w := 0; w < r.cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results <- r.attempt(ctx, r.cfg.UserIDs[i%len(r.cfg.UserIDs)])
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := 0; i < r.cfg.Attempts; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	tally := make(Tally)
	for outcome := range results {
		tally[outcome]++
	}

	return tally
}

func (r *Runner) attempt(ctx context.Context, userID string) Outcome {
	body, err := json.Marshal(map[string]any{
		"user_id": userID,
		"seats":   1,
	})
	if err != nil {
		return OutcomeError
	}

	url := r.cfg.BaseURL + r.cfg.Strategy.Endpoint(r.cfg.EventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return OutcomeError
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.cfg.Client.Do(req)
	if err != nil {
		return OutcomeError
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return OutcomeConfirmed
	case http.StatusConflict:
		return OutcomeConflict
	case http.StatusNotFound:
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
