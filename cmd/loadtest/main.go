// loadtest benchmarks the two reservation strategies side by side: it creates
// a fresh event per strategy over the API, fires the same concurrent workload
// at each, and prints the outcome tallies. With attempts > capacity the
// confirmed count must equal the capacity exactly, for both strategies.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ndmitrv/seatbooker/internal/loadgen"
)

func main() {
	var (
		baseURL     = flag.String("base-url", "http://localhost:8080", "API base URL")
		capacity    = flag.Int("capacity", 50, "capacity of the benchmark event")
		attempts    = flag.Int("attempts", 100, "booking attempts per strategy")
		concurrency = flag.Int("concurrency", 40, "concurrent workers")
	)
	flag.Parse()

	ctx := context.Background()
	client := &http.Client{Timeout: 30 * time.Second}

	userIDs, err := createUsers(ctx, client, *baseURL, *attempts)
	if err != nil {
		log.Fatalf("create users: %v", err)
	}

	for _, strategy := range []loadgen.Strategy{loadgen.StrategyLocked, loadgen.StrategyAtomic} {
		// каждой стратегии — своё свежее мероприятие
		eventID, err := createEvent(ctx, client, *baseURL, *capacity)
		if err != nil {
			log.Fatalf("create event: %v", err)
		}

		runner, err := loadgen.NewRunner(loadgen.Config{
			BaseURL:     *baseURL,
			EventID:     eventID,
			Strategy:    strategy,
			UserIDs:     userIDs,
			Attempts:    *attempts,
			Concurrency: *concurrency,
			Client:      client,
		})
		if err != nil {
			log.Fatalf("init runner: %v", err)
		}

		start := time.Now()
		tally := runner.Run(ctx)
		elapsed := time.Since(start)

		fmt.Printf("strategy=%s event=%s attempts=%d concurrency=%d elapsed=%s\n",
			strategy, eventID, *attempts, *concurrency, elapsed.Round(time.Millisecond))
		for _, outcome := range []loadgen.Outcome{
			loadgen.OutcomeConfirmed, loadgen.OutcomeConflict,
			loadgen.OutcomeNotFound, loadgen.OutcomeError,
		} {
			fmt.Printf("  %-10s %d\n", outcome, tally[outcome])
		}
	}
}

func createEvent(ctx context.Context, client *http.Client, baseURL string, capacity int) (string, error) {
	start := time.Now().Add(24 * time.Hour)
	payload := map[string]any{
		"title":       "Strategy comparison",
		"description": "loadtest event",
		"start_time":  start.Format(time.RFC3339),
		"end_time":    start.Add(2 * time.Hour).Format(time.RFC3339),
		"capacity":    capacity,
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := post(ctx, client, baseURL+"/api/events", payload, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

func createUsers(ctx context.Context, client *http.Client, baseURL string, n int) ([]string, error) {
	ids := make([]string, 0, n)
	suffix := time.Now().UnixNano()
	for i := 0; i < n; i++ {
		payload := map[string]any{
			"email": fmt.Sprintf("loadtest-%d-%d@example.com", suffix, i),
		}

		var resp struct {
			ID string `json:"id"`
		}
		if err := post(ctx, client, baseURL+"/api/users", payload, &resp); err != nil {
			return nil, err
		}
		ids = append(ids, resp.ID)
	}

	return ids, nil
}

func post(ctx context.Context, client *http.Client, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%s: unexpected status %d", url, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
