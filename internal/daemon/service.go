// Package daemon provides the long-running background ledger worker: it
// renews elapsed recurring budgets, materializes due scheduled
// transactions, and serves budget alerts over a local HTTP API.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"fburn/internal/budget"
	"fburn/internal/forecast"
	"fburn/internal/model"
	"fburn/internal/period"
	"fburn/internal/schedule"
	"fburn/internal/store"
)

// catchUpDays is how far back a poll looks for scheduled occurrences that
// fell due while the daemon was not running.
const catchUpDays = 7

// Config controls the daemon runtime behavior.
type Config struct {
	DBPath          string
	Interval        time.Duration
	Addr            string
	EventsBuffer    int
	BurnHorizonDays int
}

// Snapshot is a compact ledger state for status/event payloads.
type Snapshot struct {
	At                 time.Time `json:"at"`
	Today              string    `json:"today"`
	Transactions       int       `json:"transactions"`
	ActiveBudgets      int       `json:"active_budgets"`
	SafeToSpend        float64   `json:"safe_to_spend"`
	UpcomingBillsTotal float64   `json:"upcoming_bills_total"`
	BudgetReserves     float64   `json:"budget_reserves"`
	Alerts             int       `json:"alerts"`
}

// Event is emitted when the poll loop changes or observes something.
type Event struct {
	ID         int64                   `json:"id"`
	Type       string                  `json:"type"` // renewal, occurrence, budget_alert, snapshot
	Timestamp  time.Time               `json:"timestamp"`
	BudgetID   string                  `json:"budget_id,omitempty"`
	CategoryID string                  `json:"category_id,omitempty"`
	Detail     string                  `json:"detail,omitempty"`
	Prediction *model.BudgetPrediction `json:"prediction,omitempty"`
	Snapshot   Snapshot                `json:"snapshot"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	DBPath          string    `json:"db_path"`
	Renewed         int64     `json:"renewed_budgets"`
	Materialized    int64     `json:"materialized_occurrences"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg    Config
	ledger *store.Ledger

	mu           sync.RWMutex
	startedAt    time.Time
	lastPollAt   time.Time
	pollCount    int64
	lastError    string
	renewed      int64
	materialized int64
	hasSnapshot  bool
	snapshot     Snapshot
	lastUrgency  map[string]model.Urgency
	nextEventID  int64
	events       []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service backed by the given ledger.
func New(cfg Config, ledger *store.Ledger) *Service {
	if cfg.Interval < time.Minute {
		cfg.Interval = time.Hour
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8791"
	}
	if cfg.BurnHorizonDays < 1 {
		cfg.BurnHorizonDays = 14
	}

	return &Service{
		cfg:         cfg,
		ledger:      ledger,
		startedAt:   time.Now(),
		lastUrgency: make(map[string]model.Urgency),
		subs:        make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce(time.Now())

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(time.Now())
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

// pollOnce executes one maintenance cycle: renewal, materialization, and
// alert recomputation. All work is idempotent, so overlapping daemons or
// a concurrent `fburn renew` only cost wasted reads.
func (s *Service) pollOnce(now time.Time) {
	today := period.FormatDate(now)

	if err := s.renewDueBudgets(now, today); err != nil {
		s.recordPollError(err)
		return
	}
	if err := s.materializeDue(now, today); err != nil {
		s.recordPollError(err)
		return
	}
	if err := s.refreshSnapshot(now, today); err != nil {
		s.recordPollError(err)
		return
	}

	s.mu.Lock()
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Service) recordPollError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.lastPollAt = time.Now()
	s.pollCount++
	s.mu.Unlock()
	log.Printf("fburn daemon poll error: %v", err)
}

func (s *Service) renewDueBudgets(now time.Time, today string) error {
	budgets, err := s.ledger.ListBudgets()
	if err != nil {
		return fmt.Errorf("listing budgets: %w", err)
	}

	for _, b := range budget.DueForRenewal(budgets, today) {
		next := budget.Renew(b, now)
		if err := s.ledger.SaveBudget(next); err != nil {
			return fmt.Errorf("saving renewed budget: %w", err)
		}
		if err := s.ledger.SetBudgetStatus(b.ID, model.Completed); err != nil {
			return fmt.Errorf("completing elapsed budget: %w", err)
		}

		s.mu.Lock()
		s.renewed++
		s.mu.Unlock()

		s.emit(Event{
			Type:       "renewal",
			Timestamp:  now,
			BudgetID:   next.ID,
			CategoryID: next.CategoryID,
			Detail: fmt.Sprintf("renewed for %s..%s",
				next.Period.StartDate, next.Period.EndDate),
		})
	}
	return nil
}

func (s *Service) materializeDue(now time.Time, today string) error {
	txs, err := s.ledger.ListTransactions()
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	from := period.AddDays(today, -catchUpDays)
	for _, occ := range schedule.GenerateVirtual(txs, from) {
		if occ.Date > today {
			continue
		}
		exists, err := s.ledger.HasOccurrence(occ.SourceTemplateID, occ.Date)
		if err != nil {
			return fmt.Errorf("checking occurrence: %w", err)
		}
		if exists {
			continue
		}

		occ.CreatedAt = now
		if err := s.ledger.SaveTransaction(occ); err != nil {
			return fmt.Errorf("saving occurrence: %w", err)
		}

		s.mu.Lock()
		s.materialized++
		s.mu.Unlock()

		s.emit(Event{
			Type:      "occurrence",
			Timestamp: now,
			Detail:    fmt.Sprintf("%s due %s", occ.Name, occ.Date),
		})
	}
	return nil
}

func (s *Service) refreshSnapshot(now time.Time, today string) error {
	txs, err := s.ledger.ListTransactions()
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}
	budgets, err := s.ledger.ListBudgets()
	if err != nil {
		return fmt.Errorf("listing budgets: %w", err)
	}

	predictions := forecast.AllPredictions(budgets, txs, today)
	sts := forecast.SafeToSpend(txs, budgets, period.MonthOf(today), today, schedule.GenerateVirtual)

	active := 0
	for _, b := range budgets {
		if b.Status == model.Active {
			active++
		}
	}

	alerts := 0
	for _, p := range predictions {
		if p.DaysUntilExceeded <= s.cfg.BurnHorizonDays {
			alerts++
		}
	}

	snap := Snapshot{
		At:                 now,
		Today:              today,
		Transactions:       len(txs),
		ActiveBudgets:      active,
		SafeToSpend:        sts.SafeToSpend,
		UpcomingBillsTotal: sts.UpcomingBillsTotal,
		BudgetReserves:     sts.BudgetReserves,
		Alerts:             alerts,
	}

	s.mu.Lock()
	first := !s.hasSnapshot
	s.hasSnapshot = true
	s.snapshot = snap
	s.mu.Unlock()

	if first {
		s.emit(Event{Type: "snapshot", Timestamp: now})
	}

	for i := range predictions {
		p := predictions[i]
		if p.DaysUntilExceeded > s.cfg.BurnHorizonDays {
			continue
		}

		// Alert once per budget per urgency escalation, not every poll.
		s.mu.Lock()
		prev, seen := s.lastUrgency[p.BudgetID]
		s.lastUrgency[p.BudgetID] = p.Urgency
		s.mu.Unlock()

		if !seen || urgencyRank(p.Urgency) > urgencyRank(prev) {
			s.emit(Event{
				Type:       "budget_alert",
				Timestamp:  now,
				BudgetID:   p.BudgetID,
				CategoryID: p.CategoryID,
				Prediction: &p,
			})
		}
	}
	return nil
}

func urgencyRank(u model.Urgency) int {
	switch u {
	case model.UrgencyHigh:
		return 3
	case model.UrgencyMedium:
		return 2
	case model.UrgencyLow:
		return 1
	default:
		return 0
	}
}

func (s *Service) emit(ev Event) {
	s.mu.Lock()
	s.nextEventID++
	ev.ID = s.nextEventID
	ev.Snapshot = s.snapshot

	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		DBPath:          s.cfg.DBPath,
		Renewed:         s.renewed,
		Materialized:    s.materialized,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	s.mu.RLock()
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshot,
	}
	s.mu.RUnlock()
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
