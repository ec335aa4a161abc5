package prayer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// Sync keeps the latest prayer times for the current (location, date) pair.
//
// Every input change starts a new fetch. In-flight fetches are neither
// cancelled nor deduplicated; each result is applied when it settles, so the
// displayed set is whichever response arrived last. A failed fetch keeps the
// previous set.
type Sync struct {
	provider ports.PrayerTimesProvider
	logger   ports.Logger

	mu        sync.RWMutex
	inputs    Inputs
	hasInputs bool
	times     TimeSet
	loading   bool

	inflight sync.WaitGroup
}

type SyncDependencies struct {
	Provider ports.PrayerTimesProvider
	Logger   ports.Logger
}

func NewSync(deps SyncDependencies) (*Sync, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("prayer times provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Sync{
		provider: deps.Provider,
		logger:   deps.Logger,
		loading:  true,
	}, nil
}

// Start issues the launch fetch for the initial inputs, resolved or not.
// ctx must outlive the fetch; it is not tied to a single caller request.
func (s *Sync) Start(ctx context.Context, in Inputs) {
	s.mu.Lock()
	s.inputs = in
	s.hasInputs = true
	s.loading = true
	s.mu.Unlock()

	s.launch(ctx, in)
}

// Update starts a fetch when in differs from the last inputs and reports
// whether it did. An unresolved location is passed through as is.
func (s *Sync) Update(ctx context.Context, in Inputs) bool {
	s.mu.Lock()
	if s.hasInputs && s.inputs == in {
		s.mu.Unlock()
		return false
	}
	s.inputs = in
	s.hasInputs = true
	s.loading = true
	s.mu.Unlock()

	s.launch(ctx, in)
	return true
}

func (s *Sync) launch(ctx context.Context, in Inputs) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.fetch(ctx, in)
	}()
}

func (s *Sync) fetch(ctx context.Context, in Inputs) {
	requestID := uuid.NewString()
	query := in.query()

	s.logger.Debug("Fetching prayer times",
		ports.F("request_id", requestID),
		ports.F("city", query.City),
		ports.F("country", query.Country),
		ports.F("date", query.Date))

	start := time.Now()
	timings, err := s.provider.GetTimings(ctx, query)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.times = timeSetFromPorts(timings)
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Error fetching prayer times",
			ports.F("request_id", requestID),
			ports.F("city", query.City),
			ports.F("date", query.Date),
			ports.F("error", err))
		return
	}

	s.logger.Debug("Prayer times updated",
		ports.F("request_id", requestID),
		ports.F("city", query.City),
		ports.F("date", query.Date),
		ports.F("count", len(timings)),
		ports.F("duration_ms", time.Since(start).Milliseconds()))
}

// Times returns the latest successfully fetched set, nil before the first success
func (s *Sync) Times() TimeSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.times == nil {
		return nil
	}
	out := make(TimeSet, len(s.times))
	copy(out, s.times)
	return out
}

// Loading is set when a fetch starts and cleared when any fetch settles
func (s *Sync) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Inputs returns the inputs of the most recently started fetch
func (s *Sync) Inputs() Inputs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputs
}

// Wait blocks until every started fetch has settled
func (s *Sync) Wait() {
	s.inflight.Wait()
}
