package entitlement

import (
	"context"
	"sync"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// PaidUserKey is the fixed store key under which the paid flag is persisted
const PaidUserKey = "isPaidUser"

const paidValue = "true"

// State is the paid/trial access state
type State struct {
	IsPaidUser    bool `json:"isPaidUser"`
	IsTrialActive bool `json:"isTrialActive"`
}

// SubscribeVisible reports whether the subscribe prompt should be shown
func (s State) SubscribeVisible() bool {
	return !s.IsPaidUser && !s.IsTrialActive
}

// Service tracks entitlement state. Only the paid flag is persisted;
// the trial flag lives for the process.
type Service struct {
	store  ports.KeyValueStore
	logger ports.Logger

	mu    sync.RWMutex
	state State
}

type ServiceDependencies struct {
	Store  ports.KeyValueStore
	Logger ports.Logger
}

func NewService(deps ServiceDependencies) (*Service, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("entitlement store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &Service{
		store:  deps.Store,
		logger: deps.Logger,
	}, nil
}

// IsSubscribeVisible is true iff the user is neither paid nor in a trial
func (s *Service) IsSubscribeVisible() bool {
	return s.State().SubscribeVisible()
}

// State returns a snapshot of the entitlement flags
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// MarkPaid sets the paid flag and persists it. It is idempotent. The
// in-memory flag stays set even if persisting fails; the error is returned
// so the caller can log it.
func (s *Service) MarkPaid(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsPaidUser = true

	if err := s.store.Set(ctx, PaidUserKey, paidValue); err != nil {
		s.logger.Error("Failed to persist paid flag", ports.F("error", err))
		return errors.NewStorageError("persist paid flag", err)
	}

	s.logger.Info("User marked as paid")
	return nil
}

// SetTrialActive is the hook for the collaborator that owns trial activation
func (s *Service) SetTrialActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsTrialActive = active
}

// Restore loads the persisted paid flag; it is called once at launch.
// A missing key leaves the user unpaid.
func (s *Service) Restore(ctx context.Context) error {
	value, err := s.store.Get(ctx, PaidUserKey)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return errors.NewStorageError("restore paid flag", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if value == paidValue {
		s.state.IsPaidUser = true
	}

	s.logger.Debug("Entitlement restored", ports.F("paid", s.state.IsPaidUser))
	return nil
}
