package store

import (
	"sync"

	"github.com/crediflow/brokerdesk/internal/borrower"
)

// BrokerState holds the broker stats and onboarding steps for the overview
// panel.
type BrokerState struct {
	mu      sync.RWMutex
	broker  *borrower.Broker
	steps   []string
	loading bool
}

// NewBrokerState creates an empty broker container.
func NewBrokerState() *BrokerState {
	return &BrokerState{}
}

// Replace swaps in the broker record and onboarding steps together and
// clears the loading flag.
func (s *BrokerState) Replace(b borrower.Broker, steps []string) {
	copied := make([]string, len(steps))
	copy(copied, steps)
	s.mu.Lock()
	s.broker = &b
	s.steps = copied
	s.loading = false
	s.mu.Unlock()
}

// Broker returns the broker record, if loaded.
func (s *BrokerState) Broker() (borrower.Broker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.broker == nil {
		return borrower.Broker{}, false
	}
	return *s.broker, true
}

// Steps returns a copy of the onboarding step list.
func (s *BrokerState) Steps() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]string, len(s.steps))
	copy(copied, s.steps)
	return copied
}

// SetLoading flips the loading flag.
func (s *BrokerState) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Loading reports whether a broker fetch is in flight.
func (s *BrokerState) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Reset returns the container to its empty state.
func (s *BrokerState) Reset() {
	s.mu.Lock()
	s.broker = nil
	s.steps = nil
	s.loading = false
	s.mu.Unlock()
}
