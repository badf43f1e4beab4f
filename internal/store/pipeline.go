// internal/store/pipeline.go
//
// Package store holds the dashboard's two UI state containers. Both are
// injectable (no package-level singletons), mutex-guarded, and only ever
// replaced wholesale: a reader sees either the previous snapshot or the new
// one, never a record with half its fields updated.

package store

import (
	"sync"

	"github.com/crediflow/brokerdesk/internal/borrower"
)

// PipelineState holds the borrower list and the current selection.
type PipelineState struct {
	mu          sync.RWMutex
	borrowers   []borrower.View
	selected    *borrower.View
	detailToken uint64
}

// NewPipelineState creates an empty pipeline container.
func NewPipelineState() *PipelineState {
	return &PipelineState{}
}

// ReplaceAll swaps in a new borrower list.
func (s *PipelineState) ReplaceAll(views []borrower.View) {
	copied := make([]borrower.View, len(views))
	copy(copied, views)
	s.mu.Lock()
	s.borrowers = copied
	s.mu.Unlock()
}

// Borrowers returns a copy of the current list.
func (s *PipelineState) Borrowers() []borrower.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]borrower.View, len(s.borrowers))
	copy(copied, s.borrowers)
	return copied
}

// Selected returns the currently selected borrower, if any.
func (s *PipelineState) Selected() (borrower.View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return borrower.View{}, false
	}
	return *s.selected, true
}

// SetSelected replaces the selection with a summary-level view. Used the
// moment the user picks a borrower, before the detail merge arrives.
func (s *PipelineState) SetSelected(v borrower.View) {
	s.mu.Lock()
	s.selected = &v
	s.mu.Unlock()
}

// ClearSelected drops the selection.
func (s *PipelineState) ClearSelected() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

// BeginDetailFetch registers a new in-flight detail fetch and returns its
// token. Tokens increase monotonically; only the most recently issued one
// may complete. This is the guard against an out-of-order detail response
// overwriting a newer selection.
func (s *PipelineState) BeginDetailFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailToken++
	return s.detailToken
}

// CompleteDetailFetch installs the merged view as the selection if token is
// still the latest issued. It reports whether the write was applied; stale
// responses are discarded without touching state.
func (s *PipelineState) CompleteDetailFetch(token uint64, v borrower.View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.detailToken {
		return false
	}
	s.selected = &v
	return true
}
