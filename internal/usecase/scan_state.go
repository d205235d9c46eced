package usecase

import (
	"sync"
	"time"
)

// ScanState tracks the last moment both source pages were fetched
// successfully. It is shared between the poll scheduler (writer) and the
// dashboard handlers (readers).
type ScanState struct {
	mu       sync.RWMutex
	lastScan *time.Time
}

func NewScanState() *ScanState {
	return &ScanState{}
}

func (s *ScanState) MarkSuccess(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastScan = &t
}

// LastScan returns nil until the first successful fetch of both pages.
func (s *ScanState) LastScan() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastScan == nil {
		return nil
	}
	t := *s.lastScan
	return &t
}
