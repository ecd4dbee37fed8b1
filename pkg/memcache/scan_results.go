// pkg/memcache/scan_results.go
package mem

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ScanResultStore remembers the outcome of a counter scan for a short window
// so a repeated submission of the same scan id replays instead of redeeming again.
type ScanResultStore interface {
	// Resolve returns the stored result for scanID, or runs fn once across
	// concurrent callers with the same scanID. The result is stored for ttl
	// when fn reports keep. replayed is false only for the caller whose fn ran.
	Resolve(scanID string, ttl time.Duration, fn func() (result any, keep bool)) (result any, replayed bool)
}

type entry struct {
	result    any
	expiresAt time.Time
}

type resolved struct {
	result any
	cached bool
}

type ScanResults struct {
	mu       sync.RWMutex
	data     map[string]entry
	now      func() time.Time
	inflight singleflight.Group
}

func NewScanResults() *ScanResults {
	return &ScanResults{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *ScanResults) Resolve(scanID string, ttl time.Duration, fn func() (any, bool)) (any, bool) {
	ran := false
	v, _, _ := s.inflight.Do(scanID, func() (any, error) {
		// a previous flight may have finished between the caller's arrival and now
		if result, ok := s.Peek(scanID); ok {
			return resolved{result: result, cached: true}, nil
		}
		ran = true
		result, keep := fn()
		if keep {
			s.Set(scanID, result, ttl)
		}
		return resolved{result: result}, nil
	})
	return v.(resolved).result, !ran
}

func (s *ScanResults) Set(scanID string, result any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.data[scanID] = entry{
		result:    result,
		expiresAt: s.now().Add(ttl),
	}
}

// Peek returns the stored result if present and not expired.
func (s *ScanResults) Peek(scanID string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[scanID]
	if !ok || s.now().After(e.expiresAt) {
		return nil, false
	}
	return e.result, true
}

// sweepLocked drops expired entries; callers hold mu.
func (s *ScanResults) sweepLocked() {
	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
}
