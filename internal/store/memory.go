package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/surfwatch/surfcast/internal/surf"
)

var (
	// ErrNotFound is returned when no report is available for a given spot.
	ErrNotFound = errors.New("no surf report for spot")
)

// Report is one stored analysis run for a surf spot.
type Report struct {
	Spot      string         `json:"spot"`
	FetchedAt time.Time      `json:"fetched_at"` // always UTC
	Analysis  *surf.Analysis `json:"analysis"`
}

// reportHistory holds a time-ordered list of reports for a spot.
type reportHistory struct {
	Reports []Report
}

// MemoryStore is a concurrency-safe in-memory report store with optional
// count and age retention.
type MemoryStore struct {
	mu sync.RWMutex

	// key: normalized spot name, value: history
	data map[string]*reportHistory

	maxHistory int           // max number of reports per spot (<=0 = unlimited)
	maxAge     time.Duration // max age of reports (0 = unlimited)
}

// NewMemoryStore creates a new MemoryStore with optional limits.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*reportHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

func spotKey(spot string) string {
	return strings.ToLower(strings.TrimSpace(spot))
}

// SaveReport appends a report for a spot and enforces retention.
func (s *MemoryStore) SaveReport(spot string, report Report) {
	key := spotKey(spot)

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &reportHistory{}
		s.data[key] = history
	}

	history.Reports = append(history.Reports, report)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Reports) > s.maxHistory {
		over := len(history.Reports) - s.maxHistory
		history.Reports = history.Reports[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Reports); i++ {
			if !history.Reports[i].FetchedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(history.Reports) {
			history.Reports = history.Reports[i:]
		}
	}
}

// GetLatest returns the most recent report for a spot.
func (s *MemoryStore) GetLatest(spot string) (Report, error) {
	key := spotKey(spot)

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Reports) == 0 {
		return Report{}, ErrNotFound
	}
	return history.Reports[len(history.Reports)-1], nil
}

// GetRange returns all reports for a spot fetched between from and to,
// inclusive.
func (s *MemoryStore) GetRange(spot string, from, to time.Time) ([]Report, error) {
	key := spotKey(spot)

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Reports) == 0 {
		return nil, ErrNotFound
	}

	var result []Report
	for _, r := range history.Reports {
		if !r.FetchedAt.Before(from) && !r.FetchedAt.After(to) {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}
