package attendeesource

import (
	"context"
	"sync"

	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	"github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

// Source is an in-memory implementation of attendeesource.Source.
// It is safe for concurrent use. A Source created with NewMissingSource reports
// ErrSourceNotFound until it is seeded.
type Source struct {
	mu sync.RWMutex

	rows    []domain.Attendee
	present bool
	failErr error
}

func NewSource(rows ...domain.Attendee) *Source {
	return &Source{rows: cloneRows(rows), present: true}
}

func NewMissingSource() *Source {
	return &Source{}
}

func (s *Source) Describe() string { return "memory" }

func (s *Source) Load(_ context.Context) ([]domain.Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failErr != nil {
		return nil, s.failErr
	}
	if !s.present {
		return nil, attendeesource.ErrSourceNotFound
	}
	return cloneRows(s.rows), nil
}

func (s *Source) Seed(_ context.Context, rows []domain.Attendee) error {
	s.Set(rows)
	return nil
}

// Set replaces the stored rows, simulating an edit of the external spreadsheet.
func (s *Source) Set(rows []domain.Attendee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = cloneRows(rows)
	s.present = true
}

// FailWith makes subsequent loads return err; nil clears the failure.
func (s *Source) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

func cloneRows(rows []domain.Attendee) []domain.Attendee {
	out := make([]domain.Attendee, len(rows))
	copy(out, rows)
	return out
}
