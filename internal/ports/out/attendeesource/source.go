package attendeesource

import (
	"context"

	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
)

// Source reads the full attendee directory from an external tabular store.
//
// Ordering expectations:
// - Load returns rows in source order; the directory relies on it for first-match-wins lookups.
type Source interface {
	Load(ctx context.Context) ([]domain.Attendee, error)
}

// Seeder is implemented by sources that can persist a fixture dataset when the
// underlying store does not exist yet.
type Seeder interface {
	Seed(ctx context.Context, rows []domain.Attendee) error
}

// Describer is optionally implemented by sources to name their location in logs.
type Describer interface {
	Describe() string
}
