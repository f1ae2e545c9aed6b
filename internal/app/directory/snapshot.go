package directory

import (
	"time"

	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
)

// Snapshot is one immutable generation of the attendee directory.
// Callers must not modify Records.
type Snapshot struct {
	Version  string
	LoadedAt time.Time
	Records  []domain.Attendee
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}

func duplicateIdentifiers(rows []domain.Attendee) []domain.Identifier {
	seen := make(map[domain.Identifier]int, len(rows))
	var dups []domain.Identifier
	for _, r := range rows {
		seen[r.Identifier]++
		if seen[r.Identifier] == 2 {
			dups = append(dups, r.Identifier)
		}
	}
	return dups
}
