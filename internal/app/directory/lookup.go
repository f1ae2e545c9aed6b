package directory

import "github.com/Overland-East-Bay/workshop-checkin/internal/domain"

// Find returns the first record, in load order, whose identifier equals the
// trimmed input.
func (d *Directory) Find(identifier string) (domain.Attendee, bool) {
	return d.Snapshot().Find(identifier)
}

// Find scans a single generation. Lookups that must stay consistent across
// several calls should hold on to one Snapshot.
func (s *Snapshot) Find(identifier string) (domain.Attendee, bool) {
	if s == nil {
		return domain.Attendee{}, false
	}
	id := domain.NormalizeIdentifier(identifier)
	if id == "" {
		return domain.Attendee{}, false
	}
	for _, r := range s.Records {
		if r.Identifier == id {
			return r, true
		}
	}
	return domain.Attendee{}, false
}

// All returns a copy of every record in the current generation.
func (d *Directory) All() []domain.Attendee {
	snap := d.Snapshot()
	out := make([]domain.Attendee, len(snap.Records))
	copy(out, snap.Records)
	return out
}
