package registration

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/Overland-East-Bay/workshop-checkin/internal/app/directory"
	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
)

type Service struct {
	dir *directory.Directory

	// WelcomeMessage is echoed on every successful registration.
	WelcomeMessage string
	// Logf receives one line per outcome. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

func NewService(dir *directory.Directory) *Service {
	return &Service{
		dir:            dir,
		WelcomeMessage: DefaultWelcomeMessage,
		Logf:           log.Printf,
	}
}

// Register looks up the submitted identifier. An absent identifier is a
// validation error; an unknown one yields a Rejected outcome.
func (s *Service) Register(_ context.Context, req Request) (Outcome, error) {
	id := strings.TrimSpace(req.Identifier)
	if id == "" {
		return Outcome{}, &Error{
			Status:  http.StatusBadRequest,
			Code:    CodeValidation,
			Message: MessageMissingIdentifier,
			Details: map[string]any{"identifier": "must be non-empty"},
		}
	}

	a, ok := s.dir.Find(id)
	if !ok {
		s.Logf("registration failed: SAP ID %s not found in directory", id)
		return Rejected(MessageNotRegistered), nil
	}

	s.Logf("registration: %s (SAP: %s) -> %s", a.Name, id, a.Assignment)
	return Assigned(a, s.WelcomeMessage), nil
}

// Listing is the diagnostic view of the whole directory.
type Listing struct {
	Total     int
	Version   string
	Attendees []domain.Attendee
}

// Attendees returns every record of the current directory generation.
func (s *Service) Attendees(_ context.Context) Listing {
	snap := s.dir.Snapshot()
	out := make([]domain.Attendee, len(snap.Records))
	copy(out, snap.Records)
	return Listing{Total: len(out), Version: snap.Version, Attendees: out}
}

// ReloadResult reports the size and version of the newly installed directory.
type ReloadResult struct {
	Count   int
	Version string
}

func (s *Service) Reload(ctx context.Context) (ReloadResult, error) {
	n, err := s.dir.Reload(ctx)
	if err != nil {
		return ReloadResult{}, &Error{
			Status:  http.StatusInternalServerError,
			Code:    CodeReload,
			Message: MessageReloadFailed,
		}
	}
	return ReloadResult{Count: n, Version: s.dir.Snapshot().Version}, nil
}
