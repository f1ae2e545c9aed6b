package registration

import "github.com/Overland-East-Bay/workshop-checkin/internal/domain"

// Request carries a submitted identifier. Name, Department and Mobile are
// legacy form fields; they are accepted and ignored.
type Request struct {
	Identifier string

	Name       *string
	Department *string
	Mobile     *string
}

// OutcomeKind tags an Outcome.
type OutcomeKind int

const (
	OutcomeRejected OutcomeKind = iota
	OutcomeAssigned
)

// Outcome is the result of a registration attempt: either Assigned (with the
// attendee's assignment) or Rejected (with a user-facing reason).
type Outcome struct {
	Kind OutcomeKind

	// Assigned fields.
	Assignment string
	Name       string
	Department string
	Message    string

	// Rejected fields.
	Reason string
}

func Assigned(a domain.Attendee, message string) Outcome {
	return Outcome{
		Kind:       OutcomeAssigned,
		Assignment: a.Assignment,
		Name:       a.Name,
		Department: a.Department,
		Message:    message,
	}
}

func Rejected(reason string) Outcome {
	return Outcome{Kind: OutcomeRejected, Reason: reason}
}

func (o Outcome) IsAssigned() bool { return o.Kind == OutcomeAssigned }
