package domain

// Identifier is the attendee's business key (the SAP ID printed on the badge).
// It is compared as an exact string after trimming; case and leading zeros are significant.
type Identifier string

// Attendee is one row of the attendee directory.
type Attendee struct {
	Name       string
	Department string
	Identifier Identifier
	// Assignment is either a table number ("1", "Team 7") or a role label ("Host", "Coordinator").
	Assignment string
}
