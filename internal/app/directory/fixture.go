package directory

import "github.com/Overland-East-Bay/workshop-checkin/internal/domain"

// Fixture returns the sample dataset written when no source exists yet.
func Fixture() []domain.Attendee {
	return []domain.Attendee{
		{Name: "satish", Department: "Technology", Identifier: "50012345", Assignment: "1"},
		{Name: "paresh", Department: "Technology", Identifier: "50012346", Assignment: "1"},
		{Name: "nithin", Department: "EHS", Identifier: "50012347", Assignment: "2"},
		{Name: "aswin", Department: "PPC", Identifier: "50012348", Assignment: "3"},
		{Name: "nandhini", Department: "Production", Identifier: "50012349", Assignment: "4"},
		{Name: "anupriya", Department: "HR", Identifier: "50012350", Assignment: "5"},
		{Name: "rajiv", Department: "Quality", Identifier: "50012351", Assignment: "6"},
		{Name: "abishanth", Department: "Engineering", Identifier: "50012352", Assignment: "7"},
		{Name: "vignesh", Department: "Finance", Identifier: "50012353", Assignment: "8"},
		{Name: "ayyapa", Department: "Procurement", Identifier: "50012354", Assignment: "9"},
		{Name: "baskhar", Department: "QBM", Identifier: "50012355", Assignment: "10"},
		{Name: "vijay", Department: "HR", Identifier: "50012356", Assignment: "5"},
	}
}
