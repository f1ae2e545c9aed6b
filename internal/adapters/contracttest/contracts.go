package contracttest

import (
	"context"
	"errors"
	"testing"

	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	attendeesourceport "github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

type CleanupFunc = func()

// AttendeeSourceFactory returns a source whose backing store does not exist yet.
type AttendeeSourceFactory func(t *testing.T) (attendeesourceport.Source, CleanupFunc)

func RunAttendeeSource(t *testing.T, newSource AttendeeSourceFactory) {
	t.Helper()
	ctx := context.Background()

	src, cleanup := newSource(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Missing store.
	if _, err := src.Load(ctx); !errors.Is(err, attendeesourceport.ErrSourceNotFound) {
		t.Fatalf("Load on missing store err=%v, want ErrSourceNotFound", err)
	}

	seeder, ok := src.(attendeesourceport.Seeder)
	if !ok {
		t.Fatalf("%T does not implement attendeesource.Seeder", src)
	}

	rows := []domain.Attendee{
		{Name: "satish", Department: "Technology", Identifier: "50012345", Assignment: "1"},
		{Name: "Host Person", Identifier: "50012399", Assignment: "Host - Main Stage"},
		{Name: "duplicate", Department: "HR", Identifier: "50012345", Assignment: "9"},
		{Name: "zero", Department: "PPC", Identifier: "0042", Assignment: "Team 7"},
	}
	if err := seeder.Seed(ctx, rows); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	got, err := src.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("len=%d want=%d got=%+v", len(got), len(rows), got)
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Fatalf("row %d = %+v, want %+v (source order and values must round-trip)", i, got[i], rows[i])
		}
	}

	// Re-seeding replaces the whole dataset.
	replaced := []domain.Attendee{{Name: "only", Identifier: "1", Assignment: "Coordinator"}}
	if err := seeder.Seed(ctx, replaced); err != nil {
		t.Fatalf("Seed replace: %v", err)
	}
	got, err = src.Load(ctx)
	if err != nil {
		t.Fatalf("Load after replace: %v", err)
	}
	if len(got) != 1 || got[0] != replaced[0] {
		t.Fatalf("after replace got=%+v, want %+v", got, replaced)
	}
}
