package directory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	"github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
	clockport "github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/clock"
)

// Directory holds the process-wide attendee directory.
//
// The current Snapshot is swapped atomically on reload; lookups always observe
// one complete generation.
type Directory struct {
	src attendeesource.Source
	clk clockport.Clock

	current  atomic.Pointer[Snapshot]
	reloadMu sync.Mutex

	newVersion func() string

	// SeedFixture writes Fixture to a missing source that implements attendeesource.Seeder.
	SeedFixture bool
	// Logf receives load diagnostics. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

func New(src attendeesource.Source, clk clockport.Clock) *Directory {
	d := &Directory{
		src:        src,
		clk:        clk,
		newVersion: uuid.NewString,
		Logf:       log.Printf,
	}
	d.current.Store(&Snapshot{Records: []domain.Attendee{}})
	return d
}

// Load reads the source and installs the result. It fails soft: a missing or
// malformed source is logged and degrades to an empty directory.
func (d *Directory) Load(ctx context.Context) []domain.Attendee {
	d.reloadMu.Lock()
	defer d.reloadMu.Unlock()

	rows, err := d.read(ctx)
	if err != nil {
		d.Logf("directory: load from %s failed, serving empty directory: %v", d.describe(), err)
		rows = []domain.Attendee{}
	}
	d.install(rows)
	return rows
}

// Reload re-reads the source and atomically replaces the directory.
// On failure the previous snapshot stays in place.
func (d *Directory) Reload(ctx context.Context) (int, error) {
	d.reloadMu.Lock()
	defer d.reloadMu.Unlock()

	rows, err := d.read(ctx)
	if err != nil {
		d.Logf("directory: reload from %s failed, keeping %d records: %v", d.describe(), d.Snapshot().Len(), err)
		return 0, err
	}
	snap := d.install(rows)
	return snap.Len(), nil
}

// Snapshot returns the current directory generation.
func (d *Directory) Snapshot() *Snapshot {
	return d.current.Load()
}

func (d *Directory) read(ctx context.Context) ([]domain.Attendee, error) {
	rows, err := d.src.Load(ctx)
	if err == nil {
		return rows, nil
	}
	if !errors.Is(err, attendeesource.ErrSourceNotFound) || !d.SeedFixture {
		return nil, err
	}
	seeder, ok := d.src.(attendeesource.Seeder)
	if !ok {
		return nil, err
	}

	d.Logf("directory: %s not found, creating sample database", d.describe())
	if serr := seeder.Seed(ctx, Fixture()); serr != nil {
		return nil, fmt.Errorf("seed fixture: %w", serr)
	}
	d.Logf("directory: sample database created at %s", d.describe())
	return d.src.Load(ctx)
}

func (d *Directory) install(rows []domain.Attendee) *Snapshot {
	snap := &Snapshot{
		Version:  d.newVersion(),
		LoadedAt: d.clk.Now(),
		Records:  rows,
	}
	if dups := duplicateIdentifiers(rows); len(dups) > 0 {
		d.Logf("directory: %d duplicate identifiers, first row wins: %v", len(dups), dups)
	}
	d.current.Store(snap)
	d.Logf("directory: loaded %d attendees from %s (version %s)", len(rows), d.describe(), snap.Version)
	return snap
}

func (d *Directory) describe() string {
	if ds, ok := d.src.(attendeesource.Describer); ok {
		return ds.Describe()
	}
	return fmt.Sprintf("%T", d.src)
}
