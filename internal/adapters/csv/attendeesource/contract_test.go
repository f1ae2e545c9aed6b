package attendeesource

import (
	"path/filepath"
	"testing"

	"github.com/Overland-East-Bay/workshop-checkin/internal/adapters/contracttest"
	attendeesourceport "github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

func TestContract_CSVAttendeeSource(t *testing.T) {
	contracttest.RunAttendeeSource(t, func(t *testing.T) (attendeesourceport.Source, func()) {
		t.Helper()
		return NewSource(filepath.Join(t.TempDir(), "attendees.csv")), nil
	})
}
