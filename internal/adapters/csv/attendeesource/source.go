package attendeesource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Overland-East-Bay/workshop-checkin/internal/adapters/tabular"
	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	"github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

// Source reads a header-first CSV export of the attendee sheet.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Describe() string { return "csv:" + s.path }

func (s *Source) Load(ctx context.Context) ([]domain.Attendee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", attendeesource.ErrSourceNotFound, s.path)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", attendeesource.ErrMalformedSource, s.path, err)
	}
	return tabular.Decode(rows)
}

// Seed writes rows to the source path, replacing any existing file.
func (s *Source) Seed(ctx context.Context, rows []domain.Attendee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(tabular.Encode(rows)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
