package attendeesource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/Overland-East-Bay/workshop-checkin/internal/adapters/tabular"
	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	"github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

// SheetName is the sheet name used when writing a fixture workbook.
const SheetName = "Attendees"

// Source reads the first sheet of an .xlsx workbook.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Describe() string { return "xlsx:" + s.path }

func (s *Source) Load(ctx context.Context) ([]domain.Attendee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", attendeesource.ErrSourceNotFound, s.path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", attendeesource.ErrMalformedSource, s.path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", attendeesource.ErrMalformedSource, s.path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", attendeesource.ErrMalformedSource, sheets[0], err)
	}
	return tabular.Decode(rows)
}

// Seed writes rows to a new workbook at the source path, replacing any existing file.
func (s *Source) Seed(ctx context.Context, rows []domain.Attendee) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	for i, row := range tabular.Encode(rows) {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cellRef, &cells); err != nil {
			return err
		}
	}
	return f.SaveAs(s.path)
}
