// Package tabular decodes header-first row grids (spreadsheet sheets, CSV files)
// into attendee records.
package tabular

import (
	"fmt"
	"strings"

	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	"github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

// Canonical header names written to fixture files.
const (
	HeaderName       = "Name"
	HeaderDepartment = "Department"
	HeaderIdentifier = "SAP ID"
	HeaderAssignment = "Table No"
)

// Header is the canonical column order used when writing rows.
var Header = []string{HeaderName, HeaderDepartment, HeaderIdentifier, HeaderAssignment}

type column int

const (
	colName column = iota
	colDepartment
	colIdentifier
	colAssignment
)

type alias struct {
	col column
	// rank 0 is an exact header; higher ranks are looser fallbacks.
	rank int
}

// aliases maps a folded header (lowercase, no spaces/underscores) to a column.
var aliases = map[string]alias{
	"name":        {colName, 0},
	"fullname":    {colName, 0},
	"department":  {colDepartment, 0},
	"dept":        {colDepartment, 1},
	"sapid":       {colIdentifier, 0},
	"sap":         {colIdentifier, 1},
	"identifier":  {colIdentifier, 1},
	"id":          {colIdentifier, 2},
	"tableno":     {colAssignment, 0},
	"tablenumber": {colAssignment, 0},
	"assignment":  {colAssignment, 1},
	"table":       {colAssignment, 2},
}

func foldHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "", "_", "", "-", "", ".", "").Replace(s)
	return s
}

// Decode converts rows (first row is the header) to attendees.
//
// Name, identifier and assignment columns are required; department is optional.
// An exact header such as "SAP ID" wins over a loose one such as "ID" in
// any position.
// Rows with an empty identifier are skipped. Short rows default missing cells to "".
func Decode(rows [][]string) ([]domain.Attendee, error) {
	if len(rows) == 0 {
		return []domain.Attendee{}, nil
	}

	// A column binds to its best-ranked header; ties go to the leftmost.
	idx := map[column]int{}
	bound := map[column]int{}
	for i, h := range rows[0] {
		a, ok := aliases[foldHeader(h)]
		if !ok {
			continue
		}
		if rank, dup := bound[a.col]; dup && rank <= a.rank {
			continue
		}
		idx[a.col] = i
		bound[a.col] = a.rank
	}
	for _, req := range []struct {
		c    column
		name string
	}{
		{colName, HeaderName},
		{colIdentifier, HeaderIdentifier},
		{colAssignment, HeaderAssignment},
	} {
		if _, ok := idx[req.c]; !ok {
			return nil, fmt.Errorf("%w: missing %q column", attendeesource.ErrMalformedSource, req.name)
		}
	}

	cell := func(row []string, c column) string {
		i, ok := idx[c]
		if !ok || i >= len(row) {
			return ""
		}
		return domain.NormalizeCell(row[i])
	}

	out := make([]domain.Attendee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id := domain.NormalizeIdentifier(cell(row, colIdentifier))
		if id == "" {
			continue
		}
		out = append(out, domain.Attendee{
			Name:       cell(row, colName),
			Department: cell(row, colDepartment),
			Identifier: id,
			Assignment: cell(row, colAssignment),
		})
	}
	return out, nil
}

// Encode renders attendees as a header-first grid in canonical column order.
func Encode(as []domain.Attendee) [][]string {
	out := make([][]string, 0, len(as)+1)
	out = append(out, append([]string(nil), Header...))
	for _, a := range as {
		out = append(out, []string{a.Name, a.Department, string(a.Identifier), a.Assignment})
	}
	return out
}
