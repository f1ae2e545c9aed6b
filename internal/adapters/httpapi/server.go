package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/oapi-codegen/nullable"

	"github.com/Overland-East-Bay/workshop-checkin/internal/app/registration"
	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	clockport "github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/clock"
)

// Server is the HTTP adapter over the registration service.
type Server struct {
	Registration *registration.Service
	Clock        clockport.Clock

	// Logf receives adapter diagnostics. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

func NewServer(svc *registration.Service, clk clockport.Clock) *Server {
	return &Server{
		Registration: svc,
		Clock:        clk,
		Logf:         log.Printf,
	}
}

// registerRequest accepts the current field name and the legacy sapId alias.
// Name, department and mobile are legacy form fields and are ignored.
type registerRequest struct {
	Identifier nullable.Nullable[jsonText] `json:"identifier,omitempty"`
	SapID      nullable.Nullable[jsonText] `json:"sapId,omitempty"`
	Name       nullable.Nullable[string] `json:"name,omitempty"`
	Department nullable.Nullable[string] `json:"department,omitempty"`
	Mobile     nullable.Nullable[string] `json:"mobile,omitempty"`
}

func (in registerRequest) toRequest() registration.Request {
	id, ok := optional(in.Identifier)
	if !ok || id == "" {
		id, _ = optional(in.SapID)
	}
	req := registration.Request{Identifier: string(id)}
	if v, ok := optional(in.Name); ok {
		req.Name = &v
	}
	if v, ok := optional(in.Department); ok {
		req.Department = &v
	}
	if v, ok := optional(in.Mobile); ok {
		req.Mobile = &v
	}
	return req
}

func optional[T any](n nullable.Nullable[T]) (T, bool) {
	if !n.IsSpecified() || n.IsNull() {
		var zero T
		return zero, false
	}
	v, err := n.Get()
	return v, err == nil
}

// jsonText is a string that also accepts a bare JSON number. Spreadsheet-fed
// clients send SAP IDs as numbers; the digits are kept exactly as written.
type jsonText string

func (t *jsonText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = jsonText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = jsonText(n.String())
	return nil
}

// registerResponse is the success body. TableNo mirrors Assignment for older clients.
type registerResponse struct {
	Success    bool   `json:"success"`
	Assignment string `json:"assignment"`
	TableNo    string `json:"tableNo"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Message    string `json:"message"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
			writeFailure(w, r, http.StatusBadRequest, registration.CodeValidation, "invalid JSON body")
			return
		}
	}

	out, err := s.Registration.Register(r.Context(), in.toRequest())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if !out.IsAssigned() {
		writeFailure(w, r, http.StatusNotFound, registration.CodeNotFound, out.Reason)
		return
	}
	writeJSON(w, http.StatusOK, registerResponse{
		Success:    true,
		Assignment: out.Assignment,
		TableNo:    out.Assignment,
		Name:       out.Name,
		Department: out.Department,
		Message:    out.Message,
	})
}

// attendeeJSON keeps the spreadsheet header names as keys.
type attendeeJSON struct {
	Name       string `json:"Name"`
	Department string `json:"Department"`
	Identifier string `json:"SAP ID"`
	Assignment string `json:"Table No"`
}

type attendeesResponse struct {
	Total     int            `json:"total"`
	Version   string         `json:"version"`
	Attendees []attendeeJSON `json:"attendees"`
}

func toAttendeeJSON(a domain.Attendee) attendeeJSON {
	return attendeeJSON{
		Name:       a.Name,
		Department: a.Department,
		Identifier: string(a.Identifier),
		Assignment: a.Assignment,
	}
}

func (s *Server) ListAttendees(w http.ResponseWriter, r *http.Request) {
	l := s.Registration.Attendees(r.Context())
	out := make([]attendeeJSON, 0, len(l.Attendees))
	for _, a := range l.Attendees {
		out = append(out, toAttendeeJSON(a))
	}
	writeJSON(w, http.StatusOK, attendeesResponse{Total: l.Total, Version: l.Version, Attendees: out})
}

type reloadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
	Version string `json:"version"`
}

func (s *Server) ReloadDatabase(w http.ResponseWriter, r *http.Request) {
	res, err := s.Registration.Reload(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{
		Success: true,
		Message: registration.MessageReloaded,
		Count:   res.Count,
		Version: res.Version,
	})
}
