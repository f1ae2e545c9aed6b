package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/nullable"

	"github.com/Overland-East-Bay/workshop-checkin/internal/app/registration"
)

// failureResponse is the body of every non-2xx API response.
type failureResponse struct {
	Success   bool                      `json:"success"`
	Message   string                    `json:"message"`
	Code      string                    `json:"code,omitempty"`
	RequestID nullable.Nullable[string] `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	fr := failureResponse{Success: false, Code: code, Message: message}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		fr.RequestID = nullable.NewNullableWithValue(rid)
	}
	writeJSON(w, status, fr)
}

// writeAppError maps an app-layer error onto a JSON failure. Anything that is
// not a *registration.Error becomes a generic 500.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	if ae := (*registration.Error)(nil); errors.As(err, &ae) {
		writeFailure(w, r, ae.Status, ae.Code, ae.Message)
		return
	}
	log.Printf("httpapi: %s %s: %v", r.Method, r.URL.Path, err)
	writeFailure(w, r, http.StatusInternalServerError, registration.CodeInternal, registration.MessageServerError)
}

// recoverJSON turns a handler panic into the generic JSON 500.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("httpapi: panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				writeFailure(w, r, http.StatusInternalServerError, registration.CodeInternal, registration.MessageServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
