package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterOptions struct {
	// AdminMiddleware guards the diagnostic and reload endpoints. Nil leaves them open.
	AdminMiddleware func(http.Handler) http.Handler
	// RequestLogging enables chi's request logger.
	RequestLogging bool
}

// NewRouter constructs the HTTP router with default options.
func NewRouter(s *Server) http.Handler {
	return NewRouterWithOptions(s, RouterOptions{})
}

// NewRouterWithOptions constructs the HTTP router. The JSON API is mounted at
// the root and again under /api; the form and result pages live at the root.
func NewRouterWithOptions(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.RequestLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	api := func(r chi.Router) {
		r.Use(recoverJSON)
		r.Post("/register", s.Register)
		r.Group(func(r chi.Router) {
			if opts.AdminMiddleware != nil {
				r.Use(opts.AdminMiddleware)
			}
			r.Get("/attendees", s.ListAttendees)
			r.Post("/reload-database", s.ReloadDatabase)
		})
	}
	r.Group(api)
	r.Route("/api", api)

	r.Get("/", s.FormPage)
	r.Post("/", s.SubmitForm)
	r.Get("/result", s.ResultPage)
	r.Get("/error", s.ResultPage)

	return r
}
