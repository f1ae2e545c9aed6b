package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/oapi-codegen/runtime"

	"github.com/Overland-East-Bay/workshop-checkin/internal/adapters/httpapi/pages"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/form"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/registration"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/result"
)

// serviceRegistrar is the in-process form.Registrar used by the server-side
// form post. It yields the same replies a remote client would see.
type serviceRegistrar struct {
	svc *registration.Service
}

func (r serviceRegistrar) Register(ctx context.Context, identifier string) (form.Reply, error) {
	out, err := r.svc.Register(ctx, registration.Request{Identifier: identifier})
	if err != nil {
		if ae := (*registration.Error)(nil); errors.As(err, &ae) {
			return form.Reply{OK: false, Message: ae.Message}, nil
		}
		return form.Reply{OK: false, Message: registration.MessageServerError}, nil
	}
	if !out.IsAssigned() {
		return form.Reply{OK: false, Message: out.Reason}, nil
	}
	return form.Reply{
		OK:         true,
		Assignment: out.Assignment,
		Name:       out.Name,
		Department: out.Department,
		Message:    out.Message,
	}, nil
}

func (s *Server) FormPage(w http.ResponseWriter, r *http.Request) {
	templ.Handler(pages.Form(pages.FormView{})).ServeHTTP(w, r)
}

// SubmitForm runs one form controller per request. Valid submissions redirect
// to the result navigation; validation failures re-render with the alert.
func (s *Server) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	raw := r.PostForm.Get("identifier")
	if raw == "" {
		raw = r.PostForm.Get("sapId")
	}

	c := form.NewController(serviceRegistrar{svc: s.Registration}, s.Clock)
	c.Logf = s.Logf
	value := c.Input(raw)

	nav, err := c.Submit(r.Context())
	if err != nil {
		view := pages.FormView{Value: value}
		if alert, ok := c.Alert(); ok {
			view.Alert = alert.Message
		} else {
			view.Alert = err.Error()
		}
		templ.Handler(pages.Form(view), templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
		return
	}
	http.Redirect(w, r, nav.URL(), http.StatusSeeOther)
}

// ResultPage consumes the navigation query once and renders the terminal view.
func (s *Server) ResultPage(w http.ResponseWriter, r *http.Request) {
	params, err := bindResultParams(r)
	if err != nil {
		s.Logf("httpapi: result params: %v", err)
	}
	view, _ := result.NewRenderer().Resolve(params)
	templ.Handler(pages.Result(view)).ServeHTTP(w, r)
}

func bindResultParams(r *http.Request) (result.Params, error) {
	q := r.URL.Query()
	var p result.Params
	fields := []struct {
		name string
		dest *string
	}{
		{form.ParamTableNo, &p.TableNo},
		{form.ParamName, &p.Name},
		{form.ParamDepartment, &p.Department},
		{form.ParamMessage, &p.Message},
		{form.ParamRole, &p.Role},
		{form.ParamError, &p.Error},
	}
	var errs []error
	for _, f := range fields {
		// Optional parameters bind through a pointer that stays nil when absent.
		var v *string
		if err := runtime.BindQueryParameter("form", true, false, f.name, q, &v); err != nil {
			errs = append(errs, err)
			continue
		}
		if v != nil {
			*f.dest = *v
		}
	}
	return p, errors.Join(errs...)
}
