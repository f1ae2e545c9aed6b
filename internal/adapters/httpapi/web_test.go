package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Overland-East-Bay/workshop-checkin/internal/app/form"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/result"
)

func postForm(t *testing.T, h http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestFormPage_Renders(t *testing.T) {
	t.Parallel()

	s, _ := newTestAPI(t)
	rec := httptest.NewRecorder()
	NewRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="identifier"`) {
		t.Fatalf("form input missing: %s", rec.Body.String())
	}
}

func TestSubmitForm_RedirectsToResult(t *testing.T) {
	t.Parallel()

	s, _ := newTestAPI(t)
	rec := postForm(t, NewRouter(s), url.Values{"identifier": {"5001-2345"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status=%d want=303 body=%s", rec.Code, rec.Body.String())
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Path != form.ResultPath || loc.Query().Get(form.ParamTableNo) != "1" || loc.Query().Get(form.ParamName) != "satish" {
		t.Fatalf("location=%s", loc)
	}
}

func TestSubmitForm_UnknownIdentifierRedirectsToError(t *testing.T) {
	t.Parallel()

	s, _ := newTestAPI(t)
	rec := postForm(t, NewRouter(s), url.Values{"identifier": {"99999999"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status=%d want=303", rec.Code)
	}
	loc, _ := url.Parse(rec.Header().Get("Location"))
	if loc.Path != form.ErrorPath || !strings.HasPrefix(loc.Query().Get(form.ParamError), "SAP ID not found") {
		t.Fatalf("location=%s", loc)
	}
}

func TestSubmitForm_ValidationRendersAlert(t *testing.T) {
	t.Parallel()

	s, _ := newTestAPI(t)
	h := NewRouter(s)

	cases := map[string]string{
		"":    form.MessageMissingIdentifier,
		"12a": form.MessageInvalidIdentifier,
	}
	for in, want := range cases {
		rec := postForm(t, h, url.Values{"identifier": {in}})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%q status=%d want=400", in, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("%q: alert %q missing from %s", in, want, rec.Body.String())
		}
	}
}

func TestResultPage_Success(t *testing.T) {
	t.Parallel()

	s, _ := newTestAPI(t)
	q := url.Values{
		form.ParamTableNo: {"Team 3"},
		form.ParamName:    {"JOHN smith"},
		form.ParamMessage: {"Welcome"},
	}
	rec := httptest.NewRecorder()
	NewRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/result?"+q.Encode(), nil))

	body := rec.Body.String()
	for _, want := range []string{result.LabelTable, "Table 3", "John Smith", "Welcome", "animation-delay:300ms"} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in %s", want, body)
		}
	}
}

func TestResultPage_RoleStyle(t *testing.T) {
	t.Parallel()

	s, _ := newTestAPI(t)
	q := url.Values{form.ParamTableNo: {"Host - Main Stage"}, form.ParamName: {"kiran"}}
	rec := httptest.NewRecorder()
	NewRouter(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/result?"+q.Encode(), nil))

	body := rec.Body.String()
	if !strings.Contains(body, result.LabelRole) || !strings.Contains(body, result.HostMarker) || !strings.Contains(body, `class="assignment role"`) {
		t.Fatalf("role view missing: %s", body)
	}
}

func TestResultPage_ErrorAndInvalid(t *testing.T) {
	t.Parallel()

	s, _ := newTestAPI(t)
	h := NewRouter(s)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/error?error="+url.QueryEscape("<b>nope</b>"), nil))
	if body := rec.Body.String(); !strings.Contains(body, "&lt;b&gt;nope&lt;/b&gt;") {
		t.Fatalf("error message not escaped: %s", body)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/result?tableNo=1", nil))
	if !strings.Contains(rec.Body.String(), result.MessageInvalidData) {
		t.Fatalf("expected invalid-data message: %s", rec.Body.String())
	}
}
