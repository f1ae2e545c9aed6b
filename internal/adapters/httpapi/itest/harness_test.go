package itest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Overland-East-Bay/workshop-checkin/internal/adapters/httpapi"
	memattendeesource "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/memory/attendeesource"
	memclock "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/memory/clock"
	pgattendeesource "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/postgres/attendeesource"
	postgres_testutil "github.com/Overland-East-Bay/workshop-checkin/internal/adapters/postgres/testutil"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/directory"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/registration"
	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	attendeesourceport "github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

type backend string

const (
	backendMemory   backend = "memory"
	backendPostgres backend = "postgres"
)

func backendsFromEnv(t *testing.T) []backend {
	t.Helper()
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ITEST_BACKEND"))) {
	case "", "memory":
		return []backend{backendMemory}
	case "postgres":
		return []backend{backendPostgres}
	case "all":
		return []backend{backendMemory, backendPostgres}
	default:
		t.Fatalf("unknown ITEST_BACKEND value (expected memory|postgres|all)")
		return nil
	}
}

type testServer struct {
	baseURL string
	client  *http.Client

	// edit replaces the backing directory data, as an operator editing the spreadsheet would.
	edit func(t *testing.T, rows []domain.Attendee)
}

func newTestServer(t *testing.T, b backend) *testServer {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	quiet := func(string, ...any) {}

	var src attendeesourceport.Source
	switch b {
	case backendPostgres:
		pool := postgres_testutil.OpenMigratedPool(t)
		src = pgattendeesource.NewSource(pool)
	case backendMemory:
		src = memattendeesource.NewMissingSource()
	default:
		t.Fatalf("unknown backend: %s", b)
	}
	seeder, ok := src.(attendeesourceport.Seeder)
	if !ok {
		t.Fatalf("%s source cannot seed", b)
	}
	if b == backendPostgres {
		// The migrated table exists but is empty.
		if err := seeder.Seed(context.Background(), directory.Fixture()); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	dir := directory.New(src, clk)
	dir.Logf = quiet
	dir.SeedFixture = true
	dir.Load(context.Background())

	svc := registration.NewService(dir)
	svc.Logf = quiet
	api := httpapi.NewServer(svc, clk)
	api.Logf = quiet

	srv := httptest.NewServer(httpapi.NewRouterWithOptions(api, httpapi.RouterOptions{}))
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL: srv.URL,
		client:  srv.Client(),
		edit: func(t *testing.T, rows []domain.Attendee) {
			t.Helper()
			if err := seeder.Seed(context.Background(), rows); err != nil {
				t.Fatalf("seed: %v", err)
			}
		},
	}
}

func (s *testServer) url(path string) string {
	if strings.HasPrefix(path, "/") {
		return s.baseURL + path
	}
	return s.baseURL + "/" + path
}

func (s *testServer) doJSON(t *testing.T, method string, path string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.url(path), r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

func mustUnmarshal[T any](t *testing.T, b []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, string(b))
	}
	return out
}

type registerReply struct {
	Success    bool   `json:"success"`
	Assignment string `json:"assignment"`
	TableNo    string `json:"tableNo"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Message    string `json:"message"`
}

func requireStatus(t *testing.T, status int, body []byte, want int) {
	t.Helper()
	if status != want {
		t.Fatalf("status=%d want=%d body=%s", status, want, string(body))
	}
}

func (s *testServer) get(t *testing.T, path string) (int, []byte) {
	t.Helper()
	resp, err := s.client.Get(s.url(path))
	if err != nil {
		t.Fatalf("get %s: %v", path, err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}
