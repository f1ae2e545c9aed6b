package registrar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Overland-East-Bay/workshop-checkin/internal/app/form"
)

func serve(t *testing.T, h http.HandlerFunc) *Registrar {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func TestRegister_Success(t *testing.T) {
	r := serve(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/register", req.URL.Path)
		var in map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		assert.Equal(t, "50012345", in["identifier"])
		_, _ = w.Write([]byte(`{"success":true,"assignment":"Team 4","tableNo":"Team 4","name":"satish","department":"Technology","message":"hi"}`))
	})

	reply, err := r.Register(context.Background(), "50012345")
	require.NoError(t, err)
	assert.Equal(t, form.Reply{OK: true, Assignment: "Team 4", Name: "satish", Department: "Technology", Message: "hi"}, reply)
}

func TestRegister_LegacyTableNoOnly(t *testing.T) {
	r := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"tableNo":"3","name":"a"}`))
	})

	reply, err := r.Register(context.Background(), "1234")
	require.NoError(t, err)
	assert.Equal(t, "3", reply.Assignment)
}

func TestRegister_ServerRejectionIsReply(t *testing.T) {
	r := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"SAP ID not found."}`))
	})

	reply, err := r.Register(context.Background(), "99999999")
	require.NoError(t, err)
	assert.False(t, reply.OK)
	assert.Equal(t, "SAP ID not found.", reply.Message)
}

func TestRegister_UndecodableBodyIsTransportError(t *testing.T) {
	r := serve(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway</html>"))
	})

	_, err := r.Register(context.Background(), "1234")
	require.ErrorIs(t, err, form.ErrTransport)
}

func TestRegister_UnreachableIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, nil).Register(context.Background(), "1234")
	require.ErrorIs(t, err, form.ErrTransport)
}
