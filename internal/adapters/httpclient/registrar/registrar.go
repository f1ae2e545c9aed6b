// Package registrar is an HTTP implementation of form.Registrar that talks to
// a running check-in server.
package registrar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Overland-East-Bay/workshop-checkin/internal/app/form"
)

// DefaultTimeout bounds a single registration call.
const DefaultTimeout = 10 * time.Second

type Registrar struct {
	baseURL string
	client  *http.Client
}

// New returns a Registrar posting to baseURL + "/api/register". A nil client
// gets one with DefaultTimeout.
func New(baseURL string, client *http.Client) *Registrar {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Registrar{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type registerBody struct {
	Identifier string `json:"identifier"`
}

type replyBody struct {
	Success    bool   `json:"success"`
	Assignment string `json:"assignment"`
	TableNo    string `json:"tableNo"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Message    string `json:"message"`
}

// Register posts identifier. Server replies of any status become a Reply;
// only failures to obtain a decodable reply are errors, wrapping form.ErrTransport.
func (r *Registrar) Register(ctx context.Context, identifier string) (form.Reply, error) {
	b, err := json.Marshal(registerBody{Identifier: identifier})
	if err != nil {
		return form.Reply{}, fmt.Errorf("%w: encode request: %v", form.ErrTransport, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/register", bytes.NewReader(b))
	if err != nil {
		return form.Reply{}, fmt.Errorf("%w: build request: %v", form.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return form.Reply{}, fmt.Errorf("%w: %v", form.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return form.Reply{}, fmt.Errorf("%w: read response: %v", form.ErrTransport, err)
	}
	var body replyBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return form.Reply{}, fmt.Errorf("%w: decode %d response: %v", form.ErrTransport, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !body.Success {
		return form.Reply{OK: false, Message: body.Message}, nil
	}
	assignment := body.Assignment
	if assignment == "" {
		assignment = body.TableNo
	}
	return form.Reply{
		OK:         true,
		Assignment: assignment,
		Name:       body.Name,
		Department: body.Department,
		Message:    body.Message,
	}, nil
}
