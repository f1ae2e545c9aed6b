// Package form implements the registration form controller: progressive input
// sanitizing, pre-submission validation with an inline alert, a single-flight
// submit, and the mapping of every outcome onto a result-page navigation.
package form

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	clockport "github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/clock"
)

// MinIdentifierDigits is the shortest identifier accepted before submission.
const MinIdentifierDigits = 4

// AlertTTL is how long an inline validation alert stays visible.
const AlertTTL = 5 * time.Second

const (
	MessageMissingIdentifier = "Please enter your SAP ID"
	MessageInvalidIdentifier = "Please enter a valid SAP ID"
	MessageRejectedFallback  = "Registration failed. Please try again."
	MessageNetworkError      = "Network error. Please check your connection and try again."
)

// ErrSubmissionInProgress is returned by Submit while the trigger is disabled.
var ErrSubmissionInProgress = errors.New("form: submission already in progress")

// ErrTransport marks registrar failures where no server reply was obtained.
var ErrTransport = errors.New("form: transport failure")

// ValidationError is a pre-submission failure shown inline; no request was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Reply is the registration endpoint's answer as seen by the form.
type Reply struct {
	OK         bool
	Assignment string
	Name       string
	Department string
	Message    string
}

// Registrar submits an identifier to the registration endpoint. A non-nil
// error means no reply was received (network failure, unreachable server).
type Registrar interface {
	Register(ctx context.Context, identifier string) (Reply, error)
}

// Alert is an inline validation message with its dismissal deadline.
type Alert struct {
	Message   string
	ExpiresAt time.Time
}

// Controller holds the state of one form instance.
type Controller struct {
	registrar Registrar
	clk       clockport.Clock

	mu    sync.Mutex
	value string
	alert *Alert

	submitting atomic.Bool

	// Logf receives submission diagnostics. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

func NewController(r Registrar, clk clockport.Clock) *Controller {
	return &Controller{
		registrar: r,
		clk:       clk,
		Logf:      log.Printf,
	}
}

// SanitizeInput strips every non-digit character.
func SanitizeInput(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateIdentifier applies the pre-submission rules to a sanitized value.
func ValidateIdentifier(value string) error {
	digits := SanitizeInput(value)
	switch {
	case digits == "":
		return &ValidationError{Message: MessageMissingIdentifier}
	case len(digits) < MinIdentifierDigits:
		return &ValidationError{Message: MessageInvalidIdentifier}
	default:
		return nil
	}
}

// Input records a keystroke-level edit and returns the sanitized field value.
func (c *Controller) Input(raw string) string {
	v := SanitizeInput(raw)
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
	return v
}

// Value returns the current sanitized field value.
func (c *Controller) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Validate checks the current value. A failure shows the inline alert; a
// success dismisses it.
func (c *Controller) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := ValidateIdentifier(c.value); err != nil {
		c.alert = &Alert{Message: err.Error(), ExpiresAt: c.clk.Now().Add(AlertTTL)}
		return err
	}
	c.alert = nil
	return nil
}

// Alert returns the inline alert if one is visible.
func (c *Controller) Alert() (Alert, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.alert == nil {
		return Alert{}, false
	}
	if !c.clk.Now().Before(c.alert.ExpiresAt) {
		c.alert = nil
		return Alert{}, false
	}
	return *c.alert, true
}

// DismissAlert hides the inline alert.
func (c *Controller) DismissAlert() {
	c.mu.Lock()
	c.alert = nil
	c.mu.Unlock()
}

// Submitting reports whether the submit trigger is disabled.
func (c *Controller) Submitting() bool {
	return c.submitting.Load()
}

// Submit validates the field and, if valid, performs exactly one registration
// call. Every server or transport outcome becomes a Navigation; only local
// validation failures and ErrSubmissionInProgress are returned as errors.
func (c *Controller) Submit(ctx context.Context) (Navigation, error) {
	c.DismissAlert()
	if err := c.Validate(); err != nil {
		return Navigation{}, err
	}
	if !c.submitting.CompareAndSwap(false, true) {
		return Navigation{}, ErrSubmissionInProgress
	}
	defer c.submitting.Store(false)

	id := c.Value()
	reply, err := c.registrar.Register(ctx, id)
	if err != nil {
		c.Logf("form: registration request for %s failed: %v", id, err)
		return ErrorNavigation(MessageNetworkError), nil
	}
	if !reply.OK {
		msg := reply.Message
		if msg == "" {
			msg = MessageRejectedFallback
		}
		return ErrorNavigation(msg), nil
	}
	return SuccessNavigation(reply), nil
}
