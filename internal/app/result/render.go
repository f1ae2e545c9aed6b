// Package result turns navigation parameters into the result page view.
package result

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"
)

// State is the visual state of the result page.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// RevealDelay is the cosmetic pause before a terminal state fades in.
const RevealDelay = 300 * time.Millisecond

const (
	LabelTable = "Your Assigned Table"
	LabelRole  = "Your Role"

	HostMarker        = "🎯 Host"
	CoordinatorMarker = "🎓 Coordinator"

	MessageInvalidData = "Invalid registration data. Please try again."
)

// ErrAlreadyResolved is returned when a Renderer is resolved a second time.
var ErrAlreadyResolved = errors.New("result: navigation already consumed")

// Params is the decoded navigation contract.
type Params struct {
	TableNo    string
	Name       string
	Department string
	Message    string
	Role       string // accepted, not rendered
	Error      string
}

// View is everything the page needs to render one state.
type View struct {
	State State

	Label     string
	Value     string
	RoleStyle bool

	Name       string
	Department string
	Message    string

	ErrorMessage string
}

var teamPrefix = regexp.MustCompile(`(?i)^Team\s+`)

// Assignment maps an assignment to its label, display value and style.
func Assignment(raw string) (label, value string, role bool) {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "host"):
		return LabelRole, HostMarker, true
	case strings.Contains(lower, "coordinator"):
		return LabelRole, CoordinatorMarker, true
	default:
		return LabelTable, teamPrefix.ReplaceAllString(raw, "Table "), false
	}
}

// CapitalizeWords upper-cases the first letter of each space-separated word
// and lower-cases the rest.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	}
	return strings.Join(words, " ")
}

// Resolve computes the terminal view for p.
func Resolve(p Params) View {
	if p.Error != "" {
		return View{State: StateError, ErrorMessage: p.Error}
	}
	if p.TableNo == "" || p.Name == "" {
		return View{State: StateError, ErrorMessage: MessageInvalidData}
	}
	label, value, role := Assignment(p.TableNo)
	return View{
		State:      StateSuccess,
		Label:      label,
		Value:      value,
		RoleStyle:  role,
		Name:       CapitalizeWords(p.Name),
		Department: p.Department,
		Message:    p.Message,
	}
}

// Renderer is the page state machine. It starts in Loading and moves to
// Success or Error exactly once.
type Renderer struct {
	mu   sync.Mutex
	view View
}

func NewRenderer() *Renderer {
	return &Renderer{view: View{State: StateLoading}}
}

// View returns the current view.
func (r *Renderer) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}

// Resolve consumes the navigation parameters and enters a terminal state.
func (r *Renderer) Resolve(p Params) (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.view.State != StateLoading {
		return r.view, ErrAlreadyResolved
	}
	r.view = Resolve(p)
	return r.view, nil
}
