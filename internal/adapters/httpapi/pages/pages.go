// Package pages renders the check-in form and result pages.
package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Overland-East-Bay/workshop-checkin/internal/app/result"
)

const title = "Digital Workshop 2026"

const style = `body{font-family:system-ui,sans-serif;background:#f4f6fb;margin:0;padding:2rem;color:#1d2433}
main{max-width:28rem;margin:0 auto;background:#fff;border-radius:12px;padding:2rem;box-shadow:0 4px 16px rgba(0,0,0,.08)}
h1{font-size:1.4rem;margin-top:0}
input{width:100%;font-size:1.2rem;padding:.6rem;box-sizing:border-box}
button{margin-top:1rem;width:100%;font-size:1.1rem;padding:.7rem;border:0;border-radius:8px;background:#2b59c3;color:#fff}
.alert{background:#fdecea;color:#8a1c12;padding:.7rem;border-radius:8px;margin-bottom:1rem}
.reveal{opacity:0;animation:reveal .4s ease forwards}
@keyframes reveal{to{opacity:1}}
.assignment{font-size:2.5rem;font-weight:700;margin:.5rem 0}
.assignment.role{color:#7a3fc4}
.error{color:#8a1c12}
.muted{color:#6b7280}`

// revealStyle delays the terminal state by result.RevealDelay.
func revealStyle() string {
	return ".reveal{animation-delay:" + strconv.FormatInt(result.RevealDelay.Milliseconds(), 10) + "ms}"
}

// FormView is the data for the registration form page.
type FormView struct {
	Value string
	Alert string
}

// Form renders the identifier entry form. It posts back to "/".
func Form(v FormView) templ.Component {
	return layout("Workshop Registration", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if v.Alert != "" {
			if err := element(w, `<div class="alert" role="alert">`, v.Alert, `</div>`); err != nil {
				return err
			}
		}
		return element(w,
			`<form method="post" action="/"><label for="identifier">SAP ID</label>`+
				`<input id="identifier" name="identifier" inputmode="numeric" pattern="[0-9]*" autocomplete="off" autofocus value="`,
			v.Value,
			`"><button type="submit">Register</button></form>`,
		)
	}))
}

// Result renders a resolved result view.
func Result(v result.View) templ.Component {
	return layout("Registration Result", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="reveal">`); err != nil {
			return err
		}
		if err := resultBody(v).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<p><a href="/">Back</a></p></section>`)
		return err
	}))
}

func resultBody(v result.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch v.State {
		case result.StateSuccess:
			class := templ.Classes("assignment", templ.KV("role", v.RoleStyle)).String()
			parts := [][3]string{
				{`<p class="muted">`, v.Label, `</p>`},
				{`<p class="` + templ.EscapeString(class) + `">`, v.Value, `</p>`},
				{`<p><strong>`, v.Name, `</strong></p>`},
			}
			if v.Department != "" {
				parts = append(parts, [3]string{`<p class="muted">`, v.Department, `</p>`})
			}
			if v.Message != "" {
				parts = append(parts, [3]string{`<p>`, v.Message, `</p>`})
			}
			for _, p := range parts {
				if err := element(w, p[0], p[1], p[2]); err != nil {
					return err
				}
			}
			return nil
		case result.StateError:
			return element(w, `<p class="error">`, v.ErrorMessage, `</p>`)
		default:
			_, err := io.WriteString(w, `<p class="muted">Loading...</p>`)
			return err
		}
	})
}

// layout wraps body in the page shell.
func layout(heading string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<style>` + style + "\n" + revealStyle() + `</style></head>` +
			`<body><main><h1>` + templ.EscapeString(heading) + `</h1>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// element writes open, the escaped text, then close.
func element(w io.Writer, open, text, close string) error {
	_, err := io.WriteString(w, open+templ.EscapeString(text)+close)
	return err
}
