package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Overland-East-Bay/workshop-checkin/internal/adapters/httpclient/registrar"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/form"
	"github.com/Overland-East-Bay/workshop-checkin/internal/app/result"
	platformclock "github.com/Overland-East-Bay/workshop-checkin/internal/platform/clock"
)

// newRootCmd builds the CLI. Flags are bound to v so CHECKIN_SERVER and
// CHECKIN_TIMEOUT can stand in for --server and --timeout.
func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "checkin",
		Short:         "Register workshop attendees against a check-in server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("server", "http://localhost:3000", "check-in server base URL")
	root.PersistentFlags().Duration("timeout", registrar.DefaultTimeout, "request timeout")
	_ = v.BindPFlag("server", root.PersistentFlags().Lookup("server"))
	_ = v.BindPFlag("timeout", root.PersistentFlags().Lookup("timeout"))

	v.SetEnvPrefix("checkin")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newSubmitCmd(v))
	return root
}

func newSubmitCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <sap-id>",
		Short: "Submit an SAP ID and print the assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: v.GetDuration("timeout")}
			reg := registrar.New(v.GetString("server"), client)
			return submit(cmd.Context(), cmd.OutOrStdout(), reg, args[0])
		},
	}
}

// errNotRegistered signals a non-success outcome so the process exits non-zero.
var errNotRegistered = errors.New("registration did not succeed")

func submit(ctx context.Context, out io.Writer, reg form.Registrar, raw string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	c := form.NewController(reg, platformclock.NewSystemClock())
	c.Logf = func(string, ...any) {}
	c.Input(raw)

	nav, err := c.Submit(ctx)
	if err != nil {
		return err
	}

	r := result.NewRenderer()
	view, _ := r.Resolve(result.Params{
		TableNo:    nav.Params.Get(form.ParamTableNo),
		Name:       nav.Params.Get(form.ParamName),
		Department: nav.Params.Get(form.ParamDepartment),
		Message:    nav.Params.Get(form.ParamMessage),
		Error:      nav.Params.Get(form.ParamError),
	})
	printView(out, view)
	if view.State != result.StateSuccess {
		return errNotRegistered
	}
	return nil
}

func printView(out io.Writer, view result.View) {
	if view.State == result.StateError {
		fmt.Fprintf(out, "error: %s\n", view.ErrorMessage)
		return
	}
	fmt.Fprintf(out, "%s: %s\n", view.Label, view.Value)
	fmt.Fprintf(out, "Name: %s\n", view.Name)
	if view.Department != "" {
		fmt.Fprintf(out, "Department: %s\n", view.Department)
	}
	if view.Message != "" {
		fmt.Fprintln(out, view.Message)
	}
}
