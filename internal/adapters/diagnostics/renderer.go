// Package diagnostics prints the run summary a CI log reader needs to debug a status report.
package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/bbstatus/internal/core/domain"
	"go.trai.ch/bbstatus/internal/ui/output"
	"go.trai.ch/bbstatus/internal/ui/style"
)

// labelWidth fits the longest label, BITRISE_BUILD_NUMBER.
const labelWidth = 22

// Renderer implements ports.Diagnostics. Credentials are never written.
type Renderer struct {
	out    io.Writer
	output *termenv.Output
}

// NewRenderer creates a Renderer writing to w with the profile chosen by profileFn.
// A nil writer selects os.Stdout.
func NewRenderer(w io.Writer, profileFn func() termenv.Profile) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	if profileFn == nil {
		profileFn = output.ColorProfileANSI
	}
	return &Renderer{
		out:    w,
		output: output.NewWithProfile(w, profileFn),
	}
}

// Inputs prints the resolved inputs and CI context.
func (r *Renderer) Inputs(in domain.Inputs, ci domain.CIContext, auth domain.AuthKind) {
	var b strings.Builder

	b.WriteString(r.accent(style.Dot+" Bitbucket Server build status") + "\n")
	r.field(&b, "domain", in.Domain)
	r.field(&b, "auth", r.authSummary(in, auth))
	r.field(&b, "commit", in.CommitHash)
	r.field(&b, "app_title", in.AppTitle)
	r.field(&b, "build_number", in.BuildNumber)
	r.field(&b, "build_url", in.BuildURL)
	r.field(&b, "triggered_workflow_id", in.TriggeredWorkflowID)
	r.field(&b, "preset_status", in.PresetStatus)
	r.field(&b, "BITRISE_BUILD_STATUS", ci.BuildStatus)
	r.field(&b, "BITRISE_BUILD_SLUG", ci.BuildSlug)
	r.field(&b, "BITRISE_BUILD_NUMBER", ci.BuildNumber)

	_, _ = io.WriteString(r.out, b.String())
}

// Request prints the endpoint and the state being reported.
func (r *Renderer) Request(req domain.BuildStatusRequest) {
	state := req.State.String()
	colored := r.output.String(state).Foreground(r.output.Color(string(style.StateColor(state)))).Bold().String()

	_, _ = fmt.Fprintf(r.out, "%s POST %s\n", r.accent(style.Arrow), req.Endpoint())
	_, _ = fmt.Fprintf(r.out, "  %s %s\n", r.faint(pad("state")), colored)
	_, _ = fmt.Fprintf(r.out, "  %s %s\n", r.faint(pad("key")), req.Key)
	_, _ = fmt.Fprintf(r.out, "  %s %s\n", r.faint(pad("name")), req.Name)
}

// DryRun prints the body that would have been posted.
func (r *Renderer) DryRun(body []byte) {
	_, _ = fmt.Fprintf(r.out, "%s dry run, request not sent\n", r.output.String(style.Warning).Foreground(r.output.Color(string(style.Yellow))).String())
	_, _ = r.out.Write(body)
	_, _ = io.WriteString(r.out, "\n")
}

func (r *Renderer) authSummary(in domain.Inputs, auth domain.AuthKind) string {
	if auth == domain.AuthBasic {
		return fmt.Sprintf("%s (username %s)", auth, in.Username)
	}
	return auth.String()
}

func (r *Renderer) field(b *strings.Builder, label, value string) {
	if value == "" {
		value = r.faint("(unset)")
	}
	fmt.Fprintf(b, "  %s %s\n", r.faint(pad(label)), value)
}

func (r *Renderer) accent(s string) string {
	return r.output.String(s).Foreground(r.output.Color(string(style.Accent))).String()
}

func (r *Renderer) faint(s string) string {
	return r.output.String(s).Foreground(r.output.Color(string(style.Slate))).String()
}

func pad(label string) string {
	return fmt.Sprintf("%-*s", labelWidth, label)
}
