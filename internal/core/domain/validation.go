package domain

import (
	"strings"

	"github.com/samber/lo"
	"go.trai.ch/zerr"
)

// HeadResolver returns the revision checked out in the working directory.
type HeadResolver func() (string, error)

// Validated is the outcome of a successful Validate call.
type Validated struct {
	Inputs Inputs
	State  BuildState
	// CommitFromHead is set when the commit hash was taken from the working directory.
	CommitFromHead bool
}

// ValidationError carries every validation failure found in one pass.
type ValidationError struct {
	Errors []error
}

// Error implements error.
func (e *ValidationError) Error() string {
	msgs := lo.Map(e.Errors, func(err error, _ int) string { return err.Error() })
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

type requiredField struct {
	value string
	err   error
}

// Validate checks in and ci, collecting all failures instead of stopping at the first.
// head is only consulted when no commit hash was supplied; it may be nil.
func Validate(in Inputs, ci CIContext, head HeadResolver) (Validated, error) {
	var errs []error
	out := Validated{Inputs: in}

	if in.Domain == "" {
		errs = append(errs, ErrMissingDomain)
	}

	errs = append(errs, validateCredentials(in)...)

	if in.CommitHash == "" {
		hash, err := resolveHead(head)
		if err != nil {
			errs = append(errs, err)
		} else {
			out.Inputs.CommitHash = hash
			out.CommitFromHead = true
		}
	}

	required := []requiredField{
		{in.AppTitle, ErrMissingAppTitle},
		{in.BuildNumber, ErrMissingBuildNumber},
		{in.BuildURL, ErrMissingBuildURL},
		{in.TriggeredWorkflowID, ErrMissingWorkflowID},
	}
	missing := lo.Filter(required, func(f requiredField, _ int) bool { return f.value == "" })
	errs = append(errs, lo.Map(missing, func(f requiredField, _ int) error { return f.err })...)

	state, err := ResolveBuildState(in.PresetStatus, ci.BuildStatus)
	if err != nil {
		errs = append(errs, err)
	}
	out.State = state

	if len(errs) > 0 {
		return Validated{}, &ValidationError{Errors: errs}
	}
	return out, nil
}

func validateCredentials(in Inputs) []error {
	switch {
	case in.HasClientCert():
		return nil
	case in.HasPartialClientCert():
		return []error{ErrPartialClientCert}
	}

	var errs []error
	if in.Username == "" {
		errs = append(errs, ErrMissingUsername)
	}
	if in.Password == "" {
		errs = append(errs, ErrMissingPassword)
	}
	return errs
}

func resolveHead(head HeadResolver) (string, error) {
	if head == nil {
		return "", ErrMissingCommitHash
	}
	hash, err := head()
	if err != nil {
		return "", zerr.With(ErrMissingCommitHash, "cause", err.Error())
	}
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return "", ErrMissingCommitHash
	}
	return hash, nil
}
