// Package app implements the application layer for bbstatus.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/bbstatus/internal/adapters/detector"    //nolint:depguard // Output selection happens per run
	"go.trai.ch/bbstatus/internal/adapters/diagnostics" //nolint:depguard // Output selection happens per run
	"go.trai.ch/bbstatus/internal/adapters/telemetry"   //nolint:depguard // Tracing is enabled per run
	"go.trai.ch/bbstatus/internal/core/domain"
	"go.trai.ch/bbstatus/internal/core/ports"
	"go.trai.ch/zerr"
)

// tracerName is the instrumentation scope of the phase spans.
const tracerName = "bbstatus"

// Log formats accepted by RunOptions.LogFormat.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// App represents the main application logic.
type App struct {
	loader      ports.InputLoader
	resolver    ports.RevisionResolver
	store       ports.CredentialStore
	sender      ports.StatusSender
	logger      ports.Logger
	stdout      io.Writer
	diagnostics ports.Diagnostics
	tracer      ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.InputLoader,
	resolver ports.RevisionResolver,
	store ports.CredentialStore,
	sender ports.StatusSender,
	log ports.Logger,
) *App {
	return &App{
		loader:   loader,
		resolver: resolver,
		store:    store,
		sender:   sender,
		logger:   log,
		stdout:   os.Stdout,
	}
}

// WithStdout sets the writer for diagnostics and the raw HTTP response.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithDiagnostics replaces the renderer that is otherwise chosen from the environment.
func (a *App) WithDiagnostics(d ports.Diagnostics) *App {
	a.diagnostics = d
	return a
}

// WithTracer replaces the tracer that is otherwise chosen from RunOptions.Verbose.
func (a *App) WithTracer(t ports.Tracer) *App {
	a.tracer = t
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigFile string
	EnvFile    string
	RepoDir    string
	DryRun     bool
	Verbose    bool
	LogFormat  string
	Color      string
}

// Run reports the build status once. A manual trigger returns nil without doing anything.
// Validation failures are logged individually and reported as domain.ErrValidationFailed.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	a.configureLogger(opts.LogFormat)

	tracer := a.tracerFor(opts.Verbose)
	defer func() { _ = tracer.Shutdown(context.WithoutCancel(ctx)) }()

	ctx, root := tracer.Start(ctx, "report")
	defer root.End()

	// 1. Environment
	if opts.EnvFile != "" {
		if err := a.loader.LoadEnvFile(opts.EnvFile); err != nil {
			return err
		}
	}

	ci := a.loader.LoadCI()
	if ci.IsManualTrigger() {
		a.logger.Info("build was triggered manually, skipping status report")
		return nil
	}

	// 2. Validation
	validated, err := a.validate(ctx, tracer, ci, opts)
	if err != nil {
		root.RecordError(err)
		return err
	}

	// 3. Credentials
	guard := a.store.NewGuard()
	defer func() {
		if err := guard.Release(); err != nil {
			a.logger.Warn(err.Error())
		}
	}()

	auth, err := a.resolveAuth(ctx, tracer, guard, validated.Inputs)
	if err != nil {
		root.RecordError(err)
		return err
	}

	// 4. Diagnostics
	req := domain.NewBuildStatusRequest(validated.Inputs, ci, validated.State)
	root.SetAttribute("state", req.State)

	diag := a.diagnosticsFor(opts.Color)
	diag.Inputs(validated.Inputs, ci, auth.Kind())
	diag.Request(req)

	if opts.DryRun {
		body, err := json.Marshal(req)
		if err != nil {
			return zerr.Wrap(err, domain.ErrRequestBuild.Error())
		}
		diag.DryRun(body)
		return nil
	}

	// 5. Transfer
	sendCtx, span := tracer.Start(ctx, "send")
	defer span.End()

	if err := a.sender.Send(sendCtx, req, auth, a.stdout); err != nil {
		span.RecordError(err)
		root.RecordError(err)
		return err
	}
	return nil
}

func (a *App) validate(
	ctx context.Context,
	tracer ports.Tracer,
	ci domain.CIContext,
	opts RunOptions,
) (domain.Validated, error) {
	_, span := tracer.Start(ctx, "validate")
	defer span.End()

	in, err := a.loader.Load(opts.ConfigFile)
	if err != nil {
		span.RecordError(err)
		return domain.Validated{}, err
	}

	repoDir := opts.RepoDir
	if repoDir == "" {
		repoDir = "."
	}

	validated, err := domain.Validate(in, ci, func() (string, error) {
		return a.resolver.Head(repoDir)
	})
	if err != nil {
		span.RecordError(err)
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for _, e := range verr.Errors {
				a.logger.Error(e)
			}
			return domain.Validated{}, domain.ErrValidationFailed
		}
		return domain.Validated{}, err
	}

	if validated.CommitFromHead {
		a.logger.Warn(fmt.Sprintf("git_clone_commit_hash is not set, using HEAD revision %s", validated.Inputs.CommitHash))
	}
	return validated, nil
}

func (a *App) resolveAuth(
	ctx context.Context,
	tracer ports.Tracer,
	guard ports.CredentialGuard,
	in domain.Inputs,
) (domain.AuthMethod, error) {
	_, span := tracer.Start(ctx, "resolve-auth")
	defer span.End()

	if !in.HasClientCert() {
		span.SetAttribute("auth", domain.AuthBasic.String())
		return domain.BasicAuth{Username: in.Username, Password: in.Password}, nil
	}
	span.SetAttribute("auth", domain.AuthCert.String())

	certPath, err := guard.Materialize(in.ClientCert)
	if err != nil {
		span.RecordError(err)
		a.logger.Error(zerr.With(err, "input", "client_cert"))
		return nil, domain.ErrValidationFailed
	}

	keyPath, err := guard.Materialize(in.ClientKey)
	if err != nil {
		span.RecordError(err)
		a.logger.Error(zerr.With(err, "input", "client_key"))
		return nil, domain.ErrValidationFailed
	}

	return domain.CertAuth{CertPath: certPath, KeyPath: keyPath}, nil
}

// jsonSwitcher is implemented by loggers that can emit JSON lines.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func (a *App) configureLogger(format string) {
	if format != LogFormatJSON {
		return
	}
	if sw, ok := a.logger.(jsonSwitcher); ok {
		sw.SetJSON(true)
	}
}

func (a *App) tracerFor(verbose bool) ports.Tracer {
	switch {
	case a.tracer != nil:
		return a.tracer
	case verbose:
		return telemetry.NewOTelTracer(tracerName, telemetry.NewBridge(a.logger))
	default:
		return telemetry.NewNoOpTracer()
	}
}

func (a *App) diagnosticsFor(colorFlag string) ports.Diagnostics {
	if a.diagnostics != nil {
		return a.diagnostics
	}
	mode := detector.ResolveMode(detector.DetectEnvironment(a.stdout), colorFlag)
	return diagnostics.NewRenderer(a.stdout, detector.Profile(mode))
}
