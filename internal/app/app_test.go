package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bbstatus/internal/app"
	"go.trai.ch/bbstatus/internal/core/domain"
	"go.trai.ch/bbstatus/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader   *mocks.MockInputLoader
	resolver *mocks.MockRevisionResolver
	store    *mocks.MockCredentialStore
	guard    *mocks.MockCredentialGuard
	sender   *mocks.MockStatusSender
	logger   *mocks.MockLogger
	diag     *mocks.MockDiagnostics
	stdout   *bytes.Buffer
	app      *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockInputLoader(ctrl),
		resolver: mocks.NewMockRevisionResolver(ctrl),
		store:    mocks.NewMockCredentialStore(ctrl),
		guard:    mocks.NewMockCredentialGuard(ctrl),
		sender:   mocks.NewMockStatusSender(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		diag:     mocks.NewMockDiagnostics(ctrl),
		stdout:   new(bytes.Buffer),
	}
	f.app = app.New(f.loader, f.resolver, f.store, f.sender, f.logger).
		WithStdout(f.stdout).
		WithDiagnostics(f.diag)
	return f
}

func validInputs() domain.Inputs {
	return domain.Inputs{
		Domain:              "bitbucket.example.com",
		Username:            "ci-bot",
		Password:            "s3cret",
		CommitHash:          "0123abcd",
		AppTitle:            "MyApp",
		BuildNumber:         "42",
		BuildURL:            "https://app.bitrise.io/build/abc123",
		TriggeredWorkflowID: "deploy",
		PresetStatus:        "AUTO",
	}
}

func validCI() domain.CIContext {
	return domain.CIContext{BuildStatus: "0", BuildSlug: "abc123", BuildNumber: "42"}
}

func TestApp_Run_ManualTriggerSkips(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().LoadCI().Return(domain.CIContext{TriggerMethod: domain.TriggerManual})
	f.logger.EXPECT().Info("build was triggered manually, skipping status report")

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
}

func TestApp_Run_BasicAuth(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().LoadCI().Return(validCI())
	f.loader.EXPECT().Load("inputs.yml").Return(validInputs(), nil)
	f.store.EXPECT().NewGuard().Return(f.guard)
	f.guard.EXPECT().Release().Return(nil)

	wantReq := domain.NewBuildStatusRequest(validInputs(), validCI(), domain.StateSuccessful)
	gomock.InOrder(
		f.diag.EXPECT().Inputs(validInputs(), validCI(), domain.AuthBasic),
		f.diag.EXPECT().Request(wantReq),
		f.sender.EXPECT().
			Send(gomock.Any(), wantReq, domain.BasicAuth{Username: "ci-bot", Password: "s3cret"}, f.stdout).
			DoAndReturn(func(_ context.Context, _ domain.BuildStatusRequest, _ domain.AuthMethod, out io.Writer) error {
				_, _ = io.WriteString(out, "HTTP/1.1 204 No Content\r\n\r\n")
				return nil
			}),
	)

	err := f.app.Run(context.Background(), app.RunOptions{ConfigFile: "inputs.yml"})
	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "204 No Content")
}

func TestApp_Run_LoadsEnvFileFirst(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.loader.EXPECT().LoadEnvFile(".env").Return(nil),
		f.loader.EXPECT().LoadCI().Return(domain.CIContext{TriggerMethod: domain.TriggerManual}),
	)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{EnvFile: ".env"}))
}

func TestApp_Run_EnvFileError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().LoadEnvFile(".env").Return(domain.ErrEnvFileLoadFailed)

	err := f.app.Run(context.Background(), app.RunOptions{EnvFile: ".env"})
	require.ErrorIs(t, err, domain.ErrEnvFileLoadFailed)
}

func TestApp_Run_ValidationLogsEveryFailure(t *testing.T) {
	f := newFixture(t)

	in := validInputs()
	in.Domain = ""
	in.AppTitle = ""

	f.loader.EXPECT().LoadCI().Return(domain.CIContext{BuildStatus: "7"})
	f.loader.EXPECT().Load("").Return(in, nil)

	var logged []error
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = append(logged, err) }).Times(3)

	err := f.app.Run(context.Background(), app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrValidationFailed)

	require.Len(t, logged, 3)
	assert.ErrorIs(t, logged[0], domain.ErrMissingDomain)
	assert.ErrorIs(t, logged[1], domain.ErrMissingAppTitle)
	assert.ErrorContains(t, logged[2], domain.ErrInvalidBuildStatus.Error())
}

func TestApp_Run_CommitFromHead(t *testing.T) {
	f := newFixture(t)

	in := validInputs()
	in.CommitHash = ""

	f.loader.EXPECT().LoadCI().Return(validCI())
	f.loader.EXPECT().Load("").Return(in, nil)
	f.resolver.EXPECT().Head("/work/repo").Return("deadbeef", nil)
	f.logger.EXPECT().Warn("git_clone_commit_hash is not set, using HEAD revision deadbeef")
	f.store.EXPECT().NewGuard().Return(f.guard)
	f.guard.EXPECT().Release().Return(nil)
	f.diag.EXPECT().Inputs(gomock.Any(), gomock.Any(), gomock.Any())
	f.diag.EXPECT().Request(gomock.Any()).Do(func(req domain.BuildStatusRequest) {
		assert.Equal(t, "deadbeef", req.CommitHash)
	})
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{RepoDir: "/work/repo"}))
}

func TestApp_Run_CertAuthReleasesTempFiles(t *testing.T) {
	in := validInputs()
	in.Username, in.Password = "", ""
	in.ClientCert = "-----BEGIN CERTIFICATE-----"
	in.ClientKey = "/etc/ssl/client.key"

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.loader.EXPECT().LoadCI().Return(validCI())
		f.loader.EXPECT().Load("").Return(in, nil)
		f.store.EXPECT().NewGuard().Return(f.guard)
		f.guard.EXPECT().Materialize(in.ClientCert).Return("/tmp/cert-1.pem", nil)
		f.guard.EXPECT().Materialize(in.ClientKey).Return(in.ClientKey, nil)
		f.diag.EXPECT().Inputs(gomock.Any(), gomock.Any(), domain.AuthCert)
		f.diag.EXPECT().Request(gomock.Any())

		want := domain.CertAuth{CertPath: "/tmp/cert-1.pem", KeyPath: "/etc/ssl/client.key"}
		gomock.InOrder(
			f.sender.EXPECT().Send(gomock.Any(), gomock.Any(), want, gomock.Any()).Return(nil),
			f.guard.EXPECT().Release().Return(nil),
		)

		require.NoError(t, f.app.Run(context.Background(), app.RunOptions{}))
	})

	t.Run("temp file failure", func(t *testing.T) {
		f := newFixture(t)

		f.loader.EXPECT().LoadCI().Return(validCI())
		f.loader.EXPECT().Load("").Return(in, nil)
		f.store.EXPECT().NewGuard().Return(f.guard)
		f.guard.EXPECT().Materialize(in.ClientCert).Return("/tmp/cert-1.pem", nil)
		f.guard.EXPECT().Materialize(in.ClientKey).Return("", domain.ErrTempFileCreate)
		f.logger.EXPECT().Error(gomock.Any())
		f.guard.EXPECT().Release().Return(nil)

		err := f.app.Run(context.Background(), app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrValidationFailed)
	})

	t.Run("transfer failure", func(t *testing.T) {
		f := newFixture(t)

		f.loader.EXPECT().LoadCI().Return(validCI())
		f.loader.EXPECT().Load("").Return(in, nil)
		f.store.EXPECT().NewGuard().Return(f.guard)
		f.guard.EXPECT().Materialize(gomock.Any()).Return("/tmp/x.pem", nil).Times(2)
		f.diag.EXPECT().Inputs(gomock.Any(), gomock.Any(), gomock.Any())
		f.diag.EXPECT().Request(gomock.Any())

		transferErr := &domain.TransferError{Code: domain.ExitTLSHandshake, Err: errors.New("handshake failure")}
		gomock.InOrder(
			f.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(transferErr),
			f.guard.EXPECT().Release().Return(nil),
		)

		err := f.app.Run(context.Background(), app.RunOptions{})
		var got *domain.TransferError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, domain.ExitTLSHandshake, got.ExitCode())
	})
}

func TestApp_Run_ReleaseFailureIsWarned(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().LoadCI().Return(validCI())
	f.loader.EXPECT().Load("").Return(validInputs(), nil)
	f.store.EXPECT().NewGuard().Return(f.guard)
	f.diag.EXPECT().Inputs(gomock.Any(), gomock.Any(), gomock.Any())
	f.diag.EXPECT().Request(gomock.Any())
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.guard.EXPECT().Release().Return(errors.New("remove /tmp/x.pem: permission denied"))
	f.logger.EXPECT().Warn("remove /tmp/x.pem: permission denied")

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{}))
}

func TestApp_Run_DryRun(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().LoadCI().Return(validCI())
	f.loader.EXPECT().Load("").Return(validInputs(), nil)
	f.store.EXPECT().NewGuard().Return(f.guard)
	f.guard.EXPECT().Release().Return(nil)
	f.diag.EXPECT().Inputs(gomock.Any(), gomock.Any(), gomock.Any())
	f.diag.EXPECT().Request(gomock.Any())
	f.diag.EXPECT().DryRun(gomock.Any()).Do(func(body []byte) {
		assert.JSONEq(t, `{
			"state": "SUCCESSFUL",
			"key": "Bitrise - abc123 - Build deploy - #42",
			"name": "Bitrise MyApp (deploy) #42",
			"url": "https://app.bitrise.io/build/abc123",
			"description": "Bitrise workflow: deploy"
		}`, string(body))
	})
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{DryRun: true}))
}

func TestApp_Run_LoadError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().LoadCI().Return(validCI())
	f.loader.EXPECT().Load("missing.yml").Return(domain.Inputs{}, domain.ErrConfigReadFailed)

	err := f.app.Run(context.Background(), app.RunOptions{ConfigFile: "missing.yml"})
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestApp_Run_VerboseTracesPhases(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().LoadCI().Return(validCI())
	f.loader.EXPECT().Load("").Return(validInputs(), nil)
	f.store.EXPECT().NewGuard().Return(f.guard)
	f.guard.EXPECT().Release().Return(nil)
	f.diag.EXPECT().Inputs(gomock.Any(), gomock.Any(), gomock.Any())
	f.diag.EXPECT().Request(gomock.Any())
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var phases []string
	f.logger.EXPECT().Info(gomock.Any()).Do(func(msg string) { phases = append(phases, msg) }).Times(4)

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{Verbose: true}))

	require.Len(t, phases, 4)
	assert.Contains(t, phases[0], "validate finished in")
	assert.Contains(t, phases[1], "resolve-auth finished in")
	assert.Contains(t, phases[2], "send finished in")
	assert.Contains(t, phases[3], "report finished in")
}

func TestApp_Run_UsesInjectedTracer(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	f.app.WithTracer(tracer)

	tracer.EXPECT().Start(gomock.Any(), "report").Return(context.Background(), span)
	span.EXPECT().End()
	tracer.EXPECT().Shutdown(gomock.Any()).Return(nil)

	f.loader.EXPECT().LoadCI().Return(domain.CIContext{TriggerMethod: domain.TriggerManual})
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.Run(context.Background(), app.RunOptions{}))
}
