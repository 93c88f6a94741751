package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingDomain is returned when the Bitbucket Server domain is not set.
	ErrMissingDomain = zerr.New("domain is required")

	// ErrMissingUsername is returned when basic auth is selected but no username is set.
	ErrMissingUsername = zerr.New("username is required when no client certificate is provided")

	// ErrMissingPassword is returned when basic auth is selected but no password is set.
	ErrMissingPassword = zerr.New("password is required when no client certificate is provided")

	// ErrPartialClientCert is returned when only one of client_cert and client_key is set.
	ErrPartialClientCert = zerr.New("both client_cert and client_key must be provided")

	// ErrMissingCommitHash is returned when no commit hash is set and HEAD cannot be resolved.
	ErrMissingCommitHash = zerr.New("git_clone_commit_hash is required and could not be resolved from HEAD")

	// ErrMissingAppTitle is returned when app_title is not set.
	ErrMissingAppTitle = zerr.New("app_title is required")

	// ErrMissingBuildNumber is returned when build_number is not set.
	ErrMissingBuildNumber = zerr.New("build_number is required")

	// ErrMissingBuildURL is returned when build_url is not set.
	ErrMissingBuildURL = zerr.New("build_url is required")

	// ErrMissingWorkflowID is returned when triggered_workflow_id is not set.
	ErrMissingWorkflowID = zerr.New("triggered_workflow_id is required")

	// ErrInvalidPresetStatus is returned when preset_status is not AUTO or a known build state.
	ErrInvalidPresetStatus = zerr.New("preset_status must be one of AUTO, INPROGRESS, SUCCESSFUL, FAILED")

	// ErrInvalidBuildStatus is returned when BITRISE_BUILD_STATUS is neither 0 nor 1.
	ErrInvalidBuildStatus = zerr.New("BITRISE_BUILD_STATUS must be 0 or 1")

	// ErrInvalidBuildState is returned when a string is not a known build state.
	ErrInvalidBuildState = zerr.New("invalid build state")

	// ErrTempFileCreate is returned when inline certificate material cannot be written to a temp file.
	ErrTempFileCreate = zerr.New("failed to create temporary credential file")

	// ErrValidationFailed is returned once all input validation errors have been reported.
	ErrValidationFailed = zerr.New("input validation failed")

	// ErrConfigReadFailed is returned when an inputs file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read inputs file")

	// ErrConfigParseFailed is returned when an inputs file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse inputs file")

	// ErrEnvFileLoadFailed is returned when a dotenv file cannot be loaded.
	ErrEnvFileLoadFailed = zerr.New("failed to load env file")

	// ErrRepositoryOpen is returned when the local repository cannot be opened.
	ErrRepositoryOpen = zerr.New("failed to open git repository")

	// ErrRepositoryHead is returned when the HEAD reference cannot be read.
	ErrRepositoryHead = zerr.New("failed to read HEAD revision")

	// ErrRequestBuild is returned when the outgoing HTTP request cannot be constructed.
	ErrRequestBuild = zerr.New("failed to build status request")

	// ErrClientCertLoad is returned when the client certificate or key cannot be loaded.
	ErrClientCertLoad = zerr.New("failed to load client certificate")

	// ErrInvalidLogFormat is returned when --log-format is neither pretty nor json.
	ErrInvalidLogFormat = zerr.New("log format must be pretty or json")

	// ErrTransferFailed is returned when the HTTP transfer itself could not be performed.
	ErrTransferFailed = zerr.New("status request transfer failed")
)
