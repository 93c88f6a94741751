package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bbstatus/internal/core/domain"
)

func TestNewBuildStatusRequest(t *testing.T) {
	in := domain.Inputs{
		Domain:              "bitbucket.example.com",
		CommitHash:          "0123abcd",
		AppTitle:            "MyApp",
		BuildNumber:         "42",
		BuildURL:            "https://app.bitrise.io/build/abc123",
		TriggeredWorkflowID: "deploy",
	}
	ci := domain.CIContext{BuildSlug: "abc123", BuildNumber: "42"}

	req := domain.NewBuildStatusRequest(in, ci, domain.StateSuccessful)

	assert.Equal(t, "Bitrise - abc123 - Build deploy - #42", req.Key)
	assert.Equal(t, "Bitrise MyApp (deploy) #42", req.Name)
	assert.Equal(t, "Bitrise workflow: deploy", req.Description)
	assert.Equal(t, "https://app.bitrise.io/build/abc123", req.URL)
	assert.Equal(t,
		"https://bitbucket.example.com/rest/build-status/1.0/commits/0123abcd",
		req.Endpoint(),
	)
}

func TestBuildStatusRequest_JSON(t *testing.T) {
	req := domain.BuildStatusRequest{
		State:       domain.StateFailed,
		Key:         "k",
		Name:        "n",
		URL:         "u",
		Description: "d",
		Domain:      "example.com",
		CommitHash:  "abc",
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"FAILED","key":"k","name":"n","url":"u","description":"d"}`, string(data))
	assert.Equal(t, `{"state":"FAILED","key":"k","name":"n","url":"u","description":"d"}`, string(data))
}

func TestAuthMethod_Kind(t *testing.T) {
	var basic domain.AuthMethod = domain.BasicAuth{Username: "u", Password: "p"}
	var cert domain.AuthMethod = domain.CertAuth{CertPath: "c", KeyPath: "k"}

	assert.Equal(t, domain.AuthBasic, basic.Kind())
	assert.Equal(t, domain.AuthCert, cert.Kind())
	assert.Equal(t, "basic", basic.Kind().String())
	assert.Equal(t, "client-certificate", cert.Kind().String())
}
