package domain

import (
	"fmt"
	"net/url"
)

// BuildStatusPath is the Bitbucket Server REST path prefix for commit build statuses.
const BuildStatusPath = "/rest/build-status/1.0/commits/"

// BuildStatusRequest is the payload posted to Bitbucket.
// Field order matches the wire format.
type BuildStatusRequest struct {
	State       BuildState `json:"state"`
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	Description string     `json:"description"`

	Domain     string `json:"-"`
	CommitHash string `json:"-"`
}

// NewBuildStatusRequest assembles the request from validated inputs.
func NewBuildStatusRequest(in Inputs, ci CIContext, state BuildState) BuildStatusRequest {
	return BuildStatusRequest{
		State:       state,
		Key:         StatusKey(ci.BuildSlug, in.TriggeredWorkflowID, ci.BuildNumber),
		Name:        StatusName(in.AppTitle, in.TriggeredWorkflowID, in.BuildNumber),
		URL:         in.BuildURL,
		Description: StatusDescription(in.TriggeredWorkflowID),
		Domain:      in.Domain,
		CommitHash:  in.CommitHash,
	}
}

// StatusKey is the identifier Bitbucket uses to deduplicate statuses on a commit.
func StatusKey(slug, workflowID, buildNumber string) string {
	return fmt.Sprintf("Bitrise - %s - Build %s - #%s", slug, workflowID, buildNumber)
}

// StatusName is the human readable status title.
func StatusName(appTitle, workflowID, buildNumber string) string {
	return fmt.Sprintf("Bitrise %s (%s) #%s", appTitle, workflowID, buildNumber)
}

// StatusDescription describes which workflow produced the status.
func StatusDescription(workflowID string) string {
	return "Bitrise workflow: " + workflowID
}

// Endpoint returns the commit build-status URL.
func (r BuildStatusRequest) Endpoint() string {
	return "https://" + r.Domain + BuildStatusPath + url.PathEscape(r.CommitHash)
}
