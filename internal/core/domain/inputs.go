package domain

// TriggerManual is the BITRISE_TRIGGER_METHOD value that bypasses reporting.
const TriggerManual = "manual"

// Inputs holds the step parameters. It is populated once at startup and never mutated.
type Inputs struct {
	Domain              string
	Username            string
	Password            string
	ClientCert          string
	ClientKey           string
	CommitHash          string
	AppTitle            string
	BuildNumber         string
	BuildURL            string
	TriggeredWorkflowID string
	PresetStatus        string
}

// HasClientCert reports whether both certificate fields are set.
func (in Inputs) HasClientCert() bool {
	return in.ClientCert != "" && in.ClientKey != ""
}

// HasPartialClientCert reports whether exactly one certificate field is set.
func (in Inputs) HasPartialClientCert() bool {
	return (in.ClientCert != "") != (in.ClientKey != "")
}

// CIContext holds the values the CI runner provides to every step.
type CIContext struct {
	BuildStatus   string
	BuildSlug     string
	BuildNumber   string
	TriggerMethod string
}

// IsManualTrigger reports whether the pipeline was started by hand.
func (c CIContext) IsManualTrigger() bool {
	return c.TriggerMethod == TriggerManual
}
