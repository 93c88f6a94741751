package config

// InputsFile represents the structure of an optional YAML inputs file.
// Keys match the environment variable names of the step inputs.
type InputsFile struct {
	Domain              string `yaml:"domain"`
	Username            string `yaml:"username"`
	Password            string `yaml:"password"`
	ClientCert          string `yaml:"client_cert"`
	ClientKey           string `yaml:"client_key"`
	CommitHash          string `yaml:"git_clone_commit_hash"`
	AppTitle            string `yaml:"app_title"`
	BuildNumber         string `yaml:"build_number"`
	BuildURL            string `yaml:"build_url"`
	TriggeredWorkflowID string `yaml:"triggered_workflow_id"`
	PresetStatus        string `yaml:"preset_status"`
}

// values returns the file contents keyed by input name.
func (f *InputsFile) values() map[string]string {
	return map[string]string{
		KeyDomain:              f.Domain,
		KeyUsername:            f.Username,
		KeyPassword:            f.Password,
		KeyClientCert:          f.ClientCert,
		KeyClientKey:           f.ClientKey,
		KeyCommitHash:          f.CommitHash,
		KeyAppTitle:            f.AppTitle,
		KeyBuildNumber:         f.BuildNumber,
		KeyBuildURL:            f.BuildURL,
		KeyTriggeredWorkflowID: f.TriggeredWorkflowID,
		KeyPresetStatus:        f.PresetStatus,
	}
}
