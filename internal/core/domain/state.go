package domain

import "go.trai.ch/zerr"

// BuildState is the status keyword reported to Bitbucket.
type BuildState string

const (
	// StateInProgress marks a build that is still running.
	StateInProgress BuildState = "INPROGRESS"
	// StateSuccessful marks a passed build.
	StateSuccessful BuildState = "SUCCESSFUL"
	// StateFailed marks a failed build.
	StateFailed BuildState = "FAILED"
)

// PresetAuto is the preset_status sentinel that defers to BITRISE_BUILD_STATUS.
const PresetAuto = "AUTO"

// ParseBuildState converts s into a BuildState. Matching is case-sensitive.
func ParseBuildState(s string) (BuildState, error) {
	switch BuildState(s) {
	case StateInProgress, StateSuccessful, StateFailed:
		return BuildState(s), nil
	default:
		return "", zerr.With(ErrInvalidBuildState, "value", s)
	}
}

// String implements fmt.Stringer.
func (s BuildState) String() string {
	return string(s)
}

// ResolveBuildState picks the state to report.
//
// A preset other than AUTO wins and must name a known state. Otherwise the numeric
// CI build status decides: "0" is SUCCESSFUL, "1" is FAILED, anything else is rejected.
func ResolveBuildState(preset, numeric string) (BuildState, error) {
	if preset != "" && preset != PresetAuto {
		state, err := ParseBuildState(preset)
		if err != nil {
			return "", zerr.With(ErrInvalidPresetStatus, "preset_status", preset)
		}
		return state, nil
	}

	switch numeric {
	case "0":
		return StateSuccessful, nil
	case "1":
		return StateFailed, nil
	default:
		return "", zerr.With(ErrInvalidBuildStatus, "BITRISE_BUILD_STATUS", numeric)
	}
}
