// Package detector inspects the runtime environment to pick an output colour mode.
package detector

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/bbstatus/internal/ui/output"
	"golang.org/x/term"
)

// ColorMode represents how diagnostics are coloured.
type ColorMode int

const (
	// ModeAuto picks a mode from the environment.
	ModeAuto ColorMode = iota
	// ModeRich queries the terminal for its full colour support.
	ModeRich
	// ModeCI emits basic ANSI colours, which CI log viewers render.
	ModeCI
	// ModePlain disables colours.
	ModePlain
)

// IsCI reports whether a CI runner is driving the process.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1" || os.Getenv("BITRISE_IO") == "true"
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// DetectEnvironment returns the recommended mode for writing to w.
func DetectEnvironment(w io.Writer) ColorMode {
	switch {
	case IsCI():
		return ModeCI
	case IsTerminal(w):
		return ModeRich
	default:
		return ModePlain
	}
}

// ResolveMode applies the user's --color flag to the detected mode.
// userFlag is one of "auto", "always", "never" or empty; unknown values behave like "auto".
func ResolveMode(detected ColorMode, userFlag string) ColorMode {
	switch userFlag {
	case "always":
		if detected == ModeRich {
			return ModeRich
		}
		return ModeCI
	case "never":
		return ModePlain
	default:
		return detected
	}
}

// Profile returns the termenv profile selector for mode.
func Profile(mode ColorMode) func() termenv.Profile {
	switch mode {
	case ModeRich:
		return output.ColorProfile
	case ModeCI:
		return output.ColorProfileANSI
	default:
		return func() termenv.Profile { return termenv.Ascii }
	}
}
