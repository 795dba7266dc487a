// Package detector provides environment detection for output styling.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/ui/output"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// ColorMode is the user's choice for coloured output.
type ColorMode string

const (
	// ColorAuto colours output on interactive terminals only.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces coloured output.
	ColorAlways ColorMode = "always"
	// ColorNever disables coloured output.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a --color flag value. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "color must be auto, always, or never"), "color", s)
	}
}

// Environment describes where output is going.
type Environment struct {
	IsTTY bool
	IsCI  bool
}

// DetectEnvironment inspects f and the CI variable.
func DetectEnvironment(f *os.File) Environment {
	ci := os.Getenv("CI")
	return Environment{
		IsTTY: f != nil && term.IsTerminal(int(f.Fd())),
		IsCI:  ci == "true" || ci == "1",
	}
}

// ProfileFunc selects the colour profile for env under mode. NO_COLOR always wins.
func ProfileFunc(env Environment, mode ColorMode) func() termenv.Profile {
	switch mode {
	case ColorNever:
		return output.ColorProfileNone
	case ColorAlways:
		return output.ColorProfileANSI
	}

	switch {
	case env.IsCI:
		return output.ColorProfileANSI
	case env.IsTTY:
		return output.ColorProfile
	default:
		return output.ColorProfileNone
	}
}
