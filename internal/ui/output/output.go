// Package output builds termenv outputs for reports and log records.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ColorProfile detects the profile of the attached terminal. NO_COLOR yields Ascii.
func ColorProfile() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI is the profile for CI logs and forced colour: plain ANSI
// unless NO_COLOR is set.
func ColorProfileANSI() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// ColorProfileNone never colours.
func ColorProfileNone() termenv.Profile {
	return termenv.Ascii
}

// New wraps w with the detected terminal profile. A nil w writes to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile wraps w with the profile chosen by profile.
func NewWithProfile(w io.Writer, profile func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, append(opts, termenv.WithProfile(profile()), termenv.WithTTY(true))...)
}
