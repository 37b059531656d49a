// Package term builds the termenv outputs used by the logger and the report printer.
package term

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns Ascii when colors are disabled through NO_COLOR or CLICOLOR=0,
// and the detected terminal profile otherwise.
func Profile() termenv.Profile {
	if termenv.EnvNoColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// NewOutput wraps w in a termenv.Output using Profile.
func NewOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile()), termenv.WithTTY(true))
}
