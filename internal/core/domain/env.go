package domain

import (
	"slices"
	"strings"
)

// Environment flag names understood by the filtering library.
const (
	FlagExtGhostery        = "ext_ghostery"
	FlagEnvChromium        = "env_chromium"
	FlagEnvEdge            = "env_edge"
	FlagEnvFirefox         = "env_firefox"
	FlagCapReplaceModifier = "cap_replace_modifier"
	FlagCapHTMLFiltering   = "cap_html_filtering"
	FlagEnvMobile          = "env_mobile"
)

const (
	envTokenChromium = "chromium"
	envTokenFirefox  = "firefox"
	envTokenMobile   = "mobile"
)

// EnvironmentFlags is the set of named conditions applied to an engine before matching.
type EnvironmentFlags map[string]bool

// FlagsFromToken derives environment flags from a free-form token such as "firefox-mobile".
// Each keyword is detected by substring, so keywords combine freely.
func FlagsFromToken(token string) EnvironmentFlags {
	flags := EnvironmentFlags{FlagExtGhostery: true}

	if strings.Contains(token, envTokenChromium) {
		flags[FlagEnvChromium] = true
		flags[FlagEnvEdge] = true
	}
	if strings.Contains(token, envTokenFirefox) {
		flags[FlagEnvFirefox] = true
		flags[FlagCapReplaceModifier] = true
		flags[FlagCapHTMLFiltering] = true
	}
	if strings.Contains(token, envTokenMobile) {
		flags[FlagEnvMobile] = true
	}

	return flags
}

// Names returns the enabled flag names in sorted order.
func (f EnvironmentFlags) Names() []string {
	names := make([]string, 0, len(f))
	for name, on := range f {
		if on {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
