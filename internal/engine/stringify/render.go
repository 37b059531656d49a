// Package stringify renders matched filters the way they appear in filter lists.
package stringify

import (
	"net/url"
	"strings"

	"go.trai.ch/extq/internal/core/domain"
)

// Render returns the display text of f. Scriptlet injections are rebuilt from their
// parsed call; domain-restricted ones use a "<hostnames>" placeholder and
// percent-decoded arguments. Everything else uses the library's own rendering.
func Render(f domain.Filter) string {
	if !f.IsCosmetic() || !f.ScriptInject || f.Script == nil {
		return f.Text
	}

	if !f.DomainRestricted {
		return "##+js(" + call(f.Script.Name, f.Script.Args) + ")"
	}

	args := make([]string, len(f.Script.Args))
	for i, arg := range f.Script.Args {
		args[i] = decode(arg)
	}
	return "<hostnames>##+js(" + call(f.Script.Name, args) + ")"
}

// call always separates the name from the argument list, so a scriptlet
// without arguments renders as "name, ".
func call(name string, args []string) string {
	return name + ", " + strings.Join(args, ", ")
}

// decode percent-decodes arg, keeping it verbatim when it is not valid escaping.
func decode(arg string) string {
	decoded, err := url.PathUnescape(arg)
	if err != nil {
		return arg
	}
	return decoded
}
