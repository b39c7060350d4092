// Package requirement converts a project's requires-dist declarations into
// pip-installable requirement strings and selects which of them to install
// under a dependency policy.
package requirement

import (
	"regexp"
	"strings"
)

var (
	nameRe  = regexp.MustCompile(`^\w[\w.-]*`)
	specOps = "<>=~!"
)

// ToPipRequirement converts one requires-dist declaration of the form
// `name (version-spec); marker` into a requirement string pip accepts:
// the version specifier is concatenated to the name with parentheses and
// internal spacing stripped, and the marker clause is kept after `;`.
// It is a no-op on already-normalized input.
func ToPipRequirement(requiresDist string) (string, error) {
	head, marker, hasMarker := strings.Cut(requiresDist, ";")
	head = strings.TrimSpace(head)

	name := nameRe.FindString(head)
	if name == "" {
		return "", &FormatError{Declaration: requiresDist}
	}

	spec := strings.TrimSpace(head[len(name):])
	spec = strings.TrimPrefix(spec, "(")
	spec = strings.TrimSuffix(spec, ")")
	spec = strings.ReplaceAll(spec, " ", "")
	if spec != "" && !strings.ContainsRune(specOps, rune(spec[0])) {
		// Bare version pin: `name (1.2)` means `name==1.2`.
		spec = "==" + spec
	}

	req := name + spec
	if hasMarker {
		req += ";" + marker
	}
	return req, nil
}
