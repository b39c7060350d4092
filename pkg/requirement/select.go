package requirement

import (
	"regexp"
	"strings"

	"github.com/glorpus-work/pylay/pkg/model"
)

// baselineExtra is the internal token for declarations that carry no extra
// qualifier (the production baseline).
const baselineExtra = ".none"

// developExtras are the reserved extra names treated as the development set.
var developExtras = []string{"dev", "doc", "test"}

var (
	extraClauseRe = regexp.MustCompile(`^extra\s*==\s*['"]([\w.-]+)['"]$`)
	andSplitRe    = regexp.MustCompile(`\s+and\s+`)
)

// Select returns the subset of the declared dependencies to install under
// the given policy and requested extras. The extra qualifier is removed
// from the returned declarations; any environment marker clauses remain.
//
// Requesting extras under the none policy is a conflict and returns a
// DependencyError. Requesting an extra the project never declares simply
// contributes nothing.
func Select(requiresDist []string, policy model.DependencyPolicy, extras []string) ([]string, error) {
	if policy == model.DepsNone {
		if len(extras) > 0 {
			return nil, &DependencyError{Policy: string(policy), Extras: extras}
		}
		return nil, nil
	}

	wanted := make(map[string]bool)
	for _, e := range extras {
		wanted[e] = true
	}
	switch policy {
	case model.DepsDevelop:
		for _, e := range developExtras {
			wanted[e] = true
		}
	case model.DepsAll:
		for _, req := range requiresDist {
			if extra, _ := splitExtra(req); extra != baselineExtra {
				wanted[extra] = true
			}
		}
	}
	// Every non-none policy carries the production baseline, except develop,
	// which installs the development set only.
	if policy != model.DepsDevelop {
		wanted[baselineExtra] = true
	}

	var selected []string
	for _, req := range requiresDist {
		extra, stripped := splitExtra(req)
		if wanted[extra] {
			selected = append(selected, stripped)
		}
	}
	return selected, nil
}

// splitExtra extracts the extra qualifier from a declaration's marker clause
// and returns the declaration with that clause removed. Declarations without
// an extra qualifier report the production baseline token.
func splitExtra(requiresDist string) (extra, stripped string) {
	head, marker, hasMarker := strings.Cut(requiresDist, ";")
	if !hasMarker {
		return baselineExtra, requiresDist
	}

	extra = baselineExtra
	var kept []string
	for _, clause := range andSplitRe.Split(strings.TrimSpace(marker), -1) {
		if m := extraClauseRe.FindStringSubmatch(clause); m != nil {
			extra = m[1]
			continue
		}
		if clause != "" {
			kept = append(kept, clause)
		}
	}

	stripped = head + ";"
	if len(kept) > 0 {
		stripped += " " + strings.Join(kept, " and ")
	}
	return extra, stripped
}
