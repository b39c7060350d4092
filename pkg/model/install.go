package model

import (
	"github.com/glorpus-work/pylay/pkg/errors"
)

// DependencyPolicy selects which of a project's declared dependencies are
// installed alongside it.
type DependencyPolicy string

// Supported dependency policies.
const (
	// DepsNone installs no dependencies regardless of extras.
	DepsNone DependencyPolicy = "none"
	// DepsProduction installs declarations that carry no extra qualifier.
	DepsProduction DependencyPolicy = "production"
	// DepsDevelop installs declarations qualified with a reserved
	// development extra (dev, doc, test).
	DepsDevelop DependencyPolicy = "develop"
	// DepsAll installs the production set plus every declared extra.
	DepsAll DependencyPolicy = "all"
)

// ParseDependencyPolicy validates and returns a dependency policy value.
func ParseDependencyPolicy(s string) (DependencyPolicy, error) {
	switch DependencyPolicy(s) {
	case DepsNone, DepsProduction, DepsDevelop, DepsAll:
		return DependencyPolicy(s), nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidDepsPolicy, "%q (must be one of: none, production, develop, all)", s)
	}
}

// PlacementMode selects how project code is materialized into the target
// environment. The modes are mutually exclusive and validated once at
// installer construction.
type PlacementMode int

const (
	// PlacementCopy byte-copies modules and packages into purelib.
	PlacementCopy PlacementMode = iota
	// PlacementSymlink creates symbolic links pointing at the source tree.
	PlacementSymlink
	// PlacementPth writes a single path file redirecting imports to the
	// source root without copying.
	PlacementPth
)

// String returns the mode name as used on the command line.
func (p PlacementMode) String() string {
	switch p {
	case PlacementSymlink:
		return "symlink"
	case PlacementPth:
		return "pth"
	default:
		return "copy"
	}
}

// ParsePlacementMode resolves the symlink/pth flag pair into a placement
// mode, rejecting the unsupported combination of both.
func ParsePlacementMode(symlink, pth bool) (PlacementMode, error) {
	if symlink && pth {
		return PlacementCopy, errors.ErrPlacementConflict
	}
	if symlink {
		return PlacementSymlink, nil
	}
	if pth {
		return PlacementPth, nil
	}
	return PlacementCopy, nil
}
