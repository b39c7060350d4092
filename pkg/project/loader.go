// Package project loads a project descriptor file into the metadata object
// the installer consumes. The descriptor is a TOML file living at the root
// of the project source tree; the directory containing it is the source
// root every relative path is resolved against.
package project

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/glorpus-work/pylay/pkg/logger"
	"github.com/glorpus-work/pylay/pkg/model"
	"github.com/sirupsen/logrus"
)

// DescriptorName is the default descriptor file name.
const DescriptorName = "pylay.toml"

type descriptor struct {
	Project projectTable `toml:"project"`
}

type projectTable struct {
	Name        string                       `toml:"name"`
	Version     string                       `toml:"version"`
	Modules     []string                     `toml:"modules"`
	Requires    []string                     `toml:"requires"`
	Extras      []string                     `toml:"extras"`
	Scripts     map[string]string            `toml:"scripts"`
	EntryPoints map[string]map[string]string `toml:"entry-points"`
	Hooks       map[string]string            `toml:"hooks"`
}

// Load reads and validates the descriptor at path. It returns the project
// metadata and the source root the installer should place files from.
func Load(path string) (*model.ProjectMetadata, string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, "", errors.Wrapf(errors.ErrDescriptorNotFound, "%s", path)
	}

	var desc descriptor
	md, err := toml.DecodeFile(path, &desc)
	if err != nil {
		return nil, "", errors.Wrapf(errors.ErrDescriptorParse, "%s: %v", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown descriptor key", logrus.Fields{"key": key.String(), "file": path})
	}

	meta := &model.ProjectMetadata{
		Name:         desc.Project.Name,
		Version:      desc.Project.Version,
		Modules:      desc.Project.Modules,
		Scripts:      desc.Project.Scripts,
		EntryPoints:  desc.Project.EntryPoints,
		RequiresDist: desc.Project.Requires,
		Extras:       desc.Project.Extras,
		Hooks:        desc.Project.Hooks,
	}
	if err := meta.Validate(); err != nil {
		return nil, "", err
	}

	srcRoot, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, "", err
	}
	return meta, srcRoot, nil
}
