package model

import (
	"sort"
	"strings"
)

// consoleScriptsGroup is the entry point group console scripts belong to.
const consoleScriptsGroup = "console_scripts"

// EntryPointGroups merges the console scripts into the declared entry point
// groups. Explicit console_scripts entries win over the script shorthand.
func (m *ProjectMetadata) EntryPointGroups() map[string]map[string]string {
	groups := make(map[string]map[string]string, len(m.EntryPoints)+1)
	for group, points := range m.EntryPoints {
		groups[group] = make(map[string]string, len(points))
		for name, target := range points {
			groups[group][name] = target
		}
	}
	if len(m.Scripts) > 0 {
		if groups[consoleScriptsGroup] == nil {
			groups[consoleScriptsGroup] = make(map[string]string, len(m.Scripts))
		}
		for name, target := range m.Scripts {
			if _, ok := groups[consoleScriptsGroup][name]; !ok {
				groups[consoleScriptsGroup][name] = target
			}
		}
	}
	return groups
}

// EntryPointsText renders the entry_points.txt payload: one [group] section
// per entry point group with name = target lines, sorted for stable output.
func (m *ProjectMetadata) EntryPointsText() string {
	groups := m.EntryPointGroups()
	groupNames := make([]string, 0, len(groups))
	for group := range groups {
		groupNames = append(groupNames, group)
	}
	sort.Strings(groupNames)

	var b strings.Builder
	for _, group := range groupNames {
		b.WriteString("[" + group + "]\n")
		names := make([]string, 0, len(groups[group]))
		for name := range groups[group] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(name + " = " + groups[group][name] + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
