package model

// TargetEnvironment holds the resolved install locations for a target
// interpreter. It is created lazily on first need and cached for the
// lifetime of an Installer instance.
type TargetEnvironment struct {
	// Python is the interpreter the directories were resolved for.
	Python string `json:"python"`

	// ScriptsDir is the writable directory for executable launcher files.
	ScriptsDir string `json:"scripts"`

	// PurelibDir is the writable library directory for pure-Python code.
	PurelibDir string `json:"purelib"`

	// UserSite reports whether the user-site fallback was applied.
	UserSite bool `json:"user_site"`
}
