package domain

// Settings is the project level configuration, read from ConfigFileName.
type Settings struct {
	Layout    Layout
	BuildTool string
	OnFailure FailurePolicy
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Layout:    DefaultLayout(),
		BuildTool: DefaultBuildTool,
		OnFailure: DefaultFailurePolicy,
	}
}
