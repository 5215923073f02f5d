package config

// Rivefile represents the structure of the rivebuild.yaml configuration file.
type Rivefile struct {
	OnFailure string     `yaml:"on_failure"`
	BuildTool string     `yaml:"build_tool"`
	Layout    *LayoutDTO `yaml:"layout"`
}

// LayoutDTO represents the layout section of the configuration.
type LayoutDTO struct {
	SubmoduleRoot     string `yaml:"submodule_root"`
	Submodule         string `yaml:"submodule"`
	EngineDir         string `yaml:"engine_dir"`
	BackendDepsDir    string `yaml:"backend_deps_dir"`
	BackendDepsOutput string `yaml:"backend_deps_output"`
	BackendDir        string `yaml:"backend_dir"`
}
