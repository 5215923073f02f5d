// Package config loads the optional project configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/rivebuild/internal/core/domain"
	"go.trai.ch/rivebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for rivebuild.yaml files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the settings for the project in dir.
//
// With an explicit path the file must exist; relative paths are taken from dir.
// Otherwise dir/rivebuild.yaml is used when present and the defaults when not.
func (l *Loader) Load(dir, explicitPath string) (domain.Settings, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(dir, domain.ConfigFileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicitPath != "" {
				return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no config file at "+path), "path", path)
			}
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Rivefile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			l.logger.Warn("config file " + path + " is empty, using defaults")
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	settings, err := toSettings(&file)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

func toSettings(file *Rivefile) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	policy, err := domain.ParseFailurePolicy(file.OnFailure)
	if err != nil {
		return domain.Settings{}, err
	}
	settings.OnFailure = policy

	if file.BuildTool != "" {
		settings.BuildTool = file.BuildTool
	}

	if file.Layout != nil {
		settings.Layout = domain.Layout{
			SubmoduleRoot:     file.Layout.SubmoduleRoot,
			Submodule:         file.Layout.Submodule,
			EngineDir:         file.Layout.EngineDir,
			BackendDepsDir:    file.Layout.BackendDepsDir,
			BackendDepsOutput: file.Layout.BackendDepsOutput,
			BackendDir:        file.Layout.BackendDir,
		}.WithDefaults()
	}

	return settings, nil
}
