// Package config provides the configuration loader for nuprune.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	fs     fs.FileSystem
	logger ports.Logger
}

// NewLoader creates a new Loader reading through fsys.
func NewLoader(fsys fs.FileSystem, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load finds the configuration file governing dir and parses it.
// Settings are empty when no file exists between dir and the filesystem root.
func (l *Loader) Load(dir string) (*domain.Settings, error) {
	path, ok := l.find(dir)
	if !ok {
		return &domain.Settings{}, nil
	}

	l.logger.Debug("using configuration " + path)
	return l.LoadFile(path)
}

// LoadFile parses the configuration file at path.
func (l *Loader) LoadFile(path string) (*domain.Settings, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "failed to read config file"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, err.Error()), "path", path)
	}

	settings, err := toSettings(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	settings.Path = path
	return settings, nil
}

func (l *Loader) find(dir string) (string, bool) {
	current := filepath.Clean(dir)
	for {
		for _, name := range []string{FileName, AltFileName} {
			candidate := filepath.Join(current, name)
			if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func toSettings(file *File) (*domain.Settings, error) {
	settings := &domain.Settings{
		Exclude:                 file.Exclude,
		Parallelism:             file.Parallelism,
		TargetFramework:         strings.TrimSpace(file.TargetFramework),
		GlobalUsingCountsAsUsed: file.GlobalUsingCountsAsUsed,
		StrictPrefixes:          file.StrictPrefixes,
		DevDependencyPatterns:   file.DevDependencyPatterns,
		IgnorePackages:          file.IgnorePackages,
	}

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil || timeout < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "timeout must be a non-negative duration"), "timeout", file.Timeout)
		}
		settings.Timeout = timeout
	}

	if file.Parallelism < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "parallelism must not be negative"), "parallelism", file.Parallelism)
	}

	if file.DevDependencies != "" {
		policy := domain.DevDependencyPolicy(strings.ToLower(file.DevDependencies))
		if !policy.Valid() {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig,
				fmt.Sprintf("devDependencies must be one of %s, %s, %s",
					domain.DevDependenciesReport, domain.DevDependenciesIgnore, domain.DevDependenciesUsed)),
				"devDependencies", file.DevDependencies)
		}
		settings.DevDependencies = policy
	}

	if len(file.Namespaces) > 0 {
		settings.Namespaces = make(map[string][]string, len(file.Namespaces))
		for id, namespaces := range file.Namespaces {
			id = strings.TrimSpace(id)
			if id == "" || len(namespaces) == 0 {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "namespaces entries need a package id and at least one namespace"), "package", id)
			}
			settings.Namespaces[id] = namespaces
		}
	}

	return settings, nil
}
