package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/slok/zide/internal/model"
)

// ProjectYAMLRepository loads the optional per-project configuration from a
// YAML file (zide.yaml in the project directory).
type ProjectYAMLRepository struct {
	fs fs.FS
}

// NewProjectYAMLRepository creates a new YAML project config repository.
func NewProjectYAMLRepository(filesystem fs.FS) *ProjectYAMLRepository {
	return &ProjectYAMLRepository{fs: filesystem}
}

// GetProjectConfig loads a project configuration from a YAML file and returns
// a validated domain model.
func (r *ProjectYAMLRepository) GetProjectConfig(ctx context.Context, path string) (model.ProjectConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.ProjectConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.ProjectConfig{}, ctx.Err()
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.ProjectConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.ProjectConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// ProjectConfig represents the YAML structure for project configuration.
type ProjectConfig struct {
	Name        string   `yaml:"name"`
	Executables []string `yaml:"executables"`
}

func (c ProjectConfig) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required: %w", model.ErrNotValid)
	}

	for _, e := range c.Executables {
		if e == "" {
			return fmt.Errorf("executable names can't be empty: %w", model.ErrNotValid)
		}
	}

	return nil
}

func (c ProjectConfig) toModel() model.ProjectConfig {
	return model.ProjectConfig{
		Name:        c.Name,
		Executables: c.Executables,
	}
}

// GlobalYAMLRepository loads the optional user-level configuration from a
// YAML file (config.yaml under the zide home directory).
type GlobalYAMLRepository struct {
	fs fs.FS
}

// NewGlobalYAMLRepository creates a new YAML global config repository.
func NewGlobalYAMLRepository(filesystem fs.FS) *GlobalYAMLRepository {
	return &GlobalYAMLRepository{fs: filesystem}
}

// GetGlobalConfig loads the global configuration from a YAML file. Every
// field is optional.
func (r *GlobalYAMLRepository) GetGlobalConfig(ctx context.Context, path string) (model.GlobalConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.GlobalConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.GlobalConfig{}, ctx.Err()
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.GlobalConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	return model.GlobalConfig{ZigBinary: cfg.ZigBinary}, nil
}

// GlobalConfig represents the YAML structure for the global configuration.
type GlobalConfig struct {
	ZigBinary string `yaml:"zig_binary"`
}
