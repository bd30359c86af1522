// Package configloader resolves the effective mdhtml configuration.
// It discovers a project config file by searching upward, layers an explicit
// config file and CLI flags over it, and validates the result.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/mdhtml/internal/logging"
	"github.com/yaklabco/mdhtml/pkg/config"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigRead  = errors.New("cannot read config")
	ErrConfigParse = errors.New("invalid config syntax")
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// It is layered over any project config.
	ExplicitPath string

	// IgnoreProjectConfig skips the upward search for a project config.
	IgnoreProjectConfig bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.mdhtml.yml upward search)
//  4. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	result := &LoadResult{
		Paths: &ConfigPaths{Explicit: opts.ExplicitPath},
	}

	cfg := config.NewConfig()

	if !opts.IgnoreProjectConfig {
		workDir := opts.WorkingDir
		if workDir == "" {
			var err error
			workDir, err = os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
		}

		project, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, fmt.Errorf("discover project config: %w", err)
		}
		result.Paths.Project = project
	}

	for _, path := range []string{result.Paths.Project, result.Paths.Explicit} {
		if path == "" {
			continue
		}

		fileCfg, warnings, err := loadConfigFile(ctx, path)
		if err != nil {
			return nil, err
		}

		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
		result.Warnings = append(result.Warnings, warnings...)

		logger.Debug("loaded config", logging.FieldConfig, path)
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads, parses and validates one config file.
// Unknown top-level keys are reported as warnings.
func loadConfigFile(ctx context.Context, path string) (*config.Config, []string, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %s: %w", ErrConfigRead, path, err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, nil, fmt.Errorf("%w in %s: %w", ErrConfigParse, path, err)
	}

	validation := ValidateWithFile(cfg, path)
	if !validation.Valid() {
		return nil, nil, &validation.Errors[0]
	}

	unknown, err := config.UnknownKeys(content)
	if err != nil {
		return nil, nil, fmt.Errorf("%w in %s: %w", ErrConfigParse, path, err)
	}

	warnings := make([]string, 0, len(unknown))
	for _, key := range unknown {
		warnings = append(warnings, fmt.Sprintf("%s: unknown key %q; it will be ignored", path, key))
	}

	return cfg, warnings, nil
}
