package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pineapple/internal/project"
)

// loadConfig resolves pineapple.toml and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (project.Config, error) {
	flags := cmd.Root().PersistentFlags()
	explicit, err := flags.GetString("config")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := project.Resolve(explicit, ".")
	if err != nil {
		return project.Config{}, err
	}

	if flags.Changed("max-diagnostics") {
		n, err := flags.GetInt("max-diagnostics")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		if n > 0 {
			cfg.LSP.MaxDiagnostics = n
		}
	}
	for flag, dst := range map[string]*string{
		"trace":        &cfg.Trace.Output,
		"trace-level":  &cfg.Trace.Level,
		"trace-format": &cfg.Trace.Format,
	} {
		if !flags.Changed(flag) {
			continue
		}
		v, err := flags.GetString(flag)
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get %s flag: %w", flag, err)
		}
		*dst = v
	}
	// --trace без уровня включает фазы
	if flags.Changed("trace") && !flags.Changed("trace-level") && (cfg.Trace.Level == "" || cfg.Trace.Level == "off") {
		cfg.Trace.Level = "phase"
	}
	return cfg, nil
}
