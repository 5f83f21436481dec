// Package project loads pineapple.toml.
package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	LSP   LSPConfig   `toml:"lsp"`
	Log   LogConfig   `toml:"log"`
	Trace TraceConfig `toml:"trace"`
	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-"`
}

type LSPConfig struct {
	KeepStaleTokens bool `toml:"keep_stale_tokens"`
	Completion      bool `toml:"completion"`
	MaxDiagnostics  int  `toml:"max_diagnostics"`
}

type LogConfig struct {
	// 0 - только ошибки, 1 - info, 2 - debug
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		LSP:   LSPConfig{Completion: true, MaxDiagnostics: 100},
		Trace: TraceConfig{Level: "off", Output: "-", Format: "auto"},
	}
}

// Load decodes path over the defaults. Unknown keys are an error so typos
// do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.LSP.MaxDiagnostics <= 0 {
		return Config{}, fmt.Errorf("%s: [lsp].max_diagnostics must be positive", path)
	}
	if cfg.Log.Verbosity < 0 {
		return Config{}, fmt.Errorf("%s: [log].verbosity must not be negative", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest pineapple.toml
// above startDir, otherwise the defaults.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
