// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/relay/internal/util"
)

// ============================================================================
// === TYPES ===
// ============================================================================

// Config holds the file locations the tool operates on.
type Config struct {
	// ChainPath is the append-only message chain file.
	ChainPath string `toml:"chain_path"`

	// SessionsPath is the session registry file.
	SessionsPath string `toml:"sessions_path"`

	// WorkspacePath is the directory described by generated messages that
	// mention workspace state.
	WorkspacePath string `toml:"workspace_path"`
}

// ============================================================================
// === DEFAULTS ===
// ============================================================================

// Default returns the built-in configuration rooted at the user's home
// directory. When the home directory cannot be determined, paths fall back
// to the current directory.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		ChainPath:     filepath.Join(home, ".relay-chain.json"),
		SessionsPath:  filepath.Join(home, ".relay-sessions.json"),
		WorkspacePath: filepath.Join(home, "workspace"),
	}
}

// DefaultPath returns the location of the optional config file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".relay", "config.toml")
}

// ============================================================================
// === LOAD / SAVE ===
// ============================================================================

// Load reads the config file at path, layering it over the defaults. A
// missing file yields the defaults; a malformed file is an error. Fields
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path atomically, with a short header so a hand edit
// later has some context.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	buf.WriteString("# relay configuration\n")
	buf.WriteString("# all paths may be absolute or relative to the working directory\n\n")

	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}
