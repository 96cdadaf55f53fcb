// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config resolves where the chain and session files live.
//
// Defaults point into the user's home directory and can be overridden by an
// optional TOML file at ~/.relay/config.toml. A missing config file is not
// an error; a malformed one is, so a typo never silently reverts the tool
// to default paths.
package config
