// Package config loads, normalizes, and validates Slate configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/slate/config.toml or a
// project-local slate.toml. The Config type centralizes every knob the CLI
// needs: the project data directory, log output, and timeline defaults.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
