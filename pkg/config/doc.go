// Package config loads and validates the shinydir configuration file.
//
// Configuration is assembled with koanf in three layers, later layers
// overriding earlier ones:
//
//  1. Built-in defaults (color, unicode and the script warning enabled)
//  2. The configuration file, TOML or YAML depending on its extension
//  3. SHINYDIR_* environment variables, e.g. SHINYDIR_SETTINGS_COLOR=false
//
// The file is required: a missing or malformed configuration is fatal.
// Validate checks the structural rules every rule definition must satisfy
// before any directory is scanned.
package config
