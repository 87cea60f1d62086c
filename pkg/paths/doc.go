// Package paths provides centralized path handling for shinydir.
// It implements XDG Base Directory specification compliance for the
// config, log and lock locations, and the path normalization rules used
// when turning configured rule directories into canonical absolute paths.
package paths
