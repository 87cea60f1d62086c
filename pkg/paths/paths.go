package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/shinydir/pkg/errors"
)

// Environment variable names
const (
	// EnvConfig points at an explicit configuration file
	EnvConfig = "SHINYDIR_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "shinydir"

	// ConfigFileName is the default configuration file name
	ConfigFileName = "shinydir.toml"

	// LockFileName is the name of the auto-move lock file
	LockFileName = "automove.lock"
)

// configCandidates are tried in order inside each XDG config directory
var configCandidates = []string{
	ConfigFileName,
	"shinydir.yaml",
	"shinydir.yml",
}

// FindConfigFile locates the configuration file.
// Priority: explicit path, SHINYDIR_CONFIG, then the XDG config search path.
// When nothing exists the default location is returned so callers can report it.
func FindConfigFile(explicit string) (string, error) {
	if explicit != "" {
		return NormalizePath(explicit, "")
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return NormalizePath(env, "")
	}

	for _, name := range configCandidates {
		if found, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return found, nil
		}
	}

	return DefaultConfigPath(), nil
}

// DefaultConfigPath returns where the configuration file lives when nothing overrides it
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// StateDir returns the shinydir directory under XDG_STATE_HOME
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LockFilePath returns the path of the auto-move lock file
func LockFilePath() string {
	return filepath.Join(StateDir(), LockFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// ContractHome replaces a leading home directory with ~ for display
func ContractHome(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}
	if path == homeDir {
		return "~"
	}
	if strings.HasPrefix(path, homeDir+string(filepath.Separator)) {
		return "~" + path[len(homeDir):]
	}
	return path
}

// NormalizePath expands home, makes the path absolute and cleans it.
// Relative paths are resolved against base, or the working directory when base is empty.
func NormalizePath(path, base string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	expanded := ExpandHome(path)
	if !filepath.IsAbs(expanded) && base != "" {
		expanded = filepath.Join(base, expanded)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}

// Canonicalize normalizes a path and resolves symlinks when the path exists.
// A path that does not exist yet is returned normalized, not as an error, so
// a missing rule directory can be reported as such later.
func Canonicalize(path, base string) (string, error) {
	normalized, err := NormalizePath(path, base)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(normalized)
	if err != nil {
		if os.IsNotExist(err) {
			return normalized, nil
		}
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve %s", normalized)
	}
	return resolved, nil
}

// CanonicalizeExisting is Canonicalize for paths that must exist
func CanonicalizeExisting(path string) (string, error) {
	normalized, err := NormalizePath(path, "")
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(normalized)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTarget, "cannot canonicalize %s", path)
	}
	return resolved, nil
}

// IsUnder reports whether path equals parent or lies below it.
// Both paths are expected to be absolute and clean.
func IsUnder(path, parent string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// EscapeSpaces escapes spaces with a backslash so a path survives word splitting
func EscapeSpaces(path string) string {
	return strings.ReplaceAll(path, " ", `\ `)
}
