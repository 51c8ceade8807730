package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates the running executable and the platform's config
// directory, so vaguecompile/vaguesearch can find a config.toml without
// requiring -config on every invocation.
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver determines the executable location and platform config
// directory.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	configDir := getConfigDir(homeDir)

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      configDir,
	}
	log.Debugf("path resolver: exec=%s configDir=%s", execPath, configDir)
	return pr, nil
}

// getConfigDir returns the platform-appropriate config directory.
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "vaguetrie")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "vaguetrie")
		}
		return filepath.Join(homeDir, ".config", "vaguetrie")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "vaguetrie")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "vaguetrie")
	default:
		return filepath.Join(homeDir, ".vaguetrie")
	}
}

// GetConfigPath returns filename inside the resolved config directory, if
// that file exists. It never creates the directory or file; callers fall
// back to defaults when found is false.
func (pr *PathResolver) GetConfigPath(filename string) (path string, found bool) {
	path = filepath.Join(pr.configDir, filename)
	if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
		return path, true
	}
	return path, false
}

// GetExecutableDir returns the directory containing the executable.
func (pr *PathResolver) GetExecutableDir() string {
	return pr.executableDir
}

// GetConfigDir returns the resolved config directory.
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}

// ResolveRelativePath resolves a path relative to the executable directory.
// Absolute paths pass through unchanged.
func (pr *PathResolver) ResolveRelativePath(relativePath string) string {
	if filepath.IsAbs(relativePath) {
		return relativePath
	}
	return filepath.Join(pr.executableDir, relativePath)
}
