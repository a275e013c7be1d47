package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// Everything is resolved relative to the executable directory, never the
// current working directory, so the tools behave the same wherever they
// are launched from.
//
// Directory structure:
//
//	mergexml/
//	  ├── config.yaml
//	  ├── data/
//	  │   ├── source/   (payment XML files + schema, input)
//	  │   └── target/   (merged total documents, output)
//	  └── logs/
type Paths struct {
	ExecutableDir string
	DataDir       string
	SourceDir     string
	TargetDir     string
	LogsDir       string
}

// GetPaths returns the application paths relative to the executable location
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	exeDir := filepath.Dir(exe)
	dataDir := filepath.Join(exeDir, "data")

	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       dataDir,
		SourceDir:     filepath.Join(dataDir, "source"),
		TargetDir:     filepath.Join(dataDir, "target"),
		LogsDir:       filepath.Join(exeDir, "logs"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.SourceDir, p.TargetDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// FileExists checks whether a path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
