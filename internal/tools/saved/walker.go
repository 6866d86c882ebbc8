package saved

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedFS is a package-level variable that can be set with the embedded
// query library before loading.
var EmbeddedFS embed.FS

// WalkQueryLibrary loads all YAML saved-query definitions. It first attempts
// the embedded filesystem, falling back to the OS directory for development.
func WalkQueryLibrary(libraryDir string) ([]*SavedQueryConfig, error) {
	configs, err := walkEmbeddedLibrary()
	if err == nil && len(configs) > 0 {
		slog.Info("loaded saved queries from embedded filesystem", "count", len(configs))
		return configs, nil
	}

	return walkOSLibrary(libraryDir)
}

func walkEmbeddedLibrary() ([]*SavedQueryConfig, error) {
	var configs []*SavedQueryConfig

	if _, err := fs.Stat(EmbeddedFS, "."); err != nil {
		return nil, fmt.Errorf("embedded FS not available")
	}

	err := fs.WalkDir(EmbeddedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(d.Name()) {
			return nil
		}

		data, err := EmbeddedFS.ReadFile(path)
		if err != nil {
			slog.Error("failed to read embedded saved query", "path", path, "error", err)
			return err
		}

		config, err := parseSavedQueryConfig(data, path)
		if err != nil {
			slog.Error("failed to parse embedded saved query", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Debug("loaded saved query from embedded FS", "tool", config.Name, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded query library: %w", err)
	}

	return configs, nil
}

func walkOSLibrary(libraryDir string) ([]*SavedQueryConfig, error) {
	var configs []*SavedQueryConfig

	if _, err := os.Stat(libraryDir); os.IsNotExist(err) {
		slog.Warn("saved query directory does not exist", "dir", libraryDir)
		return configs, nil
	}

	err := filepath.Walk(libraryDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isYAML(info.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read saved query file", "path", path, "error", err)
			return err
		}

		config, err := parseSavedQueryConfig(data, path)
		if err != nil {
			slog.Error("failed to parse saved query file", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Debug("loaded saved query from filesystem", "tool", config.Name, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk query library directory: %w", err)
	}

	return configs, nil
}

func parseSavedQueryConfig(data []byte, path string) (*SavedQueryConfig, error) {
	var config SavedQueryConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := config.validate(path); err != nil {
		return nil, err
	}
	return &config, nil
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
