package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/libcoords/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileName marks a workspace root.
const ConfigFileName = "libcoords.yaml"

// Environment overrides, applied after libcoords.yaml.
const (
	EnvDebug        = "LIBCOORDS_DEBUG"
	EnvFormat       = "LIBCOORDS_FORMAT"
	EnvDocumentsDir = "LIBCOORDS_DOCUMENTS_DIR"
	EnvReportsDir   = "LIBCOORDS_REPORTS_DIR"
	EnvLogFormat    = "LIBCOORDS_LOG_FORMAT"
)

// LoadConfig loads libcoords.yaml from the workspace root, applies defaults,
// then overlays <root>/.env and the process environment.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Libcoords.Debug != nil {
		cfg.Debug = *y.Libcoords.Debug
	}
	if y.Libcoords.Format != "" {
		cfg.Format = y.Libcoords.Format
	}
	if y.Libcoords.LogFormat != "" {
		cfg.LogFormat = strings.ToLower(y.Libcoords.LogFormat)
	}
	if y.Libcoords.Paths.DocumentsDir != "" {
		cfg.Paths.DocumentsDir = y.Libcoords.Paths.DocumentsDir
	}
	if y.Libcoords.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Libcoords.Paths.ReportsDir
	}
	if y.Libcoords.Reports.Save != nil {
		cfg.Reports.Save = *y.Libcoords.Reports.Save
	}
	if y.Libcoords.Reports.Index != nil {
		cfg.Reports.Index = *y.Libcoords.Reports.Index
	}

	if err := ApplyEnv(root, &cfg); err != nil {
		return cfg, err
	}
	if err := checkLogFormat(cfg.LogFormat); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// ApplyEnv overlays <root>/.env and LIBCOORDS_* variables onto cfg.
// Variables already set in the process win over the .env file; a missing
// .env file is not an error.
func ApplyEnv(root string, cfg *domain.Config) error {
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return &domain.OpError{
				Op:   "workspacefinder.loadenv",
				Kind: domain.KindInvalidConfig,
				Path: envPath,
				Err:  err,
			}
		}
	}

	if v, ok := lookup(EnvDebug); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return &domain.OpError{
				Op:   "workspacefinder.loadenv",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("%s=%q: %w", EnvDebug, v, domain.ErrInvalidConfig),
			}
		}
		cfg.Debug = debug
	}
	if v, ok := lookup(EnvFormat); ok {
		cfg.Format = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup(EnvDocumentsDir); ok {
		cfg.Paths.DocumentsDir = v
	}
	if v, ok := lookup(EnvReportsDir); ok {
		cfg.Paths.ReportsDir = v
	}
	return nil
}

func checkLogFormat(f string) error {
	switch f {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("log_format %q (want json or text): %w", f, domain.ErrInvalidConfig)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

type yamlConfig struct {
	Libcoords struct {
		Debug     *bool  `yaml:"debug"`
		Format    string `yaml:"format"`
		LogFormat string `yaml:"log_format"`

		Paths struct {
			DocumentsDir string `yaml:"documents_dir"`
			ReportsDir   string `yaml:"reports_dir"`
		} `yaml:"paths"`

		Reports struct {
			Save  *bool `yaml:"save"`
			Index *bool `yaml:"index"`
		} `yaml:"reports"`
	} `yaml:"libcoords"`
}
