package domain

// Config represents the libcoords configuration loaded from libcoords.yaml,
// .env and the process environment.
type Config struct {
	Debug  bool
	Format string
	// LogFormat is "json" (default) or "text".
	LogFormat string
	Paths     PathsConfig
	Reports   ReportsConfig
}

type PathsConfig struct {
	DocumentsDir string
	ReportsDir   string
}

type ReportsConfig struct {
	Save  bool
	Index bool
}

// DefaultConfig provides sane defaults if libcoords.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Format:    "pretty",
		LogFormat: "json",
		Paths: PathsConfig{
			DocumentsDir: "documents",
			ReportsDir:   "reports",
		},
		Reports: ReportsConfig{
			Save:  true,
			Index: true,
		},
	}
}
