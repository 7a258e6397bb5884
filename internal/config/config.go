package config

// Config holds runtime settings for the lifekeeper CLI.
//
// Fields:
//   - DatabasePath: sqlite DSN/path of the local store.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "lifekeeper.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
