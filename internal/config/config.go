// Package config loads CLI configuration from flags, environment, .env files
// and an optional .roadshow.yaml file.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/Ayman2G/Affinity-alg/pkg/roadshow/grid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys understood by Load. Environment variables use the ROADSHOW_ prefix
// (ROADSHOW_OUTPUT_DIR, ...); the log keys also accept LOG_LEVEL/LOG_FORMAT.
const (
	KeyTemplate  = "template"
	KeySheet     = "sheet"
	KeyOutputDir = "output_dir"
	KeyLayout    = "layout"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Config holds the resolved settings of a run.
type Config struct {
	// TemplatePath is the workbook to populate; empty means the built-in template.
	TemplatePath string
	// Sheet overrides the layout's sheet name when set.
	Sheet string
	// OutputDir receives the timestamped workbook; empty disables saving.
	OutputDir string
	// LayoutPath is an optional YAML layout file.
	LayoutPath string

	LogLevel  string
	LogFormat string

	// ConfigFile is the config file that was read, if any.
	ConfigFile string
}

// Load resolves configuration in order of precedence:
// 1. Flags bound to v by the caller
// 2. Environment variables
// 3. .env.local, then .env
// 4. Config file (configFile, or .roadshow.yaml in the working or home directory)
// 5. Defaults
func Load(v *viper.Viper, configFile string) (*Config, error) {
	loadEnvFiles()

	v.SetEnvPrefix("ROADSHOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyLogLevel, "ROADSHOW_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv(KeyLogFormat, "ROADSHOW_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, err
	}

	v.SetDefault(KeySheet, grid.DefaultSheet)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "auto")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".roadshow")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		TemplatePath: v.GetString(KeyTemplate),
		Sheet:        v.GetString(KeySheet),
		OutputDir:    v.GetString(KeyOutputDir),
		LayoutPath:   v.GetString(KeyLayout),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		ConfigFile:   v.ConfigFileUsed(),
	}, nil
}

// Layout returns the layout from LayoutPath (or the default) with the sheet
// override applied.
func (c *Config) Layout() (grid.Layout, error) {
	l := grid.DefaultLayout()
	if c.LayoutPath != "" {
		var err error
		if l, err = grid.LoadLayout(c.LayoutPath); err != nil {
			return l, err
		}
	}
	if c.Sheet != "" {
		l.Sheet = c.Sheet
	}
	return l, l.Validate()
}

// loadEnvFiles loads .env.local then .env; existing variables are never
// overwritten, so .env.local wins over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
