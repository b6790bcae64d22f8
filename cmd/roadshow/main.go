// Package main provides the CLI entry point for the roadshow populator.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ayman2G/Affinity-alg/internal/config"
	"github.com/Ayman2G/Affinity-alg/internal/logging"
	"github.com/Ayman2G/Affinity-alg/pkg/roadshow"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// exitSaveFailed is the exit status when the workbook was generated but
// could not be saved.
const exitSaveFailed = 2

var (
	configFile string
	v          = viper.New()
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, roadshow.ErrSaveFailed) {
			os.Exit(exitSaveFailed)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roadshow",
		Short: "Populate the roadshow Excel template from tracker CSV exports",
		Long: `roadshow joins the deal export, the notes export and the associated
persons export, and writes the result into the roadshow Excel template.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is .roadshow.yaml in the working or home directory)")
	flags.String("template", "", "Excel template to populate (default: built-in template)")
	flags.String("sheet", "", "Sheet to populate (default \"Suivi du Roadshow\")")
	flags.String("layout", "", "YAML file overriding the template layout")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: auto, console, json")

	bindFlag(flags.Lookup("template"), config.KeyTemplate)
	bindFlag(flags.Lookup("sheet"), config.KeySheet)
	bindFlag(flags.Lookup("layout"), config.KeyLayout)
	bindFlag(flags.Lookup("log-level"), config.KeyLogLevel)
	bindFlag(flags.Lookup("log-format"), config.KeyLogFormat)

	rootCmd.AddCommand(newPopulateCommand())
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newTemplateCommand())
	return rootCmd
}

func bindFlag(flag *pflag.Flag, key string) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind %s flag: %v", key, err))
	}
}

// setup loads configuration and builds the logger for a command.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logger := logging.New(logCfg, cmd.ErrOrStderr())
	if cfg.ConfigFile != "" {
		logger.Debug().Str("file", cfg.ConfigFile).Msg("loaded config file")
	}
	return cfg, logger, nil
}
