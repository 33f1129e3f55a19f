package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kozaktomas/mrzname/internal/config"
	"github.com/kozaktomas/mrzname/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "mrzname",
	Short: "Extract MRZ-ready person names from FollowTheMoney entities",
	Long: `mrzname reads FollowTheMoney (FTM) entity exports such as OpenSanctions
datasets and turns every person into one record per Latin spelling of their
name, cleaned the way names are printed in the machine readable zone of
passports. Cyrillic and Arabic names are transliterated when no Latin
spelling exists.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("config", "", "YAML config file overriding environment settings")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from LOG_LEVEL or info)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: console or json (default from LOG_FORMAT or console)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}

// loadConfig builds the configuration from environment variables, the
// optional --config file and the persistent logging flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Load()

	if path := mustGetString(cmd, "config"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if level := mustGetString(cmd, "log-level"); level != "" {
		cfg.Log.Level = level
	}
	if format := mustGetString(cmd, "log-format"); format != "" {
		cfg.Log.Format = format
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg.Log.
func newLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	return logger, nil
}
