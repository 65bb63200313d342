// Package cli implements the sessionkit CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/creait/sessionkit/internal/config"
	"github.com/creait/sessionkit/internal/logging"
	"github.com/creait/sessionkit/internal/store"
)

var (
	dbPath     string
	formatFlag string
	configPath string
	logLevel   string

	cfg    = config.Default()
	logger = zerolog.Nop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "sessionkit",
	Short: "Import and manage workshop session plans",
	Long: "Parse hand-typed session planning notes (■ sections, ①–⑩ blocks, ▶ transitions) " +
		"into structured sessions and keep them in a local SQLite database.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $SESSIONKIT_DB or ~/.sessionkit/sessions.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or yaml")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./sessionkit.yaml or ~/.sessionkit/sessionkit.yaml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	switch formatFlag {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (use json or yaml)", formatFlag)
	}

	logger.Debug().Str("command", cmd.Name()).Str("db", getDBPath()).Msg("starting")
	return nil
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func exitErr(msg string, err error) {
	logger.Debug().Err(err).Str("op", msg).Msg("command failed")
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
