package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-records/internal/config"
	"github.com/i474232898/weather-records/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfg *config.AppConfig

	rootCmd := &cobra.Command{
		Use:          "weather-records",
		Short:        "weather-records serves weather observations and lookups",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(v)
			if err != nil {
				return err
			}
			if err := logging.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			log.Debug().Str("config", v.ConfigFileUsed()).Str("db_driver", cfg.DBDriver).
				Msg("loaded configuration")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "auto", "log format (auto, json, text)")
	cobra.CheckErr(v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(v.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format")))

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
	serveCmd.Flags().String("port", "4000", "listen port")
	serveCmd.Flags().String("db-driver", "sqlite3", "database driver (sqlite3, postgres, memory)")
	serveCmd.Flags().String("db-dsn", "./weather.db", "database data source")
	cobra.CheckErr(v.BindPFlag("port", serveCmd.Flags().Lookup("port")))
	cobra.CheckErr(v.BindPFlag("db_driver", serveCmd.Flags().Lookup("db-driver")))
	cobra.CheckErr(v.BindPFlag("db_dsn", serveCmd.Flags().Lookup("db-dsn")))

	rootCmd.AddCommand(serveCmd, newLookupCmd(func() *config.AppConfig { return cfg }))
	return rootCmd
}
