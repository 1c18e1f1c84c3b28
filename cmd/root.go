// Package cmd implements the bluekompass command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/bluekompass/bluekompass/internal/app"
	"github.com/bluekompass/bluekompass/internal/config"
	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	modeName   string
	logLevel   string

	cfg    *config.Config
	logger = logrus.StandardLogger()
)

var rootCmd = &cobra.Command{
	Use:   "bluekompass [image]",
	Short: "Annotate images with lines and circles",
	Long: `BlueKompass is a 2D annotation editor. Open an image and draw line segments
and three-point circles on it, then select, drag and delete them.

Modes: 1/D drag, 2/S select, 3/L line, 4/C circle.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.Options{Config: cfg, Log: logger}
		if len(args) == 1 {
			opts.ImagePath = args[0]
		}
		return app.Run(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides the config file)")
	rootCmd.Flags().StringVarP(&modeName, "mode", "m", "", "initial mode: drag, select, line or circle")
}

// setup loads the configuration and configures logging
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	if modeName != "" {
		if _, err := editor.ParseMode(modeName); err != nil {
			return err
		}
		cfg.Editor.InitialMode = modeName
	}
	if logLevel != "" {
		if _, err := logrus.ParseLevel(logLevel); err != nil {
			return err
		}
		cfg.Log.Level = logLevel
	}

	cfg.Log.Configure(logger)
	logger.WithField("config", configPath).Debug("configuration loaded")
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
