package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lraycheva/core-sub003/internal/config"
	"github.com/lraycheva/core-sub003/internal/log"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	closeLog = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Apply workspace layouts with cascading lock configuration",
	Long: `Drive a reference workspace manager from layout definition files.

A layout is a tree of workspace, row, column, group and window nodes. Lock
properties set anywhere in the definition are pushed onto the live items,
and every resulting event is printed as a JSON line.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLog()
		closeLog = func() {}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/workspaces/config.yaml)")
	rootCmd.PersistentFlags().String("log-file", "",
		"write debug log to this file")
	rootCmd.PersistentFlags().String("log-level", "",
		"minimum log level: debug, info, warn, error")

	_ = viper.BindPFlag("log.path", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .workspaces/config.yaml (current directory)
		// 2. ~/.config/workspaces/config.yaml (user config)
		if _, err := os.Stat(".workspaces/config.yaml"); err == nil {
			viper.SetConfigFile(".workspaces/config.yaml")
		} else {
			viper.AddConfigPath(config.DefaultDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the user default
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && config.DefaultDir() != "" {
			defaultPath := filepath.Join(config.DefaultDir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}
}

// setup validates the loaded configuration and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	switch {
	case cfg.Log.Path != "":
		cleanup, err := log.Init(cfg.Log.Path)
		if err != nil {
			return err
		}
		closeLog = cleanup
	case cfg.Log.Enabled:
		log.InitWriter(cmd.ErrOrStderr())
	default:
		return nil
	}
	log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
	log.Debug(log.CatCLI, "Starting command", "command", cmd.CommandPath(), "config", viper.ConfigFileUsed())
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
