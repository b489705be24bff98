// Package cmd wires the modelstore CLI together.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/modelstore/internal/config"
	"github.com/zjrosen/modelstore/internal/log"
)

var (
	version   = "dev"
	cfgFile   string
	debugMode bool
	cfg       config.Config

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:     "modelstore",
	Short:   "An in-memory registry for identifiable object graphs",
	Long: `Modelstore loads identifiable object graphs from a YAML environment file
and answers identifier and traversal queries against them: resolve a short
name anywhere under a stored object, list an element's immediate children,
or find which parent holds a given short name.

Running modelstore without a subcommand opens an interactive browser.`,
	Version: version,
	RunE:    runBrowse,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugMode || os.Getenv("MODELSTORE_DEBUG") != "" {
			cleanup, err := log.Init(".modelstore/debug.log")
			if err != nil {
				return err
			}
			logCleanup = cleanup
			log.SetMinLevel(log.LevelDebug)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/modelstore/config.yaml)")
	rootCmd.PersistentFlags().StringP("env", "e", "",
		"path to the YAML environment file")
	rootCmd.PersistentFlags().Bool("no-cache", false,
		"bypass the read-through lookup cache")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"write debug logs to .modelstore/debug.log")

	_ = viper.BindPFlag("environment_path", rootCmd.PersistentFlags().Lookup("env"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("environment_path", defaults.EnvironmentPath)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("cache.ttl_seconds", defaults.Cache.TTLSeconds)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .modelstore/config.yaml (current directory)
		// 2. ~/.config/modelstore/config.yaml (user config)
		if _, err := os.Stat(".modelstore/config.yaml"); err == nil {
			viper.SetConfigFile(".modelstore/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "modelstore"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .modelstore/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".modelstore/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
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
