package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"hacker-menu/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	appCfg  config.Config
)

// rootCmd is the base command; without a subcommand it opens the listing.
var rootCmd = &cobra.Command{
	Use:   "hacker-menu",
	Short: "Live Hacker News listing in the terminal",
	Long:  "Browse, sort and open Hacker News posts. Runs the interactive listing by default.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return menuCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("list", "", "story list: top, new, best, ask, show, job")
	rootCmd.PersistentFlags().Int("limit", 0, "number of posts to fetch")
	_ = viper.BindPFlag("sources.hn.list", rootCmd.PersistentFlags().Lookup("list"))
	_ = viper.BindPFlag("sources.hn.limit", rootCmd.PersistentFlags().Lookup("limit"))
}

func initConfig() {
	cfg, err := loadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	appCfg = cfg
}

// loadConfig reads the config file (if any) and HACKER_MENU_* environment
// overrides into a Config with defaults filled in.
func loadConfig(v *viper.Viper, file string) (config.Config, error) {
	var cfg config.Config
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hacker-menu")
		v.AddConfigPath("configs")
	}
	v.SetEnvPrefix("HACKER_MENU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, val := range config.Defaults() {
		v.SetDefault(key, val)
	}

	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return cfg, fmt.Errorf("error reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.FillDefaults()
	return cfg, nil
}

// GetConfig exposes the loaded configuration to subcommands.
func GetConfig() config.Config {
	return appCfg
}
