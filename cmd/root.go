/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/bestroute/params"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string
var optVerbosity int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bestroute",
	Short: "Find the best of many recorded drives along one route",
	Long: `bestroute reads GPS receiver logs (NMEA $GPRMC sentences) of trips driven between
two known points, finds each trip's turns and stops, scores it, and picks the cheapest trip.

Configuration is read from $HOME/.bestroute.yaml (or --config), then BESTROUTE_* environment
variables, then flags. Nested keys use underscores in the environment, e.g. BESTROUTE_COST_MODE=legacy.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.bestroute.yaml)")
	rootCmd.PersistentFlags().IntVar(&optVerbosity, "verbosity", int(slog.LevelInfo), "Log level (-4 debug, 0 info, 4 warn, 8 error)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		expanded, err := homedir.Expand(cfgFile)
		cobra.CheckErr(err)
		viper.SetConfigFile(expanded)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bestroute")
	}

	bindEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Info("Using config file", "path", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
		cobra.CheckErr(fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err))
	}
}

// bindEnv reads BESTROUTE_* variables, e.g. BESTROUTE_STOPS_SIGNAL_MAX for stops.signal_max.
func bindEnv() {
	viper.SetEnvPrefix("BESTROUTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// setDefaults registers every key of a config struct with its default value.
// Viper only looks up the environment for keys it knows.
func setDefaults(prefix string, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if field := v.Field(i); field.Kind() == reflect.Struct {
			setDefaults(key, field)
			continue
		}
		viper.SetDefault(key, v.Field(i).Interface())
	}
}

// bindFlags binds the running command's flags to nested config keys.
// Commands bind in PreRun so that flags with the same key on other commands do not shadow them.
func bindFlags(flags *pflag.FlagSet, keyFlags map[string]string) {
	for key, name := range keyFlags {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(name)))
	}
}

// loadConfig overlays the config file, environment and bound flags on the defaults.
func loadConfig() (*params.Config, error) {
	cfg := params.DefaultConfig()
	setDefaults("", reflect.ValueOf(cfg).Elem())
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	dir, err := homedir.Expand(cfg.Export.Dir)
	if err != nil {
		return nil, err
	}
	cfg.Export.Dir = filepath.Clean(dir)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	level := slog.Level(optVerbosity)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.SetLogLoggerLevel(level)
	slog.Debug("Logging", "level", level.String(), "command", cmd.Name(), "args", args)
}
