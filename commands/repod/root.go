// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package repod

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BOXFoundation/repod/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger
var logger = log.NewLogger("repod")

// root command
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "repod",
	Short: "repod command-line interface",
	Long: `repod, a multi-repository object store with a weight bounded
			object/reference cache in front of its persistence backends.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.repod.yaml)")

	rootCmd.PersistentFlags().String("workspace", "", "work directory for repod (default ~/.repod)")
	viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))

	rootCmd.PersistentFlags().String("repository", "", "repository id to serve")
	viper.BindPFlag("repository.repository_id", rootCmd.PersistentFlags().Lookup("repository"))

	rootCmd.PersistentFlags().String("database", "memdb", "database backend name")
	viper.BindPFlag("database.name", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().Uint32("cache-capacity-mb", 64, "cache capacity in MB")
	viper.BindPFlag("cache.capacity_mb", rootCmd.PersistentFlags().Lookup("cache-capacity-mb"))

	rootCmd.PersistentFlags().Duration("reference-ttl", 0, "reference cache ttl, <= 0 disables the reference cache")
	viper.BindPFlag("cache.reference_ttl", rootCmd.PersistentFlags().Lookup("reference-ttl"))

	rootCmd.PersistentFlags().Duration("reference-negative-ttl", 0, "negative reference cache ttl")
	viper.BindPFlag("cache.reference_negative_ttl", rootCmd.PersistentFlags().Lookup("reference-negative-ttl"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory or current directory with name ".repod" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".repod")
	}

	viper.SetEnvPrefix("repod")
	viper.SetEnvKeyReplacer(strings.NewReplacer("_", "."))
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("workspace", path.Join(home, ".repod"))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
