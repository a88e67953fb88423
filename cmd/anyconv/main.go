// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the anyconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the anyconv CLI.
var rootCmd = &cobra.Command{
	Use:   "anyconv",
	Short: "Convert files between formats within the same category",
	Long: `anyconv converts a file from one format to another by shelling out to a
pre-installed external tool: ffmpeg for audio and video, magick for images,
and soffice for documents, spreadsheets, and presentations.

Only conversions within the same category are supported. Run "anyconv formats"
to list the supported extensions per category.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./anyconv.yaml or ~/.config/anyconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("anyconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "anyconv"))
		}
	}

	viper.SetEnvPrefix("ANYCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
