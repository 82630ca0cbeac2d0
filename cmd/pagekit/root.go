package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pagekit/pkg/config"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "pagekit",
	Short: "Server-rendered pages with negotiated HTML and data responses",
	Long: `pagekit serves full HTML documents to browsers and string or JSON
fragments to scripts from the same routes. Configuration is read from the
environment and optional dotenv files.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files loaded before reading the environment")
}

func loadOptions() []config.LoadOption {
	if len(envFiles) == 0 {
		return nil
	}
	return []config.LoadOption{config.WithEnvFiles(envFiles...)}
}
