package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pagekit/pkg/assetversion"
	"github.com/dmitrymomot/pagekit/pkg/config"
)

var assetsVersionCmd = &cobra.Command{
	Use:   "assets-version",
	Short: "Print the version token of the public asset directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg assetversion.Config
		if err := config.Load(&cfg, loadOptions()...); err != nil {
			return err
		}
		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			cfg.Dir = dir
		}
		v, err := assetversion.Compute(os.DirFS(cfg.Dir), cfg.Length)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
		return err
	},
}

func init() {
	assetsVersionCmd.Flags().String("dir", "", "asset directory (defaults to ASSETS_DIR)")
	rootCmd.AddCommand(assetsVersionCmd)
}
