package main

import (
	"fmt"
	"os"

	"github.com/rbtvdl/rbtvdl/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a commented default config",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagConfig
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file that would be used",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagConfig != "" {
				fmt.Println(flagConfig)
				return nil
			}
			path, err := config.Discover()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	})

	rootCmd.AddCommand(configCmd)
}
