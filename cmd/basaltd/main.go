package main

import (
	"fmt"
	"os"

	"github.com/basaltmc/basalt/server"
	"github.com/spf13/cobra"
)

// version is set by the release build; development builds report "dev".
var version = "dev"

func main() {
	rootCmd := &cobra.Command{Use: "basaltd"}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the server, listening for client connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			srv, err := server.New(cfg, server.NewLogger())
			if err != nil {
				return err
			}
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "config.toml", "path to the server's TOML config file")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
