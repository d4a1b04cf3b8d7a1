package main

import (
	"os"

	"github.com/spf13/cobra"

	"inkpress/internal/interfaces/cli/migrate"
	"inkpress/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inkpress",
		Short: "Inkpress - a content publishing platform",
		Long:  `Inkpress serves articles with tag organization and premium subscription gating, with built-in migration tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
