package main

import (
	"os"

	"github.com/spf13/cobra"

	"warrantydesk/internal/interfaces/cli/hashpw"
	"warrantydesk/internal/interfaces/cli/migrate"
	"warrantydesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "warrantydesk",
		Short: "WarrantyDesk - warranty and repair ticket tracker",
		Long:  `WarrantyDesk tracks registered products, their warranty coverage, and the repair tickets raised against them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		hashpw.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
