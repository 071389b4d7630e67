package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/cli"
	"github.com/example/farmhand/internal/version"
	"github.com/example/farmhand/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "farmhand",
		Short:   "farmhand - day-to-day farm operations",
		Version: version.String(),
		Long: `farmhand tracks farms, crops, field tasks, income and expenses, and
supply inventory, and summarizes them into dashboards and reports.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DashboardCmd())

	// Records
	rootCmd.AddCommand(cli.FarmCmd())
	rootCmd.AddCommand(cli.CropCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.TxnCmd())
	rootCmd.AddCommand(cli.InventoryCmd())

	// Reports
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.VersionCmd())

	err := rootCmd.Execute()
	if cerr := wire.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
