package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/wire"
)

const defaultExportPath = "farmhand.xlsx"

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export finances and stock levels to an Excel workbook",
		Long: `Write an .xlsx workbook with the monthly rollup, the full ledger and
current stock levels. The path defaults to ` + defaultExportPath + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultExportPath
			if len(args) == 1 {
				path = args[0]
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.ExportAdapter().Export(ctx, path)
		},
	}
}
