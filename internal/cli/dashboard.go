package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/wire"
)

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"status"},
		Short:   "Show headline stats with upcoming and overdue tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if !cmd.Flags().Changed("limit") {
				limit = wire.Config().UpcomingLimit
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.SummaryAdapter().Dashboard(ctx, limit)
		},
	}
	cmd.Flags().Int("limit", 0, "Number of upcoming tasks to show (default from config)")
	return cmd
}
