package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/wire"
)

var taskFields = []field{
	{"farm", "farmId", "Farm id"},
	{"crop", "cropId", "Optional crop id"},
	{"title", "title", "What needs doing"},
	{"type", "type", "Task type (Watering, Harvesting, ...)"},
	{"due", "dueDate", "Due date (YYYY-MM-DD)"},
	{"notes", "notes", "Free-form notes"},
}

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage farm tasks",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks sorted by due date. --view is one of all, pending, completed or overdue.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			view, _ := cmd.Flags().GetString("view")
			farm, _ := cmd.Flags().GetString("farm")
			crop, _ := cmd.Flags().GetString("crop")
			return wire.TaskAdapter().List(ctx, primary.TaskFilters{FarmID: farm, CropID: crop, Status: view})
		},
	}
	list.Flags().String("view", "all", "all, pending, completed or overdue")
	list.Flags().String("farm", "all", "Filter by farm id")
	list.Flags().String("crop", "all", "Filter by crop id")
	cmd.AddCommand(list)

	week := &cobra.Command{
		Use:   "week",
		Short: "Show this week's tasks day by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			farm, _ := cmd.Flags().GetString("farm")
			return wire.SummaryAdapter().Week(ctx, farm)
		},
	}
	week.Flags().String("farm", "all", "Filter by farm id")
	cmd.AddCommand(week)

	create := &cobra.Command{
		Use:   "create",
		Short: "Schedule a task",
		Long: `Schedule a task.

Example:
  farmhand task create --farm 1 --title "Irrigate east field" --type Watering --due 2024-06-20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.TaskAdapter().Create(ctx, flagPayload(cmd, taskFields))
		},
	}
	addFields(create, taskFields)
	cmd.AddCommand(create)

	update := &cobra.Command{
		Use:   "update [task-id]",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.TaskAdapter().Update(ctx, args[0], flagPayload(cmd, taskFields))
		},
	}
	addFields(update, taskFields)
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle [task-id]",
		Short: "Mark a task completed, or reopen it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.TaskAdapter().Toggle(ctx, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.TaskAdapter().Delete(ctx, args[0])
		},
	})

	return cmd
}
