package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/wire"
)

var farmFields = []field{
	{"name", "name", "Farm name"},
	{"location", "location", "Where the farm is"},
	{"size", "size", "Size as a positive number"},
	{"unit", "sizeUnit", "Size unit: acres, hectares or square_feet"},
}

// FarmCmd returns the farm command
func FarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "farm",
		Short: "Manage farms",
		Long:  "Create, list, and manage farms. Deleting a farm leaves its crops, tasks and transactions in place.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List farms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.FarmAdapter().List(ctx)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [farm-id]",
		Short: "Show farm details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.FarmAdapter().Show(ctx, args[0])
		},
	})

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a farm",
		Long: `Create a farm.

Example:
  farmhand farm create --name "Willow Creek" --location "Story County, IA" --size 120 --unit acres`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.FarmAdapter().Create(ctx, flagPayload(cmd, farmFields))
		},
	}
	addFields(create, farmFields)
	cmd.AddCommand(create)

	update := &cobra.Command{
		Use:   "update [farm-id]",
		Short: "Update a farm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.FarmAdapter().Update(ctx, args[0], flagPayload(cmd, farmFields))
		},
	}
	addFields(update, farmFields)
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [farm-id]",
		Short: "Delete a farm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.FarmAdapter().Delete(ctx, args[0])
		},
	})

	return cmd
}
