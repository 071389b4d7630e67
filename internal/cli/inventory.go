package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/wire"
)

var inventoryFields = []field{
	{"name", "name", "Item name"},
	{"category", "category", "Category (Seeds, Fertilizers, Fuel, ...)"},
	{"unit", "unit", "Unit of measure, e.g. bags"},
	{"current", "currentStock", "Current stock"},
	{"max", "maxCapacity", "Maximum capacity"},
	{"min", "minimumThreshold", "Reorder threshold"},
	{"supplier", "supplier", "Optional supplier"},
}

// InventoryCmd returns the inventory command
func InventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Track supplies and stock levels",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List inventory items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			category, _ := cmd.Flags().GetString("category")
			return wire.InventoryAdapter().List(ctx, category)
		},
	}
	list.Flags().String("category", "all", "Filter by category")
	cmd.AddCommand(list)

	report := &cobra.Command{
		Use:   "report",
		Short: "Show stock levels as a share of capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			category, _ := cmd.Flags().GetString("category")
			return wire.SummaryAdapter().Stock(ctx, category)
		},
	}
	report.Flags().String("category", "all", "Filter by category")
	cmd.AddCommand(report)

	low := &cobra.Command{
		Use:   "low",
		Short: "List items at or below their reorder threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			category, _ := cmd.Flags().GetString("category")
			return wire.InventoryAdapter().Low(ctx, category)
		},
	}
	low.Flags().String("category", "all", "Filter by category")
	cmd.AddCommand(low)

	cmd.AddCommand(&cobra.Command{
		Use:   "set-stock [item-id] [amount]",
		Short: "Set an item's stock level and stamp the restock time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("amount must be a whole number: %q", args[1])
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.InventoryAdapter().SetStock(ctx, args[0], amount)
		},
	})

	create := &cobra.Command{
		Use:   "create",
		Short: "Add an inventory item",
		Long: `Add an inventory item.

Example:
  farmhand inventory create --name "Seed Corn" --category Seeds --unit bags --current 40 --max 200 --min 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.InventoryAdapter().Create(ctx, flagPayload(cmd, inventoryFields))
		},
	}
	addFields(create, inventoryFields)
	cmd.AddCommand(create)

	update := &cobra.Command{
		Use:   "update [item-id]",
		Short: "Edit an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.InventoryAdapter().Update(ctx, args[0], flagPayload(cmd, inventoryFields))
		},
	}
	addFields(update, inventoryFields)
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [item-id]",
		Short: "Delete an inventory item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.InventoryAdapter().Delete(ctx, args[0])
		},
	})

	return cmd
}
