package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/wire"
)

var cropFields = []field{
	{"farm", "farmId", "Owning farm id"},
	{"name", "name", "Optional crop name"},
	{"type", "cropType", "Crop type (Corn, Soybeans, Wheat, ...)"},
	{"planted", "plantingDate", "Planting date (YYYY-MM-DD)"},
	{"harvest", "expectedHarvestDate", "Expected harvest date (YYYY-MM-DD)"},
	{"status", "status", "Growth status (Seeding, Growing, ...)"},
	{"area", "area", "Area in acres"},
	{"notes", "notes", "Free-form notes"},
}

// CropCmd returns the crop command
func CropCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crop",
		Short: "Manage crops planted on farms",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List crops",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			farm, _ := cmd.Flags().GetString("farm")
			status, _ := cmd.Flags().GetString("status")
			return wire.CropAdapter().List(ctx, primary.CropFilters{FarmID: farm, Status: status})
		},
	}
	list.Flags().String("farm", "all", "Filter by farm id")
	list.Flags().String("status", "all", "Filter by status")
	cmd.AddCommand(list)

	create := &cobra.Command{
		Use:   "create",
		Short: "Plant a crop",
		Long: `Plant a crop.

Example:
  farmhand crop create --farm 1 --type Corn --planted 2024-04-20 --harvest 2024-09-15 --status Seeding --area 40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.CropAdapter().Create(ctx, flagPayload(cmd, cropFields))
		},
	}
	addFields(create, cropFields)
	cmd.AddCommand(create)

	update := &cobra.Command{
		Use:   "update [crop-id]",
		Short: "Update a crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.CropAdapter().Update(ctx, args[0], flagPayload(cmd, cropFields))
		},
	}
	addFields(update, cropFields)
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [crop-id]",
		Short: "Delete a crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.CropAdapter().Delete(ctx, args[0])
		},
	})

	return cmd
}
