package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/config"
	"github.com/example/farmhand/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize farmhand in the current directory",
		Long: `Write .farmhand/config.json in the current directory and, for the
sqlite store, create the database with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			cfg, err := config.Default()
			if err != nil {
				return err
			}
			store, _ := cmd.Flags().GetString("store")
			cfg.Store = store
			dbPath, _ := cmd.Flags().GetString("db")
			if dbPath == "" {
				dbPath = db.DefaultPath(filepath.Join(cwd, config.DirName))
			}
			cfg.DBPath = dbPath
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}
			fmt.Printf("✓ Config written to %s\n", filepath.Join(config.DirName, "config.json"))

			if cfg.Store == config.StoreSQLite {
				ctx, cancel := commandContext(cmd)
				defer cancel()
				database, err := db.Open(ctx, cfg.DBPath)
				if err != nil {
					return err
				}
				database.Close()
				fmt.Printf("✓ Database initialized at %s\n", cfg.DBPath)
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println(`  farmhand farm create --name "Home Farm" --location "Story County, IA" --size 80 --unit acres`)
			fmt.Println("  farmhand dashboard")
			return nil
		},
	}
	cmd.Flags().String("store", config.StoreSQLite, "Record store: sqlite or memory")
	cmd.Flags().String("db", "", "SQLite database path (default .farmhand/farmhand.db)")
	return cmd
}
