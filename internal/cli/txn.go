package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/farmhand/internal/ports/primary"
	"github.com/example/farmhand/internal/wire"
)

var txnFields = []field{
	{"farm", "farmId", "Farm id"},
	{"type", "type", "income or expense"},
	{"category", "category", "Category, e.g. Seeds or Grain Sales"},
	{"amount", "amount", "Positive amount"},
	{"date", "date", "Transaction date (YYYY-MM-DD)"},
	{"description", "description", "What the transaction was for"},
}

// TxnCmd returns the txn command
func TxnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "txn",
		Aliases: []string{"transaction"},
		Short:   "Record and review income and expenses",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			var f primary.TransactionFilters
			f.FarmID, _ = cmd.Flags().GetString("farm")
			f.Type, _ = cmd.Flags().GetString("type")
			f.From, _ = cmd.Flags().GetString("from")
			f.To, _ = cmd.Flags().GetString("to")
			return wire.TransactionAdapter().List(ctx, f)
		},
	}
	list.Flags().String("farm", "all", "Filter by farm id")
	list.Flags().String("type", "all", "income, expense or all")
	list.Flags().String("from", "", "Earliest date (YYYY-MM-DD)")
	list.Flags().String("to", "", "Latest date (YYYY-MM-DD)")
	cmd.AddCommand(list)

	ledger := &cobra.Command{
		Use:   "ledger",
		Short: "Show the ledger newest first with overall totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			farm, _ := cmd.Flags().GetString("farm")
			txnType, _ := cmd.Flags().GetString("type")
			return wire.SummaryAdapter().Finances(ctx, primary.FinanceRequest{FarmID: farm, Type: txnType})
		},
	}
	ledger.Flags().String("farm", "all", "Filter by farm id")
	ledger.Flags().String("type", "all", "income, expense or all")
	cmd.AddCommand(ledger)

	cmd.AddCommand(&cobra.Command{
		Use:   "rollup",
		Short: "Show income and expense per month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.SummaryAdapter().Rollup(ctx)
		},
	})

	create := &cobra.Command{
		Use:   "create",
		Short: "Record a transaction",
		Long: `Record a transaction.

Example:
  farmhand txn create --farm 1 --type expense --category Fuel --amount 182.40 --date 2024-06-03`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.TransactionAdapter().Create(ctx, flagPayload(cmd, txnFields))
		},
	}
	addFields(create, txnFields)
	cmd.AddCommand(create)

	update := &cobra.Command{
		Use:   "update [txn-id]",
		Short: "Correct a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.TransactionAdapter().Update(ctx, args[0], flagPayload(cmd, txnFields))
		},
	}
	addFields(update, txnFields)
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete [txn-id]",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			return wire.TransactionAdapter().Delete(ctx, args[0])
		},
	})

	return cmd
}
