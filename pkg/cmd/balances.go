package cmd

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
	"github.com/richy-trading/richy/pkg/style"
	"github.com/richy-trading/richy/pkg/types"
)

func init() {
	balancesCmd.Flags().Bool("extended", false, "show the amounts held by open orders")
	tradeBalanceCmd.Flags().String("asset", "ZUSD", "the quote asset of the summary")

	RootCmd.AddCommand(balancesCmd)
	RootCmd.AddCommand(tradeBalanceCmd)
	RootCmd.AddCommand(positionsCmd)
}

// go run ./cmd/richy balances --extended
var balancesCmd = &cobra.Command{
	Use:          "balances [--extended]",
	Short:        "Show user account balances",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		extended, err := cmd.Flags().GetBool("extended")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		var balances []types.Balance
		if extended {
			m, err := ex.QueryAccountBalances(ctx)
			if err != nil {
				return err
			}

			for _, b := range m {
				balances = append(balances, b)
			}
		} else {
			balances, err = ex.QueryBalances(ctx)
			if err != nil {
				return err
			}
		}

		sort.Slice(balances, func(i, j int) bool {
			return balances[i].Currency < balances[j].Currency
		})

		if extended {
			t := newTable(cmd, "ASSET", "TOTAL", "AVAILABLE", "LOCKED")
			for _, b := range balances {
				t.AppendRow([]interface{}{b.Currency, b.Total, b.Available, b.Locked})
			}
			t.Render()
			return nil
		}

		t := newTable(cmd, "ASSET", "TOTAL")
		for _, b := range balances {
			t.AppendRow([]interface{}{b.Currency, b.Total})
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/richy tradebalance --asset=ZEUR
var tradeBalanceCmd = &cobra.Command{
	Use:          "tradebalance",
	Short:        "show the margin account summary",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		asset, err := cmd.Flags().GetString("asset")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		b, err := ex.QueryTradeBalance(ctx, asset)
		if err != nil {
			return err
		}

		t := newTable(cmd, "FIELD", asset)
		t.AppendRows([]table.Row{
			{"equivalent balance", b.EquivalentBalance},
			{"trade balance", b.TradeBalance},
			{"margin", b.MarginAmount},
			{"unrealized pnl", style.PnLColor(b.UnrealizedNet)},
			{"cost basis", b.Cost},
			{"valuation", b.Valuation},
			{"equity", b.Equity},
			{"free margin", b.FreeMargin},
			{"margin level", b.MarginLevel},
		})
		t.Render()
		return nil
	},
}

// go run ./cmd/richy positions
var positionsCmd = &cobra.Command{
	Use:          "positions",
	Short:        "show the open margin positions",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		positions, err := ex.QueryPositions(ctx)
		if err != nil {
			return err
		}

		t := newTable(cmd, "ID", "PAIR", "TYPE", "VOLUME", "AVG PRICE", "COST", "MARGIN", "VALUE", "PNL", "")
		for _, p := range positions {
			margin := decimalRatio(p.UnrealizedPnL, p.Cost)
			t.AppendRow([]interface{}{
				p.ID, p.Pair, p.Type, p.Volume, p.AvgPrice, p.Cost, p.Margin, p.Value,
				style.PnLColor(p.UnrealizedPnL),
				style.PnLEmojiMargin(p.UnrealizedPnL, margin, style.DefaultPnLLevelResolution),
			})
		}
		t.Render()
		return nil
	},
}
