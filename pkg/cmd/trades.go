package cmd

import (
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
	"github.com/richy-trading/richy/pkg/types"
)

func init() {
	tradesCmd.Flags().String("pair", "", "the trading pair, like XBTUSD")
	tradesCmd.Flags().Int("count", 50, "the number of recent trades")

	historyCmd.Flags().String("pair", "", "only show the fills of this trading pair")
	historyCmd.Flags().Int("count", 50, "the number of recent fills, 0 for all of the first page")

	RootCmd.AddCommand(tradesCmd)
	RootCmd.AddCommand(historyCmd)
}

// go run ./cmd/richy trades --pair=XBTUSD --count=20
var tradesCmd = &cobra.Command{
	Use:          "trades",
	Short:        "show the recent public trades of a trading pair",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		pair, err := requiredString(cmd, "pair")
		if err != nil {
			return err
		}

		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewExchange()
		if err != nil {
			return err
		}

		trades, err := ex.QueryMarketTrades(ctx, pair, count)
		if err != nil {
			return err
		}

		t := newTable(cmd, "TIME", "SIDE", "TYPE", "PRICE", "VOLUME")
		for _, trade := range trades {
			t.AppendRow([]interface{}{formatTime(trade.Time), sideString(trade.Side), trade.OrderType, trade.Price, trade.Volume})
		}
		t.SetTitle(pair)
		t.Render()
		return nil
	},
}

// go run ./cmd/richy history --pair=XBTUSD
var historyCmd = &cobra.Command{
	Use:          "history",
	Short:        "show the account's trade history",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		pair, err := cmd.Flags().GetString("pair")
		if err != nil {
			return err
		}

		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		trades, err := ex.QueryTrades(ctx, pair, count)
		if err != nil {
			return err
		}

		t := newTable(cmd, "TIME", "ID", "ORDER", "PAIR", "SIDE", "TYPE", "PRICE", "VOLUME", "COST", "FEE")
		for _, trade := range trades {
			t.AppendRow([]interface{}{
				formatTime(trade.Time), trade.ID, trade.OrderID, trade.Pair, sideString(trade.Side),
				trade.OrderType, trade.Price, trade.Volume, trade.Cost, trade.Fee,
			})
		}
		t.Render()
		return nil
	},
}

func sideString(side types.SideType) string {
	switch side {
	case types.SideTypeBuy:
		return buyColor.Sprint(side.String())
	case types.SideTypeSell:
		return sellColor.Sprint(side.String())
	}
	return side.String()
}
