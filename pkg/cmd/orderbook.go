package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
)

func init() {
	orderbookCmd.Flags().String("pair", "", "the trading pair, like XBTUSD")
	orderbookCmd.Flags().Int("depth", 10, "the number of price levels per side")
	RootCmd.AddCommand(orderbookCmd)
}

// go run ./cmd/richy orderbook --pair=XBTUSD --depth=5
var orderbookCmd = &cobra.Command{
	Use:          "orderbook --pair=[pair_name]",
	Short:        "show the order book snapshot of a trading pair",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		pair, err := requiredString(cmd, "pair")
		if err != nil {
			return err
		}

		depth, err := cmd.Flags().GetInt("depth")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewExchange()
		if err != nil {
			return err
		}

		book, err := ex.QueryOrderBook(ctx, pair, depth)
		if err != nil {
			return err
		}

		t := newTable(cmd, "SIDE", "PRICE", "VOLUME", "TIME")
		for i := len(book.Asks) - 1; i >= 0; i-- {
			ask := book.Asks[i]
			t.AppendRow([]interface{}{"ASK", ask.Price, ask.Volume, formatTime(ask.Time)})
		}
		t.AppendSeparator()
		for _, bid := range book.Bids {
			t.AppendRow([]interface{}{"BID", bid.Price, bid.Volume, formatTime(bid.Time)})
		}
		t.SetTitle(book.Pair)
		t.Render()

		if bid, ask, ok := book.BestBidAndAsk(); ok {
			printf := color.New(color.FgHiYellow).FprintfFunc()
			printf(cmd.OutOrStdout(), "ASK | %s x %s / %s x %s | BID\n", ask.Volume, ask.Price, bid.Price, bid.Volume)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "one side of the book is empty")
		}
		return nil
	},
}
