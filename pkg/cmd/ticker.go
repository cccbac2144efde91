package cmd

import (
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
	"github.com/richy-trading/richy/pkg/exchange/kraken"
)

func init() {
	tickerCmd.Flags().StringSlice("pair", nil, "the trading pairs, like XBTUSD,ETHUSD. defaults to the pairs of the config file")
	RootCmd.AddCommand(tickerCmd)
}

// go run ./cmd/richy ticker --pair=XBTUSD,ETHUSD
var tickerCmd = &cobra.Command{
	Use:          "ticker",
	Short:        "show the ticker of the trading pairs",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		pairs, err := cmd.Flags().GetStringSlice("pair")
		if err != nil {
			return err
		}

		conf, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		if len(pairs) == 0 {
			pairs = conf.Pairs
		}

		if len(pairs) == 0 {
			return errFlagRequired("pair")
		}

		ex, err := kraken.NewFromConfig(conf)
		if err != nil {
			return err
		}

		tickers, err := ex.QueryTickers(ctx, pairs...)
		if err != nil {
			return err
		}

		t := newTable(cmd, "PAIR", "LAST", "BID", "ASK", "SPREAD", "OPEN", "HIGH", "LOW", "VOLUME", "VWAP")
		for _, ticker := range tickers {
			t.AppendRow([]interface{}{
				ticker.Pair, ticker.Last, ticker.Bid, ticker.Ask, ticker.Spread(),
				ticker.Open, ticker.High, ticker.Low, ticker.Volume, ticker.VWAP,
			})
		}
		t.Render()
		return nil
	},
}
