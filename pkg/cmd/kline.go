package cmd

import (
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
	"github.com/richy-trading/richy/pkg/types"
)

func init() {
	klineCmd.Flags().String("pair", "", "the trading pair, like XBTUSD")
	klineCmd.Flags().String("interval", "1h", "the candle interval: 1m, 5m, 15m, 30m, 1h, 4h, 1d, 1w, 15d or minutes")
	klineCmd.Flags().Duration("since", 0, "only show candles of this recent period, e.g. 24h")
	RootCmd.AddCommand(klineCmd)
}

// go run ./cmd/richy klines --pair=XBTUSD --interval=15m --since=6h
var klineCmd = &cobra.Command{
	Use:          "klines",
	Aliases:      []string{"kline", "ohlc"},
	Short:        "show the ohlc candles of a trading pair",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		pair, err := requiredString(cmd, "pair")
		if err != nil {
			return err
		}

		intervalStr, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}

		interval, err := types.ParseInterval(intervalStr)
		if err != nil {
			return err
		}

		since, err := sinceFlag(cmd, "since")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewExchange()
		if err != nil {
			return err
		}

		klines, err := ex.QueryKLines(ctx, pair, interval, since)
		if err != nil {
			return err
		}

		t := newTable(cmd, "TIME", "OPEN", "HIGH", "LOW", "CLOSE", "VWAP", "VOLUME", "COUNT")
		for _, k := range klines {
			t.AppendRow([]interface{}{formatTime(k.StartTime), k.Open, k.High, k.Low, k.Close, k.VWAP, k.Volume, k.Count})
		}
		t.SetTitle(pair + " " + interval.String())
		t.Render()
		return nil
	},
}
