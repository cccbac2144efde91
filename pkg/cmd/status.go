package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
)

func init() {
	pairsCmd.Flags().StringSlice("pair", nil, "only show these pairs")
	assetsCmd.Flags().StringSlice("asset", nil, "only show these assets")

	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(pairsCmd)
	RootCmd.AddCommand(assetsCmd)
}

// go run ./cmd/richy status
var statusCmd = &cobra.Command{
	Use:          "status",
	Short:        "show the server time and the system status",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		ex, err := cmdutil.NewExchange()
		if err != nil {
			return err
		}

		serverTime, err := ex.QueryServerTime(ctx)
		if err != nil {
			return err
		}

		status, err := ex.QuerySystemStatus(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "server time: %s\n", serverTime.RFC1123)
		if status.Online() {
			color.New(color.FgGreen).Fprintf(out, "system status: %s\n", status.Status)
		} else {
			color.New(color.FgHiYellow).Fprintf(out, "system status: %s\n", status.Status)
		}
		return nil
	},
}

// go run ./cmd/richy pairs --pair=XBTUSD
var pairsCmd = &cobra.Command{
	Use:          "pairs",
	Short:        "list the tradable asset pairs",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		pairNames, err := cmd.Flags().GetStringSlice("pair")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewExchange()
		if err != nil {
			return err
		}

		pairs, err := ex.QueryAssetPairs(ctx, pairNames...)
		if err != nil {
			return err
		}

		sort.Slice(pairs, func(i, j int) bool {
			return pairs[i].AltName < pairs[j].AltName
		})

		t := newTable(cmd, "PAIR", "ALTNAME", "BASE", "QUOTE", "ORDER MIN", "TICK", "TAKER %", "MAKER %", "STATUS")
		for _, p := range pairs {
			t.AppendRow([]interface{}{
				p.Name, p.AltName, p.Base, p.Quote, p.OrderMin, p.PriceTick(),
				p.FeePercent(decimal.Zero, false), p.FeePercent(decimal.Zero, true), p.Status,
			})
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/richy assets --asset=XXBT
var assetsCmd = &cobra.Command{
	Use:          "assets",
	Short:        "list the assets",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		names, err := cmd.Flags().GetStringSlice("asset")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewExchange()
		if err != nil {
			return err
		}

		assets, err := ex.QueryAssets(ctx, names...)
		if err != nil {
			return err
		}

		t := newTable(cmd, "ASSET", "ALTNAME", "CLASS", "DECIMALS", "STATUS")
		for _, a := range assets {
			t.AppendRow([]interface{}{a.Name, a.AltName, a.Class, a.Decimals, a.Status})
		}
		t.Render()
		return nil
	},
}
