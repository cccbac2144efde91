package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
)

func init() {
	depositMethodsCmd.Flags().String("asset", "", "the asset, like XBT")
	depositAddressCmd.Flags().String("asset", "", "the asset, like XBT")
	depositAddressCmd.Flags().String("method", "", "the deposit method, see deposit methods")
	depositCmd.AddCommand(depositMethodsCmd)
	depositCmd.AddCommand(depositAddressCmd)

	withdrawCmd.Flags().String("asset", "", "the asset, like XBT")
	withdrawCmd.Flags().String("key", "", "the name of the withdrawal key set up on the account")
	withdrawCmd.Flags().String("amount", "", "the amount to withdraw")

	RootCmd.AddCommand(depositCmd)
	RootCmd.AddCommand(withdrawCmd)
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "query the deposit methods and addresses",
}

// go run ./cmd/richy deposit methods --asset=XBT
var depositMethodsCmd = &cobra.Command{
	Use:          "methods",
	Short:        "show the deposit methods of an asset",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		asset, err := requiredString(cmd, "asset")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		methods, err := ex.QueryDepositMethods(ctx, asset)
		if err != nil {
			return err
		}

		t := newTable(cmd, "METHOD", "LIMIT", "FEE", "MINIMUM", "GEN ADDRESS")
		for _, m := range methods {
			t.AppendRow([]interface{}{m.Method, m.Limit, m.Fee, m.Minimum, m.GenAddress})
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/richy deposit address --asset=XBT --method=Bitcoin
var depositAddressCmd = &cobra.Command{
	Use:          "address",
	Short:        "show a deposit address",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		asset, err := requiredString(cmd, "asset")
		if err != nil {
			return err
		}

		method, err := requiredString(cmd, "method")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		addr, err := ex.QueryDepositAddress(ctx, asset, method)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "address: %s\n", addr.Address)
		if addr.Tag != "" {
			fmt.Fprintf(out, "tag: %s\n", addr.Tag)
		}
		if !addr.ExpireTime.IsZero() {
			fmt.Fprintf(out, "expires: %s\n", formatTime(addr.ExpireTime))
		}
		return nil
	},
}

// go run ./cmd/richy withdraw --asset=XBT --key=cold-wallet --amount=0.5
var withdrawCmd = &cobra.Command{
	Use:          "withdraw",
	Short:        "withdraw funds to a withdrawal key",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		asset, err := requiredString(cmd, "asset")
		if err != nil {
			return err
		}

		key, err := requiredString(cmd, "key")
		if err != nil {
			return err
		}

		amount, err := decimalFlag(cmd, "amount")
		if err != nil {
			return err
		}

		if !amount.IsPositive() {
			return errFlagRequired("amount")
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		refID, err := ex.Withdraw(ctx, asset, key, amount)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "withdrawal reference id: %s\n", refID)
		return nil
	},
}
