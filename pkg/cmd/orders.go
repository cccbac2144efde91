package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
	"github.com/richy-trading/richy/pkg/types"
)

func init() {
	ordersOpenCmd.Flags().String("pair", "", "only show the orders of this trading pair")
	ordersClosedCmd.Flags().String("pair", "", "only show the orders of this trading pair")
	ordersClosedCmd.Flags().Int("count", 50, "the number of recent closed orders")

	ordersCmd.AddCommand(ordersOpenCmd)
	ordersCmd.AddCommand(ordersClosedCmd)
	ordersCmd.AddCommand(ordersQueryCmd)

	submitOrderCmd.Flags().String("pair", "", "the trading pair, like XBTUSD")
	submitOrderCmd.Flags().String("side", "", "buy or sell")
	submitOrderCmd.Flags().String("type", string(types.OrderTypeLimit), "the order type: market, limit, stop-loss, take-profit, stop-loss-limit, take-profit-limit")
	submitOrderCmd.Flags().String("volume", "", "the order volume in the base asset")
	submitOrderCmd.Flags().String("price", "", "the limit price, or the trigger price of the stop and take-profit orders")
	submitOrderCmd.Flags().String("price2", "", "the limit price of the triggered *-limit orders")
	submitOrderCmd.Flags().String("leverage", "", "the leverage, e.g. 2:1")
	submitOrderCmd.Flags().StringSlice("oflags", nil, "the order flags, e.g. post,fciq")
	submitOrderCmd.Flags().String("client-order-id", "", "the client order id")
	submitOrderCmd.Flags().Bool("validate", false, "only validate the order, do not submit it")

	cancelOrderCmd.Flags().String("txid", "", "the transaction id of the order to cancel")
	cancelOrderCmd.Flags().String("client-order-id", "", "the client order id of the order to cancel")
	cancelOrderCmd.Flags().Bool("all", false, "cancel all open orders")
	cancelOrderCmd.Flags().String("pair", "", "with --all, only cancel the open orders of this trading pair")

	RootCmd.AddCommand(ordersCmd)
	RootCmd.AddCommand(submitOrderCmd)
	RootCmd.AddCommand(cancelOrderCmd)
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "query the account's orders",
}

// go run ./cmd/richy orders open --pair=XBTUSD
var ordersOpenCmd = &cobra.Command{
	Use:          "open",
	Short:        "show the open orders",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		pair, err := cmd.Flags().GetString("pair")
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		orders, err := ex.QueryOpenOrders(ctx, pair)
		if err != nil {
			return err
		}

		renderOrders(cmd, orders)
		return nil
	},
}

// go run ./cmd/richy orders closed --pair=XBTUSD --count=10
var ordersClosedCmd = &cobra.Command{
	Use:          "closed",
	Short:        "show the recently closed orders",
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

		orders, err := ex.QueryClosedOrders(ctx, pair, count)
		if err != nil {
			return err
		}

		renderOrders(cmd, orders)
		return nil
	},
}

// go run ./cmd/richy orders query OQCLML-BW3P3-BUCMWZ
var ordersQueryCmd = &cobra.Command{
	Use:          "query TXID",
	Short:        "show an order by its transaction id",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		order, err := ex.QueryOrder(ctx, args[0])
		if err != nil {
			return err
		}

		renderOrders(cmd, []types.Order{*order})
		return nil
	},
}

func renderOrders(cmd *cobra.Command, orders []types.Order) {
	t := newTable(cmd, "ORDER", "PAIR", "SIDE", "TYPE", "STATUS", "PRICE", "VOLUME", "FILLED", "AVG PRICE", "OPENED", "CLOSED")
	for _, o := range orders {
		t.AppendRow([]interface{}{
			o.OrderID, o.Pair, sideString(o.Side), o.OrderType, o.Status, o.Price, o.Volume,
			o.Filled, o.AvgPrice, formatTime(o.OpenTime), formatTime(o.CloseTime),
		})
	}
	t.Render()
}

// go run ./cmd/richy submit --pair=XBTUSD --side=buy --type=limit --volume=0.01 --price=30000 --validate
var submitOrderCmd = &cobra.Command{
	Use:          "submit",
	Short:        "place an order",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		order, err := submitOrderFromFlags(cmd)
		if err != nil {
			return err
		}

		if err := order.Validate(); err != nil {
			return err
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		submission, err := ex.SubmitOrder(ctx, *order)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, submission.Description)
		if order.ValidateOnly {
			buyColor.Fprintln(out, "order validated, not submitted")
			return nil
		}

		for _, txid := range submission.TxIDs {
			fmt.Fprintf(out, "txid: %s\n", txid)
		}
		return nil
	},
}

func submitOrderFromFlags(cmd *cobra.Command) (*types.SubmitOrder, error) {
	pair, err := requiredString(cmd, "pair")
	if err != nil {
		return nil, err
	}

	sideStr, err := requiredString(cmd, "side")
	if err != nil {
		return nil, err
	}

	side, err := types.ParseSideType(sideStr)
	if err != nil {
		return nil, err
	}

	typeStr, err := requiredString(cmd, "type")
	if err != nil {
		return nil, err
	}

	orderType, err := types.ParseOrderType(typeStr)
	if err != nil {
		return nil, err
	}

	volume, err := decimalFlag(cmd, "volume")
	if err != nil {
		return nil, err
	}

	price, err := decimalFlag(cmd, "price")
	if err != nil {
		return nil, err
	}

	price2, err := decimalFlag(cmd, "price2")
	if err != nil {
		return nil, err
	}

	leverage, err := cmd.Flags().GetString("leverage")
	if err != nil {
		return nil, err
	}

	oflags, err := cmd.Flags().GetStringSlice("oflags")
	if err != nil {
		return nil, err
	}

	clientOrderID, err := cmd.Flags().GetString("client-order-id")
	if err != nil {
		return nil, err
	}

	validateOnly, err := cmd.Flags().GetBool("validate")
	if err != nil {
		return nil, err
	}

	return &types.SubmitOrder{
		Pair:          pair,
		Side:          side,
		OrderType:     orderType,
		Volume:        volume,
		Price:         price,
		Price2:        price2,
		Leverage:      leverage,
		OrderFlags:    oflags,
		ClientOrderID: clientOrderID,
		ValidateOnly:  validateOnly,
	}, nil
}

// go run ./cmd/richy cancel --txid=OQCLML-BW3P3-BUCMWZ
// go run ./cmd/richy cancel --all --pair=XBTUSD
var cancelOrderCmd = &cobra.Command{
	Use:          "cancel",
	Short:        "cancel orders",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		txid, err := cmd.Flags().GetString("txid")
		if err != nil {
			return err
		}

		clientOrderID, err := cmd.Flags().GetString("client-order-id")
		if err != nil {
			return err
		}

		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		pair, err := cmd.Flags().GetString("pair")
		if err != nil {
			return err
		}

		given := 0
		for _, set := range []bool{txid != "", clientOrderID != "", all} {
			if set {
				given++
			}
		}

		if given != 1 {
			return errors.New("exactly one of --txid, --client-order-id or --all is required")
		}

		ex, err := cmdutil.NewAuthenticatedExchange()
		if err != nil {
			return err
		}

		var count int
		switch {
		case txid != "":
			count, err = ex.CancelOrder(ctx, txid)
		case clientOrderID != "":
			count, err = ex.CancelOrderByClientOrderID(ctx, clientOrderID)
		default:
			count, err = ex.CancelAllOrders(ctx, pair)
		}

		if count > 0 {
			log.Infof("%d orders canceled", count)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "canceled %d orders\n", count)
		return err
	},
}
