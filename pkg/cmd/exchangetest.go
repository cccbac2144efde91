package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
)

func checked(msg, desc string, args ...any) {
	log.Info(fmt.Sprintf(msg+": ✅ "+desc, args...))
}

func expect(condition bool, msg string, args ...any) bool {
	if !condition {
		log.Errorf("assertion failed: ❗️ "+msg, args...)
		return false
	}

	log.Infof("assertion passed: ✅ "+msg, args...)
	return true
}

func noError(err error, title string, values ...any) bool {
	if err != nil {
		log.Errorf("errored: ❗️ %s: %s", title, err)
		return false
	}

	if len(values) > 0 {
		log.Infof("%s passed: %+v", title, values[0])
	} else {
		log.Infof("%s passed: ✅", title)
	}
	return true
}

func init() {
	exchangeTestCmd.Flags().String("pair", "XBTUSD", "the trading pair used by the market data checks")
	RootCmd.AddCommand(exchangeTestCmd)
}

// go run ./cmd/richy exchange-test --pair=XBTUSD
var exchangeTestCmd = &cobra.Command{
	Use:          "exchange-test",
	Short:        "check the connectivity, the market data and the credentials against the api",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := commandContext(cmd)

		pair, err := requiredString(cmd, "pair")
		if err != nil {
			return err
		}

		conf, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		ex, err := cmdutil.NewExchange()
		if err != nil {
			return err
		}

		failed := false

		if noError(ex.TestConnection(ctx), "TestConnection") {
			checked("TestConnection", "server time query successful")
		} else {
			failed = true
		}

		status, err := ex.QuerySystemStatus(ctx)
		if noError(err, "QuerySystemStatus", status) {
			expect(status.Online(), "system status is online: %s", status.Status)
		} else {
			failed = true
		}

		assetPair, err := ex.QueryAssetPair(ctx, pair)
		if noError(err, "QueryAssetPair", assetPair) {
			failed = !expect(assetPair.OrderMin.Sign() > 0, "%s order min is positive: %s", pair, assetPair.OrderMin) || failed
			failed = !expect(assetPair.PriceTick().Sign() > 0, "%s price tick is positive: %s", pair, assetPair.PriceTick()) || failed
			failed = !expect(len(assetPair.Fees) > 0, "%s has a fee schedule", pair) || failed
		} else {
			failed = true
		}

		ticker, err := ex.QueryTicker(ctx, pair)
		if noError(err, "QueryTicker", ticker) {
			failed = !expect(ticker.Last.Sign() > 0, "ticker last price is positive: %s", ticker.Last) || failed
			failed = !expect(ticker.Bid.Sign() > 0, "ticker bid price is positive: %s", ticker.Bid) || failed
			failed = !expect(ticker.Ask.GreaterThanOrEqual(ticker.Bid), "ticker ask %s is not below bid %s", ticker.Ask, ticker.Bid) || failed
		} else {
			failed = true
		}

		book, err := ex.QueryOrderBook(ctx, pair, 10)
		if noError(err, "QueryOrderBook") {
			_, _, ok := book.BestBidAndAsk()
			failed = !expect(ok, "order book has both sides") || failed
		} else {
			failed = true
		}

		if conf.HasCredentials() {
			if noError(ex.TestAuthentication(ctx), "TestAuthentication") {
				checked("TestAuthentication", "private api access successful")
			} else {
				failed = true
			}

			balances, err := ex.QueryAccountBalances(ctx)
			if noError(err, "QueryAccountBalances") {
				checked("QueryAccountBalances", "found %d balances", len(balances))
				for cu, b := range balances {
					expect(b.Currency == cu, "balance currency %s matches map key %s", b.Currency, cu)
				}
			} else {
				failed = true
			}
		} else {
			log.Warnf("api key is not set, skipping the private api checks")
		}

		if failed {
			return errors.New("exchange test failed")
		}
		return nil
	},
}
