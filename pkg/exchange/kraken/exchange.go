package kraken

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/richy-trading/richy/pkg/config"
	"github.com/richy-trading/richy/pkg/exchange/kraken/krakenapi"
	"github.com/richy-trading/richy/pkg/types"
)

var log = logrus.WithField("exchange", "kraken")

var (
	ErrUnknownPair     = errors.New("unknown pair")
	ErrOrderNotFound   = errors.New("order not found")
	ErrNoDepositAddr   = errors.New("no deposit address")
	ErrInvalidInterval = errors.New("invalid interval")
)

// Exchange is the high level client: every operation is one or a few REST calls mapped to
// the domain types. Streaming is delegated to an optional types.Stream.
type Exchange struct {
	client *krakenapi.RestClient
	stream types.Stream
}

func New(key, secret string) *Exchange {
	client := krakenapi.NewClient()
	if key != "" && secret != "" {
		client.Auth(key, secret)
	}

	return &Exchange{client: client}
}

// NewFromConfig builds an exchange from a validated config. An undecodable api secret
// is only logged, the private calls report it as a signing error.
func NewFromConfig(conf *config.Config) (*Exchange, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baseURL, err := conf.BaseURL()
	if err != nil {
		return nil, err
	}

	if err := conf.CheckSecret(); err != nil {
		log.WithError(err).Warn("private api calls will fail until the api secret is fixed")
	}

	ex := New(conf.APIKey, conf.APISecret)
	if err := ex.client.SetBaseURL(baseURL.String()); err != nil {
		return nil, err
	}

	if conf.Timeout > 0 {
		ex.client.SetTimeout(conf.Timeout)
	}

	if conf.UserAgent != "" {
		ex.client.SetUserAgent(conf.UserAgent)
	}

	return ex, nil
}

func (e *Exchange) Name() types.ExchangeName {
	return types.ExchangeKraken
}

// Client returns the underlying REST client.
func (e *Exchange) Client() *krakenapi.RestClient {
	return e.client
}

func (e *Exchange) Auth(key, secret string) {
	e.client.Auth(key, secret)
}

func (e *Exchange) UseSandbox(sandbox bool) {
	e.client.UseSandbox(sandbox)
}

func (e *Exchange) SetStream(stream types.Stream) {
	e.stream = stream
}

// TestConnection checks that the public api answers.
func (e *Exchange) TestConnection(ctx context.Context) error {
	_, err := e.client.PublicService.ServerTime(ctx)
	return err
}

// TestAuthentication checks the credentials with a balance query.
func (e *Exchange) TestAuthentication(ctx context.Context) error {
	_, err := e.client.AccountService.Balance(ctx)
	return err
}

func (e *Exchange) QueryServerTime(ctx context.Context) (*types.ServerTime, error) {
	return e.client.PublicService.ServerTime(ctx)
}

func (e *Exchange) QuerySystemStatus(ctx context.Context) (*types.SystemStatus, error) {
	return e.client.PublicService.SystemStatus(ctx)
}

func (e *Exchange) QueryAssets(ctx context.Context, assets ...string) ([]types.Asset, error) {
	return e.client.PublicService.Assets(ctx, assets...)
}

// QueryAssetInfo maps each asset name to its alternate name, e.g. XXBT to XBT.
func (e *Exchange) QueryAssetInfo(ctx context.Context) (map[string]string, error) {
	assets, err := e.client.PublicService.Assets(ctx)
	if err != nil {
		return nil, err
	}

	info := make(map[string]string, len(assets))
	for _, a := range assets {
		info[a.Name] = a.AltName
	}
	return info, nil
}

func (e *Exchange) QueryAssetPairs(ctx context.Context, pairs ...string) ([]types.AssetPair, error) {
	return e.client.PublicService.AssetPairs(ctx, pairs...)
}

// QueryTradingPairs returns the venue names of all tradable pairs in response order.
func (e *Exchange) QueryTradingPairs(ctx context.Context) ([]string, error) {
	pairs, err := e.client.PublicService.AssetPairs(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(pairs))
	for _, p := range pairs {
		names = append(names, p.Name)
	}
	return names, nil
}

// QueryAssetPair looks the pair up by venue name, alternate name or websocket name. The
// pair metadata is fetched on every call.
func (e *Exchange) QueryAssetPair(ctx context.Context, pair string) (*types.AssetPair, error) {
	pairs, err := e.client.PublicService.AssetPairs(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range pairs {
		if p.Matches(pair) {
			return &p, nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownPair, "%q", pair)
}

// ValidatePair reports whether the pair is tradable. Failures to reach the venue are
// returned as errors, not as false.
func (e *Exchange) ValidatePair(ctx context.Context, pair string) (bool, error) {
	_, err := e.QueryAssetPair(ctx, pair)
	if errors.Is(err, ErrUnknownPair) {
		return false, nil
	}
	return err == nil, err
}

func (e *Exchange) GetMinOrderSize(ctx context.Context, pair string) (decimal.Decimal, error) {
	p, err := e.QueryAssetPair(ctx, pair)
	if err != nil {
		return decimal.Zero, err
	}
	return p.OrderMin, nil
}

func (e *Exchange) GetTickSize(ctx context.Context, pair string) (decimal.Decimal, error) {
	p, err := e.QueryAssetPair(ctx, pair)
	if err != nil {
		return decimal.Zero, err
	}
	return p.PriceTick(), nil
}

// CalculateOrderValue returns volume * price rounded to the pair's cost decimals.
func (e *Exchange) CalculateOrderValue(ctx context.Context, pair string, volume, price decimal.Decimal) (decimal.Decimal, error) {
	p, err := e.QueryAssetPair(ctx, pair)
	if err != nil {
		return decimal.Zero, err
	}
	return orderValue(*p, volume, price), nil
}

// CalculateFees estimates the fee of an order at the entry fee tier (no 30 day volume).
func (e *Exchange) CalculateFees(ctx context.Context, pair string, volume, price decimal.Decimal, maker bool) (decimal.Decimal, error) {
	p, err := e.QueryAssetPair(ctx, pair)
	if err != nil {
		return decimal.Zero, err
	}
	return orderFee(*p, volume, price, decimal.Zero, maker), nil
}

func orderValue(p types.AssetPair, volume, price decimal.Decimal) decimal.Decimal {
	value := volume.Mul(price)
	if p.CostDecimals > 0 {
		value = value.Round(p.CostDecimals)
	}
	return value
}

func orderFee(p types.AssetPair, volume, price, volume30d decimal.Decimal, maker bool) decimal.Decimal {
	percent := p.FeePercent(volume30d, maker)
	return orderValue(p, volume, price).Mul(percent).Div(decimal.NewFromInt(100))
}

func (e *Exchange) QueryTicker(ctx context.Context, pair string) (*types.Ticker, error) {
	return e.client.PublicService.Ticker(ctx, pair)
}

// QueryTickers returns the tickers in response order.
func (e *Exchange) QueryTickers(ctx context.Context, pairs ...string) ([]types.Ticker, error) {
	return e.client.PublicService.Tickers(ctx, pairs...)
}

func (e *Exchange) QueryOrderBook(ctx context.Context, pair string, depth int) (*types.OrderBook, error) {
	return e.client.PublicService.Depth(ctx, pair, depth)
}

func (e *Exchange) QueryMarketTrades(ctx context.Context, pair string, count int) ([]types.Trade, error) {
	result, err := e.client.PublicService.Trades(ctx, pair, "", count)
	if err != nil {
		return nil, err
	}
	return result.Trades, nil
}

func (e *Exchange) QueryKLines(ctx context.Context, pair string, interval types.Interval, since time.Time) ([]types.KLine, error) {
	if !interval.Valid() {
		return nil, errors.Wrapf(ErrInvalidInterval, "%d minutes", interval.Minutes())
	}

	result, err := e.client.PublicService.OHLC(ctx, pair, interval, since)
	if err != nil {
		return nil, err
	}
	return result.KLines, nil
}

// QueryAccountBalances returns the balances indexed by asset, with the amount held by
// open orders as locked.
func (e *Exchange) QueryAccountBalances(ctx context.Context) (types.BalanceMap, error) {
	balances, err := e.client.AccountService.BalanceEx(ctx)
	if err != nil {
		return nil, err
	}
	return types.NewBalanceMap(balances), nil
}

func (e *Exchange) QueryBalances(ctx context.Context) ([]types.Balance, error) {
	return e.client.AccountService.Balance(ctx)
}

func (e *Exchange) QueryTradeBalance(ctx context.Context, asset string) (*types.TradeBalance, error) {
	return e.client.AccountService.TradeBalance(ctx, asset)
}

func (e *Exchange) QueryPositions(ctx context.Context) ([]types.Position, error) {
	return e.client.AccountService.OpenPositions(ctx, true)
}

func (e *Exchange) QueryDepositMethods(ctx context.Context, asset string) ([]types.DepositMethod, error) {
	return e.client.AccountService.DepositMethods(ctx, asset)
}

// QueryDepositAddress returns the first existing deposit address of the method.
func (e *Exchange) QueryDepositAddress(ctx context.Context, asset, method string) (*types.DepositAddress, error) {
	addresses, err := e.client.AccountService.DepositAddresses(ctx, asset, method, false)
	if err != nil {
		return nil, err
	}

	if len(addresses) == 0 {
		return nil, errors.Wrapf(ErrNoDepositAddr, "%s via %s", asset, method)
	}

	return &addresses[0], nil
}

func (e *Exchange) Withdraw(ctx context.Context, asset, withdrawKey string, amount decimal.Decimal) (string, error) {
	refID, err := e.client.AccountService.Withdraw(ctx, asset, withdrawKey, amount)
	if err != nil {
		return "", err
	}

	log.Infof("withdrawal %s submitted: %s %s to %s", refID, amount, asset, withdrawKey)
	return refID, nil
}

// pairFilter returns a predicate matching the names the venue uses for pair in order and
// trade records. An empty pair matches everything.
func (e *Exchange) pairFilter(ctx context.Context, pair string) (func(name string) bool, error) {
	if pair == "" {
		return func(string) bool { return true }, nil
	}

	p, err := e.QueryAssetPair(ctx, pair)
	if err != nil {
		return nil, err
	}

	return p.Matches, nil
}

// QueryOpenOrders returns the open orders, of the given pair only when pair is not empty.
func (e *Exchange) QueryOpenOrders(ctx context.Context, pair string) ([]types.Order, error) {
	match, err := e.pairFilter(ctx, pair)
	if err != nil {
		return nil, err
	}

	orders, err := e.client.TradeService.OpenOrders(ctx, false)
	if err != nil {
		return nil, err
	}

	return filterOrders(orders, match, 0), nil
}

// QueryClosedOrders returns at most count of the latest closed orders (all when count is
// not positive), of the given pair only when pair is not empty.
func (e *Exchange) QueryClosedOrders(ctx context.Context, pair string, count int) ([]types.Order, error) {
	match, err := e.pairFilter(ctx, pair)
	if err != nil {
		return nil, err
	}

	orders, err := e.client.TradeService.ClosedOrders(ctx, krakenapi.ClosedOrdersOptions{})
	if err != nil {
		return nil, err
	}

	return filterOrders(orders, match, count), nil
}

func filterOrders(orders []types.Order, match func(string) bool, limit int) []types.Order {
	var out []types.Order
	for _, o := range orders {
		if limit > 0 && len(out) >= limit {
			break
		}

		if match(o.Pair) {
			out = append(out, o)
		}
	}
	return out
}

func (e *Exchange) QueryOrder(ctx context.Context, txid string) (*types.Order, error) {
	orders, err := e.client.TradeService.QueryOrders(ctx, txid)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.OrderID == txid {
			return &o, nil
		}
	}

	return nil, errors.Wrapf(ErrOrderNotFound, "%s", txid)
}

// QueryTrades returns at most count of the account's latest fills, of the given pair only
// when pair is not empty.
func (e *Exchange) QueryTrades(ctx context.Context, pair string, count int) ([]types.Trade, error) {
	match, err := e.pairFilter(ctx, pair)
	if err != nil {
		return nil, err
	}

	trades, err := e.client.TradeService.TradesHistory(ctx, time.Time{}, time.Time{}, 0)
	if err != nil {
		return nil, err
	}

	var out []types.Trade
	for _, t := range trades {
		if count > 0 && len(out) >= count {
			break
		}

		if match(t.Pair) {
			out = append(out, t)
		}
	}
	return out, nil
}

// SubmitOrder places the order and returns the venue's acknowledgement.
func (e *Exchange) SubmitOrder(ctx context.Context, order types.SubmitOrder) (*types.OrderSubmission, error) {
	submission, err := e.client.TradeService.AddOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	if order.ValidateOnly {
		log.Infof("order validated: %s", submission.Description)
	} else {
		log.Infof("order submitted: %s %v", submission.Description, submission.TxIDs)
	}

	return submission, nil
}

func (e *Exchange) PlaceMarketOrder(ctx context.Context, pair string, side types.SideType, volume decimal.Decimal) (*types.OrderSubmission, error) {
	return e.SubmitOrder(ctx, types.SubmitOrder{
		Pair:      pair,
		Side:      side,
		OrderType: types.OrderTypeMarket,
		Volume:    volume,
	})
}

func (e *Exchange) PlaceLimitOrder(ctx context.Context, pair string, side types.SideType, volume, price decimal.Decimal) (*types.OrderSubmission, error) {
	return e.SubmitOrder(ctx, types.SubmitOrder{
		Pair:      pair,
		Side:      side,
		OrderType: types.OrderTypeLimit,
		Volume:    volume,
		Price:     price,
	})
}

// PlaceStopLossOrder places a stop-loss market order triggered at stopPrice.
func (e *Exchange) PlaceStopLossOrder(ctx context.Context, pair string, side types.SideType, volume, stopPrice decimal.Decimal) (*types.OrderSubmission, error) {
	return e.SubmitOrder(ctx, types.SubmitOrder{
		Pair:      pair,
		Side:      side,
		OrderType: types.OrderTypeStopLoss,
		Volume:    volume,
		Price:     stopPrice,
	})
}

// CancelOrder cancels the order and returns the number of canceled orders.
func (e *Exchange) CancelOrder(ctx context.Context, txid string) (int, error) {
	return e.client.TradeService.CancelOrder(ctx, txid)
}

func (e *Exchange) CancelOrderByClientOrderID(ctx context.Context, clientOrderID string) (int, error) {
	return e.client.TradeService.CancelOrderByClientOrderID(ctx, clientOrderID)
}

// CancelAllOrders cancels every open order, or only the open orders of pair when pair is
// not empty. Orders of a pair are canceled one by one; the returned count covers the
// successful cancellations and the error aggregates the failed ones.
func (e *Exchange) CancelAllOrders(ctx context.Context, pair string) (int, error) {
	if pair == "" {
		return e.client.TradeService.CancelAll(ctx)
	}

	orders, err := e.QueryOpenOrders(ctx, pair)
	if err != nil {
		return 0, err
	}

	var canceled int
	var errs error
	for _, o := range orders {
		n, err := e.client.TradeService.CancelOrder(ctx, o.OrderID)
		if err != nil {
			log.WithError(err).Warnf("unable to cancel order %s", o.OrderID)
			errs = multierr.Append(errs, errors.Wrapf(err, "cancel %s", o.OrderID))
			continue
		}
		canceled += n
	}

	return canceled, errs
}
