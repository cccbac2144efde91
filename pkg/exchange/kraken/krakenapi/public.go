package krakenapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"

	"github.com/richy-trading/richy/pkg/types"
)

type PublicService struct {
	client *RestClient
}

func (s *PublicService) ServerTime(ctx context.Context) (*types.ServerTime, error) {
	return decode(ctx, s.client, EndpointTime, nil, parseServerTime)
}

func (s *PublicService) SystemStatus(ctx context.Context) (*types.SystemStatus, error) {
	return decode(ctx, s.client, EndpointSystemStatus, nil, parseSystemStatus)
}

// Assets queries the asset info, all assets when none is given.
func (s *PublicService) Assets(ctx context.Context, assets ...string) ([]types.Asset, error) {
	params := url.Values{}
	if len(assets) > 0 {
		params.Set("asset", strings.Join(assets, ","))
	}
	return decode(ctx, s.client, EndpointAssets, params, parseAssets)
}

// AssetPairs queries the tradable pairs, all pairs when none is given.
func (s *PublicService) AssetPairs(ctx context.Context, pairs ...string) ([]types.AssetPair, error) {
	params := url.Values{}
	if len(pairs) > 0 {
		params.Set("pair", strings.Join(pairs, ","))
	}
	return decode(ctx, s.client, EndpointAssetPairs, params, parseAssetPairs)
}

// Tickers returns the tickers of the given pairs in response order.
func (s *PublicService) Tickers(ctx context.Context, pairs ...string) ([]types.Ticker, error) {
	params := url.Values{}
	if len(pairs) > 0 {
		params.Set("pair", strings.Join(pairs, ","))
	}

	tickers, err := decode(ctx, s.client, EndpointTicker, params, parseTickers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range tickers {
		tickers[i].Time = now
	}
	return tickers, nil
}

func (s *PublicService) Ticker(ctx context.Context, pair string) (*types.Ticker, error) {
	params := url.Values{}
	params.Set("pair", pair)

	ticker, err := decode(ctx, s.client, EndpointTicker, params, func(v *fastjson.Value) (*types.Ticker, error) {
		name, entry, err := pairResult(v, pair)
		if err != nil {
			return nil, err
		}
		return parseTicker(name, entry, member("result", name))
	})
	if err != nil {
		return nil, err
	}

	ticker.Time = time.Now()
	return ticker, nil
}

// Depth returns the order book of pair, count limits the levels per side (0 for the
// venue default).
func (s *PublicService) Depth(ctx context.Context, pair string, count int) (*types.OrderBook, error) {
	params := url.Values{}
	params.Set("pair", pair)
	if count > 0 {
		params.Set("count", strconv.Itoa(count))
	}

	return decode(ctx, s.client, EndpointDepth, params, func(v *fastjson.Value) (*types.OrderBook, error) {
		return parseOrderBook(v, pair)
	})
}

// TradesResult is a page of public trades, Last is the cursor to pass as since.
type TradesResult struct {
	Trades []types.Trade
	Last   string
}

func (s *PublicService) Trades(ctx context.Context, pair string, since string, count int) (*TradesResult, error) {
	params := url.Values{}
	params.Set("pair", pair)
	if since != "" {
		params.Set("since", since)
	}
	if count > 0 {
		params.Set("count", strconv.Itoa(count))
	}

	return decode(ctx, s.client, EndpointTrades, params, func(v *fastjson.Value) (*TradesResult, error) {
		return parseMarketTrades(v, pair)
	})
}

// KLinesResult is a page of candles, Last is the cursor to pass as since.
type KLinesResult struct {
	KLines []types.KLine
	Last   int64
}

func (s *PublicService) OHLC(ctx context.Context, pair string, interval types.Interval, since time.Time) (*KLinesResult, error) {
	params := url.Values{}
	params.Set("pair", pair)
	params.Set("interval", strconv.Itoa(interval.Minutes()))
	if !since.IsZero() {
		params.Set("since", strconv.FormatInt(since.Unix(), 10))
	}

	return decode(ctx, s.client, EndpointOHLC, params, func(v *fastjson.Value) (*KLinesResult, error) {
		return parseKLines(v, pair, interval)
	})
}

func parseServerTime(v *fastjson.Value) (*types.ServerTime, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	unixTime, err := parseInt64(obj.Get("unixtime"), "result.unixtime")
	if err != nil {
		return nil, err
	}

	return &types.ServerTime{
		Time:    time.Unix(unixTime, 0),
		RFC1123: optionalString(obj.Get("rfc1123")),
	}, nil
}

func parseSystemStatus(v *fastjson.Value) (*types.SystemStatus, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	status, err := parseString(obj.Get("status"), "result.status")
	if err != nil {
		return nil, err
	}

	ts, err := parseString(obj.Get("timestamp"), "result.timestamp")
	if err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil, &FieldParseError{Field: "result.timestamp", Value: ts, Err: err}
	}

	return &types.SystemStatus{
		Status: types.SystemStatusType(status),
		Time:   t,
	}, nil
}

func parseAssets(v *fastjson.Value) ([]types.Asset, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	var assets []types.Asset
	err = visitObject(obj, func(name string, v *fastjson.Value) error {
		field := member("result", name)
		o, err := getObject(v, field)
		if err != nil {
			return err
		}

		decimals, err := parseInt64(o.Get("decimals"), member(field, "decimals"))
		if err != nil {
			return err
		}

		displayDecimals, err := optionalInt64(o.Get("display_decimals"), member(field, "display_decimals"))
		if err != nil {
			return err
		}

		assets = append(assets, types.Asset{
			Name:            name,
			AltName:         optionalString(o.Get("altname")),
			Class:           optionalString(o.Get("aclass")),
			Decimals:        int32(decimals),
			DisplayDecimals: int32(displayDecimals),
			Status:          optionalString(o.Get("status")),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assets, nil
}

func parseFeeTiers(v *fastjson.Value, field string) ([]types.FeeTier, error) {
	if isAbsent(v) {
		return nil, nil
	}

	rows, err := getArray(v, field)
	if err != nil {
		return nil, err
	}

	tiers := make([]types.FeeTier, 0, len(rows))
	for i, row := range rows {
		rowField := index(field, i)
		cols, err := getArray(row, rowField)
		if err != nil {
			return nil, err
		}

		volume, err := parseDecimalElement(cols, 0, rowField)
		if err != nil {
			return nil, err
		}

		percent, err := parseDecimalElement(cols, 1, rowField)
		if err != nil {
			return nil, err
		}

		tiers = append(tiers, types.FeeTier{Volume: volume, Percent: percent})
	}
	return tiers, nil
}

func parseAssetPair(name string, v *fastjson.Value, field string) (types.AssetPair, error) {
	o, err := getObject(v, field)
	if err != nil {
		return types.AssetPair{}, err
	}

	pair := types.AssetPair{
		Name:          name,
		AltName:       optionalString(o.Get("altname")),
		WSName:        optionalString(o.Get("wsname")),
		Base:          optionalString(o.Get("base")),
		Quote:         optionalString(o.Get("quote")),
		Status:        optionalString(o.Get("status")),
		FeeVolumeCurr: optionalString(o.Get("fee_volume_currency")),
	}

	pairDecimals, err := parseInt64(o.Get("pair_decimals"), member(field, "pair_decimals"))
	if err != nil {
		return types.AssetPair{}, err
	}

	lotDecimals, err := parseInt64(o.Get("lot_decimals"), member(field, "lot_decimals"))
	if err != nil {
		return types.AssetPair{}, err
	}

	costDecimals, err := optionalInt64(o.Get("cost_decimals"), member(field, "cost_decimals"))
	if err != nil {
		return types.AssetPair{}, err
	}

	pair.PairDecimals = int32(pairDecimals)
	pair.LotDecimals = int32(lotDecimals)
	pair.CostDecimals = int32(costDecimals)

	if pair.OrderMin, err = optionalDecimal(o.Get("ordermin"), member(field, "ordermin")); err != nil {
		return types.AssetPair{}, err
	}

	if pair.CostMin, err = optionalDecimal(o.Get("costmin"), member(field, "costmin")); err != nil {
		return types.AssetPair{}, err
	}

	if pair.TickSize, err = optionalDecimal(o.Get("tick_size"), member(field, "tick_size")); err != nil {
		return types.AssetPair{}, err
	}

	if pair.Fees, err = parseFeeTiers(o.Get("fees"), member(field, "fees")); err != nil {
		return types.AssetPair{}, err
	}

	if pair.FeesMaker, err = parseFeeTiers(o.Get("fees_maker"), member(field, "fees_maker")); err != nil {
		return types.AssetPair{}, err
	}

	return pair, nil
}

func parseAssetPairs(v *fastjson.Value) ([]types.AssetPair, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	var pairs []types.AssetPair
	err = visitObject(obj, func(name string, v *fastjson.Value) error {
		pair, err := parseAssetPair(name, v, member("result", name))
		if err != nil {
			return err
		}

		pairs = append(pairs, pair)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

// parseTicker maps one ticker entry:
//
//	a = ask [price, whole lot volume, lot volume]
//	b = bid [price, whole lot volume, lot volume]
//	c = last trade closed [price, lot volume]
//	v, p, t, l, h = [today, last 24 hours]
//	o = today's opening price
func parseTicker(pair string, v *fastjson.Value, field string) (*types.Ticker, error) {
	o, err := getObject(v, field)
	if err != nil {
		return nil, err
	}

	ticker := types.Ticker{Pair: pair}

	if ticker.Ask, err = parseDecimalAt(o, "a", 0, field); err != nil {
		return nil, err
	}

	if ticker.Bid, err = parseDecimalAt(o, "b", 0, field); err != nil {
		return nil, err
	}

	if ticker.Last, err = parseDecimalAt(o, "c", 0, field); err != nil {
		return nil, err
	}

	if ticker.Volume, err = parseDecimalAt(o, "v", 1, field); err != nil {
		return nil, err
	}

	if ticker.High, err = parseDecimalAt(o, "h", 1, field); err != nil {
		return nil, err
	}

	if ticker.Low, err = parseDecimalAt(o, "l", 1, field); err != nil {
		return nil, err
	}

	if ticker.Open, err = parseDecimal(o.Get("o"), member(field, "o")); err != nil {
		return nil, err
	}

	if p := o.Get("p"); !isAbsent(p) {
		if ticker.VWAP, err = parseDecimalAt(o, "p", 1, field); err != nil {
			return nil, err
		}
	}

	if t := o.Get("t"); !isAbsent(t) {
		arr, err := getArray(t, member(field, "t"))
		if err != nil {
			return nil, err
		}

		el, err := element(arr, 1, member(field, "t"))
		if err != nil {
			return nil, err
		}

		if ticker.Trades, err = parseInt64(el, index(member(field, "t"), 1)); err != nil {
			return nil, err
		}
	}

	return &ticker, nil
}

func parseTickers(v *fastjson.Value) ([]types.Ticker, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	var tickers []types.Ticker
	err = visitObject(obj, func(pair string, v *fastjson.Value) error {
		ticker, err := parseTicker(pair, v, member("result", pair))
		if err != nil {
			return err
		}

		tickers = append(tickers, *ticker)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tickers, nil
}

func parseBookEntries(v *fastjson.Value, field string) ([]types.OrderBookEntry, error) {
	rows, err := getArray(v, field)
	if err != nil {
		return nil, err
	}

	entries := make([]types.OrderBookEntry, 0, len(rows))
	for i, row := range rows {
		rowField := index(field, i)
		cols, err := getArray(row, rowField)
		if err != nil {
			return nil, err
		}

		price, err := parseDecimalElement(cols, 0, rowField)
		if err != nil {
			return nil, err
		}

		volume, err := parseDecimalElement(cols, 1, rowField)
		if err != nil {
			return nil, err
		}

		entry := types.OrderBookEntry{Price: price, Volume: volume}
		if len(cols) > 2 {
			if entry.Time, err = parseTimestamp(cols[2], index(rowField, 2)); err != nil {
				return nil, err
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func parseOrderBook(v *fastjson.Value, pair string) (*types.OrderBook, error) {
	name, entry, err := pairResult(v, pair)
	if err != nil {
		return nil, err
	}

	field := member("result", name)
	o, err := getObject(entry, field)
	if err != nil {
		return nil, err
	}

	asks, err := parseBookEntries(o.Get("asks"), member(field, "asks"))
	if err != nil {
		return nil, err
	}

	bids, err := parseBookEntries(o.Get("bids"), member(field, "bids"))
	if err != nil {
		return nil, err
	}

	return &types.OrderBook{Pair: name, Asks: asks, Bids: bids}, nil
}

// parseMarketTrade maps [price, volume, time, side, order type, misc, trade id].
func parseMarketTrade(pair string, v *fastjson.Value, field string) (types.Trade, error) {
	cols, err := getArray(v, field)
	if err != nil {
		return types.Trade{}, err
	}

	trade := types.Trade{Pair: pair}
	if trade.Price, err = parseDecimalElement(cols, 0, field); err != nil {
		return types.Trade{}, err
	}

	if trade.Volume, err = parseDecimalElement(cols, 1, field); err != nil {
		return types.Trade{}, err
	}

	el, err := element(cols, 2, field)
	if err != nil {
		return types.Trade{}, err
	}

	if trade.Time, err = parseTimestamp(el, index(field, 2)); err != nil {
		return types.Trade{}, err
	}

	if el, err = element(cols, 3, field); err != nil {
		return types.Trade{}, err
	}

	side, err := parseString(el, index(field, 3))
	if err != nil {
		return types.Trade{}, err
	}

	if trade.Side, err = types.ParseSideType(side); err != nil {
		return types.Trade{}, &FieldParseError{Field: index(field, 3), Value: side, Err: err}
	}

	if len(cols) > 4 {
		orderType := optionalString(cols[4])
		if trade.OrderType, err = types.ParseOrderType(orderType); err != nil {
			return types.Trade{}, &FieldParseError{Field: index(field, 4), Value: orderType, Err: err}
		}
	}

	if len(cols) > 6 {
		id, err := parseInt64(cols[6], index(field, 6))
		if err != nil {
			return types.Trade{}, err
		}
		trade.ID = strconv.FormatInt(id, 10)
	}

	return trade, nil
}

func parseMarketTrades(v *fastjson.Value, pair string) (*TradesResult, error) {
	name, entry, err := pairResult(v, pair)
	if err != nil {
		return nil, err
	}

	field := member("result", name)
	rows, err := getArray(entry, field)
	if err != nil {
		return nil, err
	}

	result := &TradesResult{Trades: make([]types.Trade, 0, len(rows))}
	for i, row := range rows {
		trade, err := parseMarketTrade(name, row, index(field, i))
		if err != nil {
			return nil, err
		}
		result.Trades = append(result.Trades, trade)
	}

	if last := v.Get("last"); last != nil {
		if last.Type() == fastjson.TypeString {
			result.Last = string(last.GetStringBytes())
		} else {
			result.Last = last.String()
		}
	}

	return result, nil
}

// parseKLine maps [time, open, high, low, close, vwap, volume, count].
func parseKLine(pair string, interval types.Interval, v *fastjson.Value, field string) (types.KLine, error) {
	cols, err := getArray(v, field)
	if err != nil {
		return types.KLine{}, err
	}

	k := types.KLine{Pair: pair, Interval: interval}

	el, err := element(cols, 0, field)
	if err != nil {
		return types.KLine{}, err
	}

	if k.StartTime, err = parseTimestamp(el, index(field, 0)); err != nil {
		return types.KLine{}, err
	}

	for i, dst := range []*decimal.Decimal{&k.Open, &k.High, &k.Low, &k.Close, &k.VWAP, &k.Volume} {
		if *dst, err = parseDecimalElement(cols, i+1, field); err != nil {
			return types.KLine{}, err
		}
	}

	if el, err = element(cols, 7, field); err != nil {
		return types.KLine{}, err
	}

	if k.Count, err = parseInt64(el, index(field, 7)); err != nil {
		return types.KLine{}, err
	}

	return k, nil
}

func parseKLines(v *fastjson.Value, pair string, interval types.Interval) (*KLinesResult, error) {
	name, entry, err := pairResult(v, pair)
	if err != nil {
		return nil, err
	}

	field := member("result", name)
	rows, err := getArray(entry, field)
	if err != nil {
		return nil, err
	}

	result := &KLinesResult{KLines: make([]types.KLine, 0, len(rows))}
	for i, row := range rows {
		k, err := parseKLine(name, interval, row, index(field, i))
		if err != nil {
			return nil, err
		}
		result.KLines = append(result.KLines, k)
	}

	if result.Last, err = optionalInt64(v.Get("last"), "result.last"); err != nil {
		return nil, err
	}

	return result, nil
}
