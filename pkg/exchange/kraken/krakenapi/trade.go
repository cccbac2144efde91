package krakenapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"

	"github.com/richy-trading/richy/pkg/types"
)

type TradeService struct {
	client *RestClient
}

// AddOrderParams converts a validated order into the AddOrder form parameters.
func AddOrderParams(order types.SubmitOrder) url.Values {
	params := url.Values{}
	params.Set("pair", order.Pair)
	params.Set("type", string(order.Side))
	params.Set("ordertype", string(order.OrderType))
	params.Set("volume", order.Volume.String())

	if order.OrderType.RequiresPrice() {
		params.Set("price", order.Price.String())
	}

	if order.OrderType.RequiresSecondaryPrice() {
		params.Set("price2", order.Price2.String())
	}

	if order.Leverage != "" {
		params.Set("leverage", order.Leverage)
	}

	if len(order.OrderFlags) > 0 {
		params.Set("oflags", strings.Join(order.OrderFlags, ","))
	}

	if order.TimeInForce != "" {
		params.Set("timeinforce", string(order.TimeInForce))
	}

	if order.UserRef != 0 {
		params.Set("userref", strconv.FormatInt(order.UserRef, 10))
	}

	if order.ClientOrderID != "" {
		params.Set("cl_ord_id", order.ClientOrderID)
	}

	if order.ValidateOnly {
		params.Set("validate", "true")
	}

	return params
}

// AddOrder submits the order. The order is validated locally first, an invalid order is
// never signed or sent. A client order id is generated when GenerateClientOrderID is set.
func (s *TradeService) AddOrder(ctx context.Context, order types.SubmitOrder) (*types.OrderSubmission, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	if order.GenerateClientOrderID && order.ClientOrderID == "" {
		order.ClientOrderID = uuid.NewString()
	}

	submission, err := decode(ctx, s.client, EndpointAddOrder, AddOrderParams(order), parseOrderSubmission)
	if err != nil {
		return nil, err
	}

	submission.ClientOrderID = order.ClientOrderID
	return submission, nil
}

// CancelOrder cancels an order by transaction id, user reference or client order id and
// returns the number of canceled orders.
func (s *TradeService) CancelOrder(ctx context.Context, txid string) (int, error) {
	params := url.Values{}
	params.Set("txid", txid)
	return decode(ctx, s.client, EndpointCancelOrder, params, parseCount)
}

func (s *TradeService) CancelOrderByClientOrderID(ctx context.Context, clientOrderID string) (int, error) {
	params := url.Values{}
	params.Set("cl_ord_id", clientOrderID)
	return decode(ctx, s.client, EndpointCancelOrder, params, parseCount)
}

// CancelAll cancels every open order of the account.
func (s *TradeService) CancelAll(ctx context.Context) (int, error) {
	return decode(ctx, s.client, EndpointCancelAll, nil, parseCount)
}

func (s *TradeService) OpenOrders(ctx context.Context, withTrades bool) ([]types.Order, error) {
	params := url.Values{}
	if withTrades {
		params.Set("trades", "true")
	}

	return decode(ctx, s.client, EndpointOpenOrders, params, func(v *fastjson.Value) ([]types.Order, error) {
		obj, err := getObject(v, "result")
		if err != nil {
			return nil, err
		}
		return parseOrders(obj.Get("open"), "result.open")
	})
}

// ClosedOrdersOptions narrows the closed order query. Start and End are either unix
// timestamps or transaction ids.
type ClosedOrdersOptions struct {
	Start  string
	End    string
	Offset int
}

func (s *TradeService) ClosedOrders(ctx context.Context, options ClosedOrdersOptions) ([]types.Order, error) {
	params := url.Values{}
	if options.Start != "" {
		params.Set("start", options.Start)
	}
	if options.End != "" {
		params.Set("end", options.End)
	}
	if options.Offset > 0 {
		params.Set("ofs", strconv.Itoa(options.Offset))
	}

	return decode(ctx, s.client, EndpointClosedOrders, params, func(v *fastjson.Value) ([]types.Order, error) {
		obj, err := getObject(v, "result")
		if err != nil {
			return nil, err
		}
		return parseOrders(obj.Get("closed"), "result.closed")
	})
}

// QueryOrders returns the orders of the given transaction ids in response order.
func (s *TradeService) QueryOrders(ctx context.Context, txids ...string) ([]types.Order, error) {
	params := url.Values{}
	params.Set("txid", strings.Join(txids, ","))
	return decode(ctx, s.client, EndpointQueryOrders, params, func(v *fastjson.Value) ([]types.Order, error) {
		return parseOrders(v, "result")
	})
}

// TradesHistory returns the account's own fills, newest first.
func (s *TradeService) TradesHistory(ctx context.Context, start, end time.Time, offset int) ([]types.Trade, error) {
	params := url.Values{}
	if !start.IsZero() {
		params.Set("start", strconv.FormatInt(start.Unix(), 10))
	}
	if !end.IsZero() {
		params.Set("end", strconv.FormatInt(end.Unix(), 10))
	}
	if offset > 0 {
		params.Set("ofs", strconv.Itoa(offset))
	}

	return decode(ctx, s.client, EndpointTradesHistory, params, func(v *fastjson.Value) ([]types.Trade, error) {
		obj, err := getObject(v, "result")
		if err != nil {
			return nil, err
		}
		return parseOwnTrades(obj.Get("trades"), "result.trades")
	})
}

func parseOrderSubmission(v *fastjson.Value) (*types.OrderSubmission, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	descr, err := getObject(obj.Get("descr"), "result.descr")
	if err != nil {
		return nil, err
	}

	submission := &types.OrderSubmission{
		Description: optionalString(descr.Get("order")),
	}

	// validate-only submissions come back without txid
	if txids := obj.Get("txid"); !isAbsent(txids) {
		ids, err := getArray(txids, "result.txid")
		if err != nil {
			return nil, err
		}

		for i, id := range ids {
			s, err := parseString(id, index("result.txid", i))
			if err != nil {
				return nil, err
			}
			submission.TxIDs = append(submission.TxIDs, s)
		}
	}

	return submission, nil
}

func parseCount(v *fastjson.Value) (int, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return 0, err
	}

	count, err := parseInt64(obj.Get("count"), "result.count")
	return int(count), err
}

func parseOrder(id string, v *fastjson.Value, field string) (types.Order, error) {
	o, err := getObject(v, field)
	if err != nil {
		return types.Order{}, err
	}

	descrField := member(field, "descr")
	descr, err := getObject(o.Get("descr"), descrField)
	if err != nil {
		return types.Order{}, err
	}

	order := types.Order{
		OrderID:       id,
		ClientOrderID: optionalString(o.Get("cl_ord_id")),
		Status:        types.OrderStatus(optionalString(o.Get("status"))),
		Reason:        optionalString(o.Get("reason")),
	}

	if order.UserRef, err = optionalInt64(o.Get("userref"), member(field, "userref")); err != nil {
		return types.Order{}, err
	}

	if order.Pair, err = parseString(descr.Get("pair"), member(descrField, "pair")); err != nil {
		return types.Order{}, err
	}

	side, err := parseString(descr.Get("type"), member(descrField, "type"))
	if err != nil {
		return types.Order{}, err
	}

	if order.Side, err = types.ParseSideType(side); err != nil {
		return types.Order{}, &FieldParseError{Field: member(descrField, "type"), Value: side, Err: err}
	}

	orderType, err := parseString(descr.Get("ordertype"), member(descrField, "ordertype"))
	if err != nil {
		return types.Order{}, err
	}

	if order.OrderType, err = types.ParseOrderType(orderType); err != nil {
		return types.Order{}, &FieldParseError{Field: member(descrField, "ordertype"), Value: orderType, Err: err}
	}

	if order.Price, err = optionalDecimal(descr.Get("price"), member(descrField, "price")); err != nil {
		return types.Order{}, err
	}

	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"vol", &order.Volume},
		{"vol_exec", &order.Filled},
		{"cost", &order.Cost},
		{"fee", &order.Fee},
	} {
		if *f.dst, err = parseDecimal(o.Get(f.name), member(field, f.name)); err != nil {
			return types.Order{}, err
		}
	}

	if order.AvgPrice, err = optionalDecimal(o.Get("price"), member(field, "price")); err != nil {
		return types.Order{}, err
	}

	if order.OpenTime, err = parseTimestamp(o.Get("opentm"), member(field, "opentm")); err != nil {
		return types.Order{}, err
	}

	if order.CloseTime, err = optionalTimestamp(o.Get("closetm"), member(field, "closetm")); err != nil {
		return types.Order{}, err
	}

	return order, nil
}

func parseOrders(v *fastjson.Value, field string) ([]types.Order, error) {
	obj, err := getObject(v, field)
	if err != nil {
		return nil, err
	}

	orders := make([]types.Order, 0, obj.Len())
	err = visitObject(obj, func(id string, v *fastjson.Value) error {
		order, err := parseOrder(id, v, member(field, id))
		if err != nil {
			return err
		}

		orders = append(orders, order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func parseOwnTrade(id string, v *fastjson.Value, field string) (types.Trade, error) {
	o, err := getObject(v, field)
	if err != nil {
		return types.Trade{}, err
	}

	trade := types.Trade{
		ID:      id,
		OrderID: optionalString(o.Get("ordertxid")),
	}

	if trade.Pair, err = parseString(o.Get("pair"), member(field, "pair")); err != nil {
		return types.Trade{}, err
	}

	side, err := parseString(o.Get("type"), member(field, "type"))
	if err != nil {
		return types.Trade{}, err
	}

	if trade.Side, err = types.ParseSideType(side); err != nil {
		return types.Trade{}, &FieldParseError{Field: member(field, "type"), Value: side, Err: err}
	}

	if orderType := optionalString(o.Get("ordertype")); orderType != "" {
		if trade.OrderType, err = types.ParseOrderType(orderType); err != nil {
			return types.Trade{}, &FieldParseError{Field: member(field, "ordertype"), Value: orderType, Err: err}
		}
	}

	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"price", &trade.Price},
		{"vol", &trade.Volume},
		{"cost", &trade.Cost},
		{"fee", &trade.Fee},
	} {
		if *f.dst, err = parseDecimal(o.Get(f.name), member(field, f.name)); err != nil {
			return types.Trade{}, err
		}
	}

	if trade.Time, err = parseTimestamp(o.Get("time"), member(field, "time")); err != nil {
		return types.Trade{}, err
	}

	return trade, nil
}

func parseOwnTrades(v *fastjson.Value, field string) ([]types.Trade, error) {
	obj, err := getObject(v, field)
	if err != nil {
		return nil, err
	}

	trades := make([]types.Trade, 0, obj.Len())
	err = visitObject(obj, func(id string, v *fastjson.Value) error {
		trade, err := parseOwnTrade(id, v, member(field, id))
		if err != nil {
			return err
		}

		trades = append(trades, trade)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return trades, nil
}
