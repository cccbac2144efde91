package krakenapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"

	"github.com/richy-trading/richy/pkg/types"
)

type AccountService struct {
	client *RestClient
}

// Balance returns the cash balances. The endpoint only reports totals, so Available
// equals Total and Locked is zero.
func (s *AccountService) Balance(ctx context.Context) ([]types.Balance, error) {
	return decode(ctx, s.client, EndpointBalance, nil, parseBalances)
}

// BalanceEx returns the balances with the amount held by open orders as Locked.
func (s *AccountService) BalanceEx(ctx context.Context) ([]types.Balance, error) {
	return decode(ctx, s.client, EndpointBalanceEx, nil, parseExtendedBalances)
}

// TradeBalance returns the margin account summary denominated in asset (ZUSD when empty).
func (s *AccountService) TradeBalance(ctx context.Context, asset string) (*types.TradeBalance, error) {
	params := url.Values{}
	if asset != "" {
		params.Set("asset", asset)
	}
	return decode(ctx, s.client, EndpointTradeBalance, params, parseTradeBalance)
}

// OpenPositions returns the open margin positions, docalcs asks the venue to include the
// current value and profit/loss.
func (s *AccountService) OpenPositions(ctx context.Context, docalcs bool, txids ...string) ([]types.Position, error) {
	params := url.Values{}
	if docalcs {
		params.Set("docalcs", "true")
	}
	if len(txids) > 0 {
		params.Set("txid", strings.Join(txids, ","))
	}
	return decode(ctx, s.client, EndpointOpenPositions, params, parsePositions)
}

func (s *AccountService) DepositMethods(ctx context.Context, asset string) ([]types.DepositMethod, error) {
	params := url.Values{}
	params.Set("asset", asset)
	return decode(ctx, s.client, EndpointDepositMethods, params, parseDepositMethods)
}

func (s *AccountService) DepositAddresses(ctx context.Context, asset, method string, generateNew bool) ([]types.DepositAddress, error) {
	params := url.Values{}
	params.Set("asset", asset)
	params.Set("method", method)
	if generateNew {
		params.Set("new", "true")
	}
	return decode(ctx, s.client, EndpointDepositAddresses, params, parseDepositAddresses)
}

// Withdraw withdraws amount of asset to the withdrawal key configured on the account and
// returns the reference id.
func (s *AccountService) Withdraw(ctx context.Context, asset, withdrawKey string, amount decimal.Decimal) (string, error) {
	params := url.Values{}
	params.Set("asset", asset)
	params.Set("key", withdrawKey)
	params.Set("amount", amount.String())
	return decode(ctx, s.client, EndpointWithdraw, params, func(v *fastjson.Value) (string, error) {
		obj, err := getObject(v, "result")
		if err != nil {
			return "", err
		}
		return parseString(obj.Get("refid"), "result.refid")
	})
}

func parseBalances(v *fastjson.Value) ([]types.Balance, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	var balances []types.Balance
	err = visitObject(obj, func(currency string, v *fastjson.Value) error {
		total, err := parseDecimal(v, member("result", currency))
		if err != nil {
			return err
		}

		balances = append(balances, types.Balance{
			Currency:  currency,
			Available: total,
			Total:     total,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return balances, nil
}

func parseExtendedBalances(v *fastjson.Value) ([]types.Balance, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	var balances []types.Balance
	err = visitObject(obj, func(currency string, v *fastjson.Value) error {
		field := member("result", currency)
		o, err := getObject(v, field)
		if err != nil {
			return err
		}

		total, err := parseDecimal(o.Get("balance"), member(field, "balance"))
		if err != nil {
			return err
		}

		held, err := optionalDecimal(o.Get("hold_trade"), member(field, "hold_trade"))
		if err != nil {
			return err
		}

		balances = append(balances, types.Balance{
			Currency:  currency,
			Available: total.Sub(held),
			Locked:    held,
			Total:     total,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return balances, nil
}

func parseTradeBalance(v *fastjson.Value) (*types.TradeBalance, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	var tb types.TradeBalance
	required := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"eb", &tb.EquivalentBalance},
		{"tb", &tb.TradeBalance},
		{"m", &tb.MarginAmount},
		{"n", &tb.UnrealizedNet},
		{"c", &tb.Cost},
		{"v", &tb.Valuation},
		{"e", &tb.Equity},
		{"mf", &tb.FreeMargin},
	}

	for _, f := range required {
		if *f.dst, err = parseDecimal(obj.Get(f.name), member("result", f.name)); err != nil {
			return nil, err
		}
	}

	if tb.MarginLevel, err = optionalDecimal(obj.Get("ml"), "result.ml"); err != nil {
		return nil, err
	}

	return &tb, nil
}

func parsePosition(id string, v *fastjson.Value, field string) (types.Position, error) {
	o, err := getObject(v, field)
	if err != nil {
		return types.Position{}, err
	}

	position := types.Position{
		ID:      id,
		OrderID: optionalString(o.Get("ordertxid")),
		Status:  optionalString(o.Get("posstatus")),
	}

	if position.Pair, err = parseString(o.Get("pair"), member(field, "pair")); err != nil {
		return types.Position{}, err
	}

	sideStr, err := parseString(o.Get("type"), member(field, "type"))
	if err != nil {
		return types.Position{}, err
	}

	side, err := types.ParseSideType(sideStr)
	if err != nil {
		return types.Position{}, &FieldParseError{Field: member(field, "type"), Value: sideStr, Err: err}
	}
	position.Type = types.PositionTypeFromSide(side)

	if position.Time, err = parseTimestamp(o.Get("time"), member(field, "time")); err != nil {
		return types.Position{}, err
	}

	for _, f := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"vol", &position.Volume},
		{"vol_closed", &position.VolumeClosed},
		{"cost", &position.Cost},
		{"fee", &position.Fee},
		{"margin", &position.Margin},
	} {
		if *f.dst, err = parseDecimal(o.Get(f.name), member(field, f.name)); err != nil {
			return types.Position{}, err
		}
	}

	if position.Value, err = optionalDecimal(o.Get("value"), member(field, "value")); err != nil {
		return types.Position{}, err
	}

	if position.UnrealizedPnL, err = optionalDecimal(o.Get("net"), member(field, "net")); err != nil {
		return types.Position{}, err
	}

	if position.Volume.IsPositive() {
		position.AvgPrice = position.Cost.Div(position.Volume)
	}

	return position, nil
}

func parsePositions(v *fastjson.Value) ([]types.Position, error) {
	obj, err := getObject(v, "result")
	if err != nil {
		return nil, err
	}

	var positions []types.Position
	err = visitObject(obj, func(id string, v *fastjson.Value) error {
		position, err := parsePosition(id, v, member("result", id))
		if err != nil {
			return err
		}

		positions = append(positions, position)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return positions, nil
}

func parseDepositMethods(v *fastjson.Value) ([]types.DepositMethod, error) {
	rows, err := getArray(v, "result")
	if err != nil {
		return nil, err
	}

	methods := make([]types.DepositMethod, 0, len(rows))
	for i, row := range rows {
		field := index("result", i)
		o, err := getObject(row, field)
		if err != nil {
			return nil, err
		}

		method := types.DepositMethod{
			GenAddress: optionalBool(o.Get("gen-address")),
		}

		if method.Method, err = parseString(o.Get("method"), member(field, "method")); err != nil {
			return nil, err
		}

		// limit is false when the method is unlimited
		if limit := o.Get("limit"); limit != nil && limit.Type() != fastjson.TypeFalse {
			if method.Limit, err = optionalDecimal(limit, member(field, "limit")); err != nil {
				return nil, err
			}
		}

		if method.Fee, err = optionalDecimal(o.Get("fee"), member(field, "fee")); err != nil {
			return nil, err
		}

		if method.Minimum, err = optionalDecimal(o.Get("minimum"), member(field, "minimum")); err != nil {
			return nil, err
		}

		methods = append(methods, method)
	}

	return methods, nil
}

func parseDepositAddresses(v *fastjson.Value) ([]types.DepositAddress, error) {
	rows, err := getArray(v, "result")
	if err != nil {
		return nil, err
	}

	addresses := make([]types.DepositAddress, 0, len(rows))
	for i, row := range rows {
		field := index("result", i)
		o, err := getObject(row, field)
		if err != nil {
			return nil, err
		}

		address := types.DepositAddress{
			Tag: optionalString(o.Get("tag")),
			New: optionalBool(o.Get("new")),
		}

		if address.Address, err = parseString(o.Get("address"), member(field, "address")); err != nil {
			return nil, err
		}

		if address.ExpireTime, err = optionalTimestamp(o.Get("expiretm"), member(field, "expiretm")); err != nil {
			return nil, err
		}

		addresses = append(addresses, address)
	}

	return addresses, nil
}
