package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSubmitOrder_Validate(t *testing.T) {
	valid := func() SubmitOrder {
		return SubmitOrder{
			Pair:      "XBTUSD",
			Side:      SideTypeBuy,
			OrderType: OrderTypeLimit,
			Volume:    decimal.RequireFromString("1.25"),
			Price:     decimal.RequireFromString("37500"),
		}
	}

	tests := []struct {
		name   string
		mutate func(o *SubmitOrder)
		err    error
	}{
		{name: "valid limit", mutate: func(o *SubmitOrder) {}},
		{name: "valid market without price", mutate: func(o *SubmitOrder) {
			o.OrderType = OrderTypeMarket
			o.Price = decimal.Zero
		}},
		{name: "empty pair", mutate: func(o *SubmitOrder) { o.Pair = "" }, err: ErrEmptyPair},
		{name: "bad side", mutate: func(o *SubmitOrder) { o.Side = "hold" }, err: ErrInvalidSide},
		{name: "empty order type", mutate: func(o *SubmitOrder) { o.OrderType = "" }, err: ErrEmptyOrderType},
		{name: "unknown order type", mutate: func(o *SubmitOrder) { o.OrderType = "foo" }, err: ErrInvalidOrderType},
		{name: "short order type form", mutate: func(o *SubmitOrder) { o.OrderType = "l" }, err: ErrInvalidOrderType},
		{name: "zero volume", mutate: func(o *SubmitOrder) { o.Volume = decimal.Zero }, err: ErrInvalidVolume},
		{name: "negative volume", mutate: func(o *SubmitOrder) { o.Volume = decimal.NewFromInt(-1) }, err: ErrInvalidVolume},
		{name: "limit without price", mutate: func(o *SubmitOrder) { o.Price = decimal.Zero }, err: ErrMissingPrice},
		{name: "stop-loss-limit without price2", mutate: func(o *SubmitOrder) {
			o.OrderType = OrderTypeStopLossLimit
		}, err: ErrMissingPrice2},
		{name: "userref with client order id", mutate: func(o *SubmitOrder) {
			o.UserRef = 42
			o.GenerateClientOrderID = true
		}, err: ErrAmbiguousUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid()
			tt.mutate(&o)
			err := o.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestParseOrderType(t *testing.T) {
	ot, err := ParseOrderType("m")
	assert.NoError(t, err)
	assert.Equal(t, OrderTypeMarket, ot)

	ot, err = ParseOrderType("stop-loss-limit")
	assert.NoError(t, err)
	assert.Equal(t, OrderTypeStopLossLimit, ot)

	_, err = ParseOrderType("iceberg-ish")
	assert.Error(t, err)
}

func TestParseSideType(t *testing.T) {
	side, err := ParseSideType("b")
	assert.NoError(t, err)
	assert.Equal(t, SideTypeBuy, side)
	assert.Equal(t, SideTypeSell, side.Reverse())

	_, err = ParseSideType("x")
	assert.Error(t, err)
}

func TestOrderSubmission_TxID(t *testing.T) {
	assert.Equal(t, "", OrderSubmission{}.TxID())
	assert.Equal(t, "OU22CG-KLAF2-FWUDD7", OrderSubmission{TxIDs: []string{"OU22CG-KLAF2-FWUDD7"}}.TxID())
}

func TestOrder_Remaining(t *testing.T) {
	o := Order{
		Volume: decimal.RequireFromString("1.25"),
		Filled: decimal.RequireFromString("0.375"),
	}
	assert.Equal(t, "0.875", o.Remaining().String())
}
