package types

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeMarket            OrderType = "market"
	OrderTypeLimit             OrderType = "limit"
	OrderTypeStopLoss          OrderType = "stop-loss"
	OrderTypeTakeProfit        OrderType = "take-profit"
	OrderTypeStopLossLimit     OrderType = "stop-loss-limit"
	OrderTypeTakeProfitLimit   OrderType = "take-profit-limit"
	OrderTypeTrailingStop      OrderType = "trailing-stop"
	OrderTypeTrailingStopLimit OrderType = "trailing-stop-limit"
	OrderTypeSettlePosition    OrderType = "settle-position"
)

// RequiresPrice reports whether the order type needs the primary price parameter.
func (t OrderType) RequiresPrice() bool {
	switch t {
	case OrderTypeMarket, OrderTypeSettlePosition:
		return false
	}
	return true
}

// RequiresSecondaryPrice reports whether the order type needs price2 (the limit price of
// a triggered order).
func (t OrderType) RequiresSecondaryPrice() bool {
	switch t {
	case OrderTypeStopLossLimit, OrderTypeTakeProfitLimit, OrderTypeTrailingStopLimit:
		return true
	}
	return false
}

// ParseOrderType accepts the full venue names and the one letter form of the public trades
// endpoint ("m", "l").
func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "m":
		return OrderTypeMarket, nil
	case "l":
		return OrderTypeLimit, nil
	}

	switch t := OrderType(s); t {
	case OrderTypeMarket, OrderTypeLimit, OrderTypeStopLoss, OrderTypeTakeProfit,
		OrderTypeStopLossLimit, OrderTypeTakeProfitLimit, OrderTypeTrailingStop,
		OrderTypeTrailingStopLimit, OrderTypeSettlePosition:
		return t, nil
	}

	return "", fmt.Errorf("unknown order type: %q", s)
}

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusOpen     OrderStatus = "open"
	OrderStatusClosed   OrderStatus = "closed"
	OrderStatusCanceled OrderStatus = "canceled"
	OrderStatusExpired  OrderStatus = "expired"
)

type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceGTD TimeInForce = "GTD"
)

// Order is an order as reported by the open/closed/query order endpoints.
type Order struct {
	OrderID       string
	ClientOrderID string
	UserRef       int64
	Pair          string
	Side          SideType
	OrderType     OrderType
	Status        OrderStatus

	Volume   decimal.Decimal
	Price    decimal.Decimal // descr.price, the order's primary price
	Filled   decimal.Decimal // vol_exec
	AvgPrice decimal.Decimal // price, average fill price
	Cost     decimal.Decimal
	Fee      decimal.Decimal

	OpenTime  time.Time
	CloseTime time.Time // zero unless the order is closed
	Reason    string    // closing reason for canceled/expired orders
}

// Remaining returns the unfilled volume.
func (o Order) Remaining() decimal.Decimal {
	return o.Volume.Sub(o.Filled)
}

func (o Order) String() string {
	return fmt.Sprintf("ORDER %s %s %s %s %s/%s @ %s %s",
		o.OrderID, o.Pair, o.Side, o.OrderType, o.Filled, o.Volume, o.Price, o.Status)
}

// SubmitOrder describes an order to be placed.
type SubmitOrder struct {
	Pair      string
	Side      SideType
	OrderType OrderType
	Volume    decimal.Decimal

	// Price is the limit price for limit orders or the trigger price for stop/take-profit
	// orders. Price2 is the limit price of the *-limit order types.
	Price  decimal.Decimal
	Price2 decimal.Decimal

	Leverage    string
	OrderFlags  []string // oflags, e.g. post, fciq, nompp
	TimeInForce TimeInForce
	UserRef     int64

	// ClientOrderID is sent as cl_ord_id, set GenerateClientOrderID to let the client
	// generate one.
	ClientOrderID         string
	GenerateClientOrderID bool

	// ValidateOnly asks the venue to validate the inputs without submitting the order.
	ValidateOnly bool
}

var (
	ErrEmptyPair        = errors.New("pair is required")
	ErrInvalidSide      = errors.New("side must be buy or sell")
	ErrInvalidVolume    = errors.New("volume must be positive")
	ErrMissingPrice     = errors.New("price is required for this order type")
	ErrMissingPrice2    = errors.New("price2 is required for this order type")
	ErrEmptyOrderType   = errors.New("order type is required")
	ErrInvalidOrderType = errors.New("unknown order type")
	ErrAmbiguousUserID  = errors.New("userref and client order id are mutually exclusive")
)

// Validate checks the order locally before anything is signed or sent.
func (o *SubmitOrder) Validate() error {
	if o.Pair == "" {
		return ErrEmptyPair
	}

	if o.Side != SideTypeBuy && o.Side != SideTypeSell {
		return errors.Wrapf(ErrInvalidSide, "got %q", o.Side)
	}

	if o.OrderType == "" {
		return ErrEmptyOrderType
	}

	if t, err := ParseOrderType(string(o.OrderType)); err != nil || t != o.OrderType {
		return errors.Wrapf(ErrInvalidOrderType, "got %q", o.OrderType)
	}

	if !o.Volume.IsPositive() {
		return errors.Wrapf(ErrInvalidVolume, "got %s", o.Volume)
	}

	if o.OrderType.RequiresPrice() && !o.Price.IsPositive() {
		return errors.Wrapf(ErrMissingPrice, "order type %s", o.OrderType)
	}

	if o.OrderType.RequiresSecondaryPrice() && !o.Price2.IsPositive() {
		return errors.Wrapf(ErrMissingPrice2, "order type %s", o.OrderType)
	}

	if o.UserRef != 0 && (o.ClientOrderID != "" || o.GenerateClientOrderID) {
		return ErrAmbiguousUserID
	}

	return nil
}

// OrderSubmission is the venue's acknowledgement of a placed (or validated) order.
type OrderSubmission struct {
	TxIDs         []string
	Description   string
	ClientOrderID string
}

// TxID returns the first transaction id, empty for validate-only submissions.
func (s OrderSubmission) TxID() string {
	if len(s.TxIDs) == 0 {
		return ""
	}
	return s.TxIDs[0]
}
