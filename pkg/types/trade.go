package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Trade is either a public market trade or one of the account's own fills.
// OrderID, Cost and Fee are only set for own fills.
type Trade struct {
	ID        string
	OrderID   string
	Pair      string
	Side      SideType
	OrderType OrderType
	Price     decimal.Decimal
	Volume    decimal.Decimal
	Cost      decimal.Decimal
	Fee       decimal.Decimal
	Time      time.Time
}

func (trade Trade) String() string {
	return fmt.Sprintf("TRADE %s %s %s %s @ %s (%s) %s",
		trade.Pair, trade.Side, trade.OrderType, trade.Volume, trade.Price, trade.ID, trade.Time.Format(time.RFC3339))
}
