package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Balance struct {
	Currency  string
	Available decimal.Decimal
	Locked    decimal.Decimal
	Total     decimal.Decimal
}

func (b Balance) String() string {
	if b.Locked.IsZero() {
		return fmt.Sprintf("%s: %s", b.Currency, b.Total)
	}

	return fmt.Sprintf("%s: %s (available %s, locked %s)", b.Currency, b.Total, b.Available, b.Locked)
}

// BalanceMap indexes balances by currency.
type BalanceMap map[string]Balance

func NewBalanceMap(balances []Balance) BalanceMap {
	m := make(BalanceMap, len(balances))
	for _, b := range balances {
		m[b.Currency] = b
	}
	return m
}

// TradeBalance summarizes the margin account in the requested quote asset.
type TradeBalance struct {
	EquivalentBalance decimal.Decimal // eb
	TradeBalance      decimal.Decimal // tb
	MarginAmount      decimal.Decimal // m
	UnrealizedNet     decimal.Decimal // n
	Cost              decimal.Decimal // c
	Valuation         decimal.Decimal // v
	Equity            decimal.Decimal // e
	FreeMargin        decimal.Decimal // mf
	MarginLevel       decimal.Decimal // ml, only present with open positions
}
