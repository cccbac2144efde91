package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type DepositMethod struct {
	Method string

	// Limit is zero when the method has no deposit limit.
	Limit      decimal.Decimal
	Fee        decimal.Decimal
	Minimum    decimal.Decimal
	GenAddress bool
}

type DepositAddress struct {
	Address    string
	Tag        string
	ExpireTime time.Time // zero for addresses that do not expire
	New        bool
}
