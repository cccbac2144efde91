package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Ticker struct {
	Pair string
	Time time.Time

	Ask    decimal.Decimal // a[0]
	Bid    decimal.Decimal // b[0]
	Last   decimal.Decimal // c[0]
	Volume decimal.Decimal // v[1], rolling 24h
	High   decimal.Decimal // h[1], rolling 24h
	Low    decimal.Decimal // l[1], rolling 24h
	Open   decimal.Decimal // o, today's opening price

	// optional, zero when the venue omits them
	VWAP   decimal.Decimal // p[1]
	Trades int64           // t[1]
}

// Mid returns the middle price between the best bid and the best ask.
func (t *Ticker) Mid() decimal.Decimal {
	return t.Bid.Add(t.Ask).Div(decimal.NewFromInt(2))
}

// Spread returns ask - bid.
func (t *Ticker) Spread() decimal.Decimal {
	return t.Ask.Sub(t.Bid)
}

func (t *Ticker) String() string {
	return fmt.Sprintf("%s O:%s H:%s L:%s LAST:%s BID/ASK:%s/%s VOL:%s TIME:%s",
		t.Pair, t.Open, t.High, t.Low, t.Last, t.Bid, t.Ask, t.Volume, t.Time.String())
}
