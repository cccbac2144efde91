package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStandardStream_Subscriptions(t *testing.T) {
	stream := &StandardStream{}
	stream.Subscribe(TickerChannel, "XBT/USD")
	stream.Subscribe(BookChannel, "XBT/USD")
	stream.Subscribe(TickerChannel, "XBT/USD")

	assert.Equal(t, []Subscription{
		{Channel: TickerChannel, Pair: "XBT/USD"},
		{Channel: BookChannel, Pair: "XBT/USD"},
	}, stream.Subscriptions())

	stream.Unsubscribe(TickerChannel, "XBT/USD")
	assert.Equal(t, []Subscription{
		{Channel: BookChannel, Pair: "XBT/USD"},
	}, stream.Subscriptions())

	// unknown subscriptions are ignored
	stream.Unsubscribe(OwnTradeChannel, "")
	assert.Len(t, stream.Subscriptions(), 1)
}

func TestStandardStream_Callbacks(t *testing.T) {
	stream := &StandardStream{}

	var tickers []Ticker
	stream.OnTicker(func(ticker Ticker) {
		tickers = append(tickers, ticker)
	})

	var trades []Trade
	stream.OnMarketTrade(func(trade Trade) {
		trades = append(trades, trade)
	})

	connected := 0
	stream.OnConnect(func() { connected++ })

	stream.EmitConnect()
	stream.EmitTicker(Ticker{Pair: "XBTUSD", Last: decimal.NewFromInt(30005)})
	stream.EmitMarketTrade(Trade{Pair: "XBTUSD", Side: SideTypeBuy})
	stream.EmitOwnTrade(Trade{Pair: "XBTUSD"})

	assert.Equal(t, 1, connected)
	if assert.Len(t, tickers, 1) {
		assert.Equal(t, "30005", tickers[0].Last.String())
	}
	assert.Len(t, trades, 1)
}
