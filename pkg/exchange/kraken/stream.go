package kraken

import (
	"context"

	"github.com/pkg/errors"

	"github.com/richy-trading/richy/pkg/types"
)

// ErrStreamNotSupported is returned by the streaming methods when no stream is set.
var ErrStreamNotSupported = errors.New("streaming is not supported: no stream configured")

func (e *Exchange) withStream(f func(stream types.Stream) error) error {
	if e.stream == nil {
		return ErrStreamNotSupported
	}
	return f(e.stream)
}

func (e *Exchange) ConnectWebSocket(ctx context.Context) error {
	return e.withStream(func(stream types.Stream) error {
		return stream.Connect(ctx)
	})
}

func (e *Exchange) DisconnectWebSocket() error {
	return e.withStream(func(stream types.Stream) error {
		return stream.Close()
	})
}

func (e *Exchange) subscribe(channel types.Channel, pair string) error {
	return e.withStream(func(stream types.Stream) error {
		stream.Subscribe(channel, pair)
		return nil
	})
}

func (e *Exchange) SubscribeToTicker(pair string) error {
	return e.subscribe(types.TickerChannel, pair)
}

func (e *Exchange) SubscribeToOrderBook(pair string) error {
	return e.subscribe(types.BookChannel, pair)
}

func (e *Exchange) SubscribeToTrades(pair string) error {
	return e.subscribe(types.MarketTradeChannel, pair)
}

// SubscribeToOwnTrades subscribes to the account's fills, which are not bound to a pair.
func (e *Exchange) SubscribeToOwnTrades() error {
	return e.subscribe(types.OwnTradeChannel, "")
}

func (e *Exchange) SetTickerCallback(cb func(ticker types.Ticker)) error {
	return e.withStream(func(stream types.Stream) error {
		stream.OnTicker(cb)
		return nil
	})
}

func (e *Exchange) SetOrderBookCallback(cb func(book types.OrderBook)) error {
	return e.withStream(func(stream types.Stream) error {
		stream.OnBookSnapshot(cb)
		return nil
	})
}

func (e *Exchange) SetTradeCallback(cb func(trade types.Trade)) error {
	return e.withStream(func(stream types.Stream) error {
		stream.OnMarketTrade(cb)
		return nil
	})
}

func (e *Exchange) SetOwnTradeCallback(cb func(trade types.Trade)) error {
	return e.withStream(func(stream types.Stream) error {
		stream.OnOwnTrade(cb)
		return nil
	})
}
