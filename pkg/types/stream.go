package types

import (
	"context"
	"sync"
)

// Stream is the capability interface of a streaming market data / user data source.
// The REST client never depends on a concrete implementation, it only delegates.
//
//go:generate mockgen -destination=mocks/mock_stream.go -package=mocks . Stream
type Stream interface {
	StandardStreamEventHub

	Subscribe(channel Channel, pair string)
	Unsubscribe(channel Channel, pair string)
	Connect(ctx context.Context) error
	Close() error
}

type Channel string

const (
	TickerChannel      = Channel("ticker")
	BookChannel        = Channel("book")
	MarketTradeChannel = Channel("trade")
	OwnTradeChannel    = Channel("ownTrades")
)

type Subscription struct {
	Channel Channel
	Pair    string
}

// StandardStream keeps the subscriptions and the callbacks of a Stream. Stream
// implementations embed it and only add the transport.
//
//go:generate callbackgen -type StandardStream -interface
type StandardStream struct {
	mu            sync.Mutex
	subscriptions []Subscription

	connectCallbacks []func()

	disconnectCallbacks []func()

	tickerCallbacks []func(ticker Ticker)

	bookSnapshotCallbacks []func(book OrderBook)

	marketTradeCallbacks []func(trade Trade)

	ownTradeCallbacks []func(trade Trade)
}

func (stream *StandardStream) Subscribe(channel Channel, pair string) {
	stream.mu.Lock()
	defer stream.mu.Unlock()

	for _, s := range stream.subscriptions {
		if s.Channel == channel && s.Pair == pair {
			return
		}
	}

	stream.subscriptions = append(stream.subscriptions, Subscription{
		Channel: channel,
		Pair:    pair,
	})
}

func (stream *StandardStream) Unsubscribe(channel Channel, pair string) {
	stream.mu.Lock()
	defer stream.mu.Unlock()

	for i, s := range stream.subscriptions {
		if s.Channel == channel && s.Pair == pair {
			stream.subscriptions = append(stream.subscriptions[:i], stream.subscriptions[i+1:]...)
			return
		}
	}
}

// Subscriptions returns a copy of the current subscriptions in subscription order.
func (stream *StandardStream) Subscriptions() []Subscription {
	stream.mu.Lock()
	defer stream.mu.Unlock()

	subs := make([]Subscription, len(stream.subscriptions))
	copy(subs, stream.subscriptions)
	return subs
}
