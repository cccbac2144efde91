package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderBookEntry struct {
	Price  decimal.Decimal
	Volume decimal.Decimal
	Time   time.Time
}

// OrderBook is a depth snapshot as returned by the venue, asks ascending and bids descending.
type OrderBook struct {
	Pair string
	Asks []OrderBookEntry
	Bids []OrderBookEntry
}

func (b *OrderBook) BestAsk() (OrderBookEntry, bool) {
	if len(b.Asks) == 0 {
		return OrderBookEntry{}, false
	}

	return b.Asks[0], true
}

func (b *OrderBook) BestBid() (OrderBookEntry, bool) {
	if len(b.Bids) == 0 {
		return OrderBookEntry{}, false
	}

	return b.Bids[0], true
}

func (b *OrderBook) BestBidAndAsk() (bid, ask OrderBookEntry, ok bool) {
	bid, ok1 := b.BestBid()
	ask, ok2 := b.BestAsk()
	return bid, ask, ok1 && ok2
}

func (b *OrderBook) String() string {
	sb := strings.Builder{}

	sb.WriteString("BOOK ")
	sb.WriteString(b.Pair)
	sb.WriteString("\n")

	if len(b.Asks) > 0 {
		sb.WriteString("ASKS:\n")
		for i := len(b.Asks) - 1; i >= 0; i-- {
			sb.WriteString(fmt.Sprintf("- ASK: %s x %s\n", b.Asks[i].Price, b.Asks[i].Volume))
		}
	}

	if len(b.Bids) > 0 {
		sb.WriteString("BIDS:\n")
		for _, bid := range b.Bids {
			sb.WriteString(fmt.Sprintf("- BID: %s x %s\n", bid.Price, bid.Volume))
		}
	}

	return sb.String()
}
