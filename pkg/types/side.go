package types

import "fmt"

// SideType define side type of order
type SideType string

const (
	SideTypeBuy  = SideType("buy")
	SideTypeSell = SideType("sell")
)

func (side SideType) Reverse() SideType {
	switch side {
	case SideTypeBuy:
		return SideTypeSell

	case SideTypeSell:
		return SideTypeBuy
	}

	return side
}

func (side SideType) String() string {
	return string(side)
}

// ParseSideType accepts the long form ("buy", "sell") and the one letter form ("b", "s")
// used by the public trades endpoint.
func ParseSideType(s string) (SideType, error) {
	switch s {
	case "buy", "b", "BUY":
		return SideTypeBuy, nil
	case "sell", "s", "SELL":
		return SideTypeSell, nil
	}

	return "", fmt.Errorf("unknown side type: %q", s)
}
