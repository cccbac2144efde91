package types

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PositionType string

const (
	PositionLong  PositionType = "long"
	PositionShort PositionType = "short"
)

// PositionTypeFromSide maps the side of the opening order to the position direction.
func PositionTypeFromSide(side SideType) PositionType {
	if side == SideTypeSell {
		return PositionShort
	}
	return PositionLong
}

// Position is an open margin position.
type Position struct {
	ID           string
	OrderID      string
	Pair         string
	Type         PositionType
	Status       string
	Volume       decimal.Decimal
	VolumeClosed decimal.Decimal
	Cost         decimal.Decimal
	Fee          decimal.Decimal
	Margin       decimal.Decimal
	AvgPrice     decimal.Decimal

	// Value and UnrealizedPnL are only computed by the venue when requested (docalcs).
	Value         decimal.Decimal
	UnrealizedPnL decimal.Decimal

	Time time.Time
}

func (p Position) String() string {
	return fmt.Sprintf("POSITION %s %s %s %s @ %s pnl=%s", p.ID, p.Pair, p.Type, p.Volume, p.AvgPrice, p.UnrealizedPnL)
}
