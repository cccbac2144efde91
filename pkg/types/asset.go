package types

import (
	"github.com/shopspring/decimal"
)

type Asset struct {
	Name            string
	AltName         string
	Class           string
	Decimals        int32
	DisplayDecimals int32
	Status          string
}

// FeeTier is one step of a fee schedule: Percent applies from a 30 day volume of Volume
// upwards.
type FeeTier struct {
	Volume  decimal.Decimal
	Percent decimal.Decimal
}

type AssetPair struct {
	Name          string
	AltName       string
	WSName        string
	Base          string
	Quote         string
	PairDecimals  int32
	LotDecimals   int32
	CostDecimals  int32
	OrderMin      decimal.Decimal
	CostMin       decimal.Decimal
	TickSize      decimal.Decimal
	Status        string
	Fees          []FeeTier // taker
	FeesMaker     []FeeTier
	FeeVolumeCurr string
}

// Matches reports whether the given name refers to this pair, by venue name, alternate
// name or websocket name.
func (p AssetPair) Matches(name string) bool {
	return name != "" && (p.Name == name || p.AltName == name || p.WSName == name)
}

// PriceTick returns the minimal price increment, derived from the pair decimals when the
// venue does not publish an explicit tick size.
func (p AssetPair) PriceTick() decimal.Decimal {
	if p.TickSize.IsPositive() {
		return p.TickSize
	}
	return decimal.New(1, -p.PairDecimals)
}

// FeePercent returns the fee percentage for the given 30 day volume. Maker fees fall back
// to the taker schedule for pairs without a maker schedule.
func (p AssetPair) FeePercent(volume30d decimal.Decimal, maker bool) decimal.Decimal {
	tiers := p.Fees
	if maker && len(p.FeesMaker) > 0 {
		tiers = p.FeesMaker
	}

	fee := decimal.Zero
	for _, tier := range tiers {
		if volume30d.LessThan(tier.Volume) {
			break
		}
		fee = tier.Percent
	}
	return fee
}
