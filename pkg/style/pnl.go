package style

import (
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

var LossEmoji = "🔥"
var ProfitEmoji = "💰"
var DefaultPnLLevelResolution = decimal.RequireFromString("0.001")

var (
	profitColor = color.New(color.FgGreen)
	lossColor   = color.New(color.FgRed)
)

// PnLColor renders the signed pnl in green or red.
func PnLColor(pnl decimal.Decimal) string {
	if pnl.IsNegative() {
		return lossColor.Sprint(PnLSignString(pnl))
	}
	return profitColor.Sprint(PnLSignString(pnl))
}

func PnLSignString(pnl decimal.Decimal) string {
	if pnl.IsPositive() {
		return "+" + pnl.String()
	}
	return pnl.String()
}

func PnLEmojiSimple(pnl decimal.Decimal) string {
	if pnl.IsNegative() {
		return LossEmoji
	}

	if pnl.IsZero() {
		return ""
	}

	return ProfitEmoji
}

// PnLEmojiMargin repeats the emoji once per resolution step of the margin ratio.
func PnLEmojiMargin(pnl, margin, resolution decimal.Decimal) (out string) {
	if margin.IsZero() || !resolution.IsPositive() {
		return PnLEmojiSimple(pnl)
	}

	if pnl.IsNegative() {
		out = LossEmoji
		level := margin.Neg().Div(resolution).IntPart()
		for i := int64(1); i < level; i++ {
			out += LossEmoji
		}
		return out
	}

	if pnl.IsZero() {
		return out
	}

	out = ProfitEmoji
	level := margin.Div(resolution).IntPart()
	for i := int64(1); i < level; i++ {
		out += ProfitEmoji
	}
	return out
}
