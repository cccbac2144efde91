package style

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPnLSignString(t *testing.T) {
	assert.Equal(t, "+1.5", PnLSignString(decimal.RequireFromString("1.5")))
	assert.Equal(t, "-1.5", PnLSignString(decimal.RequireFromString("-1.5")))
	assert.Equal(t, "0", PnLSignString(decimal.Zero))
}

func TestPnLColor_NoColor(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	assert.Equal(t, "+2", PnLColor(decimal.NewFromInt(2)))
	assert.Equal(t, "-2", PnLColor(decimal.NewFromInt(-2)))
}

func TestPnLEmojiMargin(t *testing.T) {
	resolution := DefaultPnLLevelResolution

	assert.Equal(t, "", PnLEmojiMargin(decimal.Zero, decimal.RequireFromString("0.01"), resolution))
	assert.Equal(t, ProfitEmoji, PnLEmojiMargin(decimal.NewFromInt(1), decimal.Zero, resolution))
	assert.Equal(t, ProfitEmoji+ProfitEmoji+ProfitEmoji, PnLEmojiMargin(decimal.NewFromInt(1), decimal.RequireFromString("0.003"), resolution))
	assert.Equal(t, LossEmoji+LossEmoji, PnLEmojiMargin(decimal.NewFromInt(-1), decimal.RequireFromString("-0.002"), resolution))
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer

	tbl := NewTable(&buf, false, "PAIR", "LAST")
	tbl.AppendRow([]interface{}{"XBTUSD", "30005"})
	tbl.Render()

	out := buf.String()
	assert.Contains(t, out, "PAIR")
	assert.Contains(t, out, "XBTUSD")
	assert.Contains(t, out, "30005")
}
