package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewTable returns a table writer mirrored to w. The default style is only applied with
// color, otherwise the plain light box is used.
func NewTable(w io.Writer, withColor bool, header ...interface{}) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	if withColor {
		t.SetStyle(*NewDefaultTableStyle())
	} else {
		t.SetStyle(table.StyleLight)
	}

	if len(header) > 0 {
		t.AppendHeader(table.Row(header))
	}
	return t
}
