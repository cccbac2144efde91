package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/richy-trading/richy/pkg/style"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	buyColor  = color.New(color.FgGreen)
	sellColor = color.New(color.FgRed)
)

func errFlagRequired(name string) error {
	return errors.Errorf("--%s option is required", name)
}

func newTable(cmd *cobra.Command, header ...interface{}) table.Writer {
	return style.NewTable(cmd.OutOrStdout(), !color.NoColor, header...)
}

// requiredString reads a string flag that must not be empty.
func requiredString(cmd *cobra.Command, name string) (string, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}

	if s == "" {
		return "", errFlagRequired(name)
	}

	return s, nil
}

// decimalFlag parses a decimal string flag, an empty flag is zero.
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return decimal.Zero, err
	}

	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid --%s value %q", name, s)
	}

	return d, nil
}

// sinceFlag parses a duration flag like "24h" into the time that long ago. Zero means no
// lower bound.
func sinceFlag(cmd *cobra.Command, name string) (time.Time, error) {
	d, err := cmd.Flags().GetDuration(name)
	if err != nil {
		return time.Time{}, err
	}

	if d <= 0 {
		return time.Time{}, nil
	}

	return time.Now().Add(-d), nil
}

// decimalRatio returns a / b, zero when b is zero.
func decimalRatio(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
