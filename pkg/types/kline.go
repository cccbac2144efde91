package types

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Interval is a candle width. The venue only accepts the values listed below.
type Interval int

const (
	Interval1m  Interval = 1
	Interval5m  Interval = 5
	Interval15m Interval = 15
	Interval30m Interval = 30
	Interval1h  Interval = 60
	Interval4h  Interval = 240
	Interval1d  Interval = 1440
	Interval1w  Interval = 10080
	Interval15d Interval = 21600
)

var SupportedIntervals = []Interval{
	Interval1m, Interval5m, Interval15m, Interval30m, Interval1h, Interval4h, Interval1d, Interval1w, Interval15d,
}

func (i Interval) Minutes() int {
	return int(i)
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i) * time.Minute
}

func (i Interval) Valid() bool {
	for _, s := range SupportedIntervals {
		if s == i {
			return true
		}
	}
	return false
}

func (i Interval) String() string {
	switch {
	case i == Interval1w:
		return "1w"
	case i%1440 == 0:
		return fmt.Sprintf("%dd", i/1440)
	case i%60 == 0:
		return fmt.Sprintf("%dh", i/60)
	}
	return fmt.Sprintf("%dm", int(i))
}

// ParseInterval accepts the interval in minutes ("60") or in the short form printed by
// String ("1h", "1w").
func ParseInterval(s string) (Interval, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if i := Interval(n); i.Valid() {
			return i, nil
		}
		return 0, errors.Errorf("unsupported interval %q", s)
	}

	for _, i := range SupportedIntervals {
		if i.String() == s {
			return i, nil
		}
	}

	if s == "7d" {
		return Interval1w, nil
	}

	return 0, errors.Errorf("unsupported interval %q", s)
}

type KLine struct {
	Pair      string
	Interval  Interval
	StartTime time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	VWAP      decimal.Decimal
	Volume    decimal.Decimal
	Count     int64
}

func (k KLine) EndTime() time.Time {
	return k.StartTime.Add(k.Interval.Duration())
}

func (k KLine) String() string {
	return fmt.Sprintf("KLINE %s %s %s O:%s H:%s L:%s C:%s V:%s",
		k.Pair, k.Interval, k.StartTime.Format(time.RFC3339), k.Open, k.High, k.Low, k.Close, k.Volume)
}
