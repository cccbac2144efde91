package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	assert.Equal(t, "1m", Interval1m.String())
	assert.Equal(t, "4h", Interval4h.String())
	assert.Equal(t, "1w", Interval1w.String())
	assert.Equal(t, "15d", Interval15d.String())
	assert.Equal(t, "1d", Interval1d.String())
	assert.Equal(t, 240, Interval4h.Minutes())
	assert.Equal(t, time.Hour, Interval1h.Duration())
	assert.True(t, Interval15m.Valid())
	assert.False(t, Interval(2).Valid())
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input   string
		want    Interval
		wantErr bool
	}{
		{input: "1m", want: Interval1m},
		{input: "60", want: Interval1h},
		{input: "1h", want: Interval1h},
		{input: "1d", want: Interval1d},
		{input: "1w", want: Interval1w},
		{input: "7d", want: Interval1w},
		{input: "10080", want: Interval1w},
		{input: "21600", want: Interval15d},
		{input: "2", wantErr: true},
		{input: "1y", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKLine_EndTime(t *testing.T) {
	start := time.Unix(1688671200, 0)
	k := KLine{Interval: Interval15m, StartTime: start}
	assert.Equal(t, start.Add(15*time.Minute), k.EndTime())
}
