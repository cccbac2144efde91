package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExchangeName_UnmarshalJSON(t *testing.T) {
	var n ExchangeName
	assert.NoError(t, json.Unmarshal([]byte(`"Kraken"`), &n))
	assert.Equal(t, ExchangeKraken, n)

	assert.Error(t, json.Unmarshal([]byte(`"binance"`), &n))
}
