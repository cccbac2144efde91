package krakenapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richy-trading/richy/pkg/testing/httptesting"
	"github.com/richy-trading/richy/pkg/types"
)

// captureForm records the decoded form body of the last request sent to the handler.
func captureForm(t *testing.T, dst *url.Values, content string) httptesting.RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		body, err := httptesting.ReadRequestBody(req)
		require.NoError(t, err)

		values, err := url.ParseQuery(body)
		require.NoError(t, err)

		*dst = values
		return httptesting.BuildResponseString(http.StatusOK, content), nil
	}
}

func TestAccountService_Balance(t *testing.T) {
	var form url.Values

	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/Balance", captureForm(t, &form, readFixture(t, "balance.json")))

	client := newTestClient(transport)
	balances, err := client.AccountService.Balance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, url.Values{"nonce": {"1616492376594"}}, form)

	require.Len(t, balances, 4)
	assert.Equal(t, "ZUSD", balances[0].Currency)
	assert.Equal(t, "171288.6158", balances[0].Total.String())
	assert.Equal(t, balances[0].Total, balances[0].Available)
	assert.True(t, balances[0].Locked.IsZero())

	m := types.NewBalanceMap(balances)
	assert.Equal(t, "1011.19088779", m["XXBT"].Total.String())
	assert.Equal(t, "818.55", m["XETH"].Total.String())
}

func TestAccountService_Balance_APIError(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/Balance", replyWith(`{"error":["EAPI:Invalid nonce"],"result":{}}`))

	client := newTestClient(transport)
	balances, err := client.AccountService.Balance(context.Background())
	require.Error(t, err)
	assert.Nil(t, balances)
	assert.True(t, IsAPIError(err, "EAPI:Invalid nonce"))
	assert.Equal(t, ErrorKindAPI, KindOf(err))
}

func TestAccountService_Balance_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind ErrorKind
	}{
		{name: "not a number", body: `{"error":[],"result":{"ZUSD":"lots"}}`, kind: ErrorKindFieldParse},
		{name: "object instead of string", body: `{"error":[],"result":{"ZUSD":{"balance":"1"}}}`, kind: ErrorKindUnexpectedShape},
		{name: "array result", body: `{"error":[],"result":[]}`, kind: ErrorKindUnexpectedShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &httptesting.MockTransport{}
			transport.POST("/0/private/Balance", replyWith(tt.body))

			client := newTestClient(transport)
			_, err := client.AccountService.Balance(context.Background())
			assert.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestAccountService_BalanceEx(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/BalanceEx", replyWithFixture(t, "balance_ex.json"))

	client := newTestClient(transport)
	balances, err := client.AccountService.BalanceEx(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 3)

	usd := balances[0]
	assert.Equal(t, "ZUSD", usd.Currency)
	assert.Equal(t, "25435.21", usd.Total.String())
	assert.Equal(t, "8249.76", usd.Locked.String())
	assert.Equal(t, "17185.45", usd.Available.String())

	eth := balances[2]
	assert.Equal(t, "XETH", eth.Currency)
	assert.True(t, eth.Locked.IsZero())
	assert.Equal(t, "0.5", eth.Available.String())
}

func TestAccountService_TradeBalance(t *testing.T) {
	var form url.Values

	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/TradeBalance", captureForm(t, &form, readFixture(t, "trade_balance.json")))

	client := newTestClient(transport)
	tb, err := client.AccountService.TradeBalance(context.Background(), "ZEUR")
	require.NoError(t, err)

	assert.Equal(t, "ZEUR", form.Get("asset"))
	assert.Equal(t, "1101.3425", tb.EquivalentBalance.String())
	assert.Equal(t, "392.2264", tb.TradeBalance.String())
	assert.Equal(t, "-10.0232", tb.UnrealizedNet.String())
	assert.Equal(t, "375.1678", tb.FreeMargin.String())
	assert.Equal(t, "5432.57", tb.MarginLevel.String())
}

func TestAccountService_TradeBalance_WithoutMarginLevel(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/TradeBalance", replyWith(`{"error":[],"result":{"eb":"1","tb":"1","m":"0","n":"0","c":"0","v":"0","e":"1","mf":"1"}}`))

	client := newTestClient(transport)
	tb, err := client.AccountService.TradeBalance(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, tb.MarginLevel.IsZero())
}

func TestAccountService_OpenPositions(t *testing.T) {
	var form url.Values

	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/OpenPositions", captureForm(t, &form, readFixture(t, "open_positions.json")))

	client := newTestClient(transport)
	positions, err := client.AccountService.OpenPositions(context.Background(), true, "TF5GVO-T7ZZ2-6NBKBI")
	require.NoError(t, err)

	assert.Equal(t, "true", form.Get("docalcs"))
	assert.Equal(t, "TF5GVO-T7ZZ2-6NBKBI", form.Get("txid"))

	require.Len(t, positions, 1)
	p := positions[0]
	assert.Equal(t, "TF5GVO-T7ZZ2-6NBKBI", p.ID)
	assert.Equal(t, "OLWNFG-LLH4R-D6SFFP", p.OrderID)
	assert.Equal(t, "XXBTZUSD", p.Pair)
	assert.Equal(t, types.PositionLong, p.Type)
	assert.Equal(t, "open", p.Status)
	assert.Equal(t, "8.82412861", p.Volume.String())
	assert.Equal(t, "0.202", p.VolumeClosed.String())
	assert.Equal(t, "258797.5", p.Value.String())
	assert.Equal(t, "154186.9728", p.UnrealizedPnL.String())
	assert.True(t, p.AvgPrice.Equal(p.Cost.Div(p.Volume)))
	assert.Equal(t, int64(1605280097), p.Time.Unix())
}

func TestAccountService_DepositMethods(t *testing.T) {
	var form url.Values

	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/DepositMethods", captureForm(t, &form, readFixture(t, "deposit_methods.json")))

	client := newTestClient(transport)
	methods, err := client.AccountService.DepositMethods(context.Background(), "XBT")
	require.NoError(t, err)

	assert.Equal(t, "XBT", form.Get("asset"))
	require.Len(t, methods, 2)

	assert.Equal(t, "Bitcoin", methods[0].Method)
	assert.True(t, methods[0].Limit.IsZero())
	assert.True(t, methods[0].GenAddress)
	assert.Equal(t, "0.0001", methods[0].Minimum.String())

	assert.Equal(t, "Bitcoin Lightning", methods[1].Method)
	assert.Equal(t, "1", methods[1].Limit.String())
	assert.False(t, methods[1].GenAddress)
}

func TestAccountService_DepositAddresses(t *testing.T) {
	var form url.Values

	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/DepositAddresses", captureForm(t, &form, readFixture(t, "deposit_addresses.json")))

	client := newTestClient(transport)
	addresses, err := client.AccountService.DepositAddresses(context.Background(), "XBT", "Bitcoin", true)
	require.NoError(t, err)

	assert.Equal(t, "XBT", form.Get("asset"))
	assert.Equal(t, "Bitcoin", form.Get("method"))
	assert.Equal(t, "true", form.Get("new"))

	require.Len(t, addresses, 2)
	assert.Equal(t, "2N9fRkx5JTWXWHmXzZtvhQsufvoYRMq9ExV", addresses[0].Address)
	assert.True(t, addresses[0].New)
	assert.True(t, addresses[0].ExpireTime.IsZero())

	assert.Equal(t, "3213542", addresses[1].Tag)
	assert.Equal(t, time.Unix(1688672000, 0), addresses[1].ExpireTime)
}

func TestAccountService_Withdraw(t *testing.T) {
	var form url.Values

	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/Withdraw", captureForm(t, &form, `{"error":[],"result":{"refid":"FTQcuak-V6Za8qrWnhzTx67yYHz8Tg"}}`))

	client := newTestClient(transport)
	refID, err := client.AccountService.Withdraw(context.Background(), "XBT", "btc_testnet_with1", decimal.RequireFromString("0.725"))
	require.NoError(t, err)

	assert.Equal(t, "FTQcuak-V6Za8qrWnhzTx67yYHz8Tg", refID)
	assert.Equal(t, "XBT", form.Get("asset"))
	assert.Equal(t, "btc_testnet_with1", form.Get("key"))
	assert.Equal(t, "0.725", form.Get("amount"))
	assert.Equal(t, "1616492376594", form.Get("nonce"))
}
