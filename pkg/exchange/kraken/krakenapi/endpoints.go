package krakenapi

import "net/http"

// Endpoint describes one REST path. Private endpoints are signed and sent as POST,
// public ones are sent as GET with the parameters in the query string.
type Endpoint struct {
	Path    string
	Method  string
	Private bool
}

func publicEndpoint(name string) Endpoint {
	return Endpoint{Path: "/0/public/" + name, Method: http.MethodGet}
}

func privateEndpoint(name string) Endpoint {
	return Endpoint{Path: "/0/private/" + name, Method: http.MethodPost, Private: true}
}

var (
	EndpointTime         = publicEndpoint("Time")
	EndpointSystemStatus = publicEndpoint("SystemStatus")
	EndpointAssets       = publicEndpoint("Assets")
	EndpointAssetPairs   = publicEndpoint("AssetPairs")
	EndpointTicker       = publicEndpoint("Ticker")
	EndpointDepth        = publicEndpoint("Depth")
	EndpointTrades       = publicEndpoint("Trades")
	EndpointOHLC         = publicEndpoint("OHLC")

	EndpointBalance          = privateEndpoint("Balance")
	EndpointBalanceEx        = privateEndpoint("BalanceEx")
	EndpointTradeBalance     = privateEndpoint("TradeBalance")
	EndpointAddOrder         = privateEndpoint("AddOrder")
	EndpointCancelOrder      = privateEndpoint("CancelOrder")
	EndpointCancelAll        = privateEndpoint("CancelAll")
	EndpointOpenOrders       = privateEndpoint("OpenOrders")
	EndpointClosedOrders     = privateEndpoint("ClosedOrders")
	EndpointQueryOrders      = privateEndpoint("QueryOrders")
	EndpointTradesHistory    = privateEndpoint("TradesHistory")
	EndpointOpenPositions    = privateEndpoint("OpenPositions")
	EndpointDepositMethods   = privateEndpoint("DepositMethods")
	EndpointDepositAddresses = privateEndpoint("DepositAddresses")
	EndpointWithdraw         = privateEndpoint("Withdraw")
)
