package krakenapi

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richy-trading/richy/pkg/testing/httptesting"
)

const (
	testKey    = "test-api-key"
	testSecret = "a2V5" // base64("key")
	testNonce  = int64(1616492376594)
)

type fixedNonce int64

func (n fixedNonce) GetInt64() int64 { return int64(n) }

// sequenceNonce hands out start, start+1, ...
type sequenceNonce struct {
	mu   sync.Mutex
	next int64
}

func (n *sequenceNonce) GetInt64() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	v := n.next
	n.next++
	return v
}

func newTestClient(transport http.RoundTripper) *RestClient {
	client := NewClient()
	client.SetHttpClient(&http.Client{Transport: transport})
	client.Auth(testKey, testSecret)
	client.SetNonceGenerator(fixedNonce(testNonce))
	return client
}

func readFixture(t *testing.T, name string) string {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func replyWith(content string) httptesting.RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		resp := httptesting.BuildResponseString(http.StatusOK, content)
		return httptesting.SetHeader(resp, "Content-Type", "application/json"), nil
	}
}

func replyWithFixture(t *testing.T, name string) httptesting.RoundTripFunc {
	return replyWith(readFixture(t, name))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient()
	assert.Equal(t, ProductionRestBaseURL, client.GetBaseURL().String())
	assert.Equal(t, 30*time.Second, client.HttpClient.Timeout)
	assert.False(t, client.HasCredentials())

	client.UseSandbox(true)
	assert.Equal(t, SandboxRestBaseURL, client.GetBaseURL().String())

	client.UseSandbox(false)
	assert.Equal(t, ProductionRestBaseURL, client.GetBaseURL().String())

	client.SetTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, client.HttpClient.Timeout)

	client.Auth(testKey, testSecret)
	assert.True(t, client.HasCredentials())
}

func TestRestClient_SandboxSwitchKeepsBuiltRequests(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	req, err := client.NewRequest(ctx, EndpointTime, nil)
	require.NoError(t, err)

	client.UseSandbox(true)
	assert.Equal(t, "api.kraken.com", req.URL.Host)

	req2, err := client.NewRequest(ctx, EndpointTime, nil)
	require.NoError(t, err)
	assert.Equal(t, "api.demo.kraken.com", req2.URL.Host)
}

func TestRestClient_SendRequest_TransportError(t *testing.T) {
	client := NewClient()
	client.SetHttpClient(httptesting.HttpClientWithError(errors.New("connection refused")))

	_, err := client.PublicService.ServerTime(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Contains(t, transportErr.URL, "/0/public/Time")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, ErrorKindTransport, KindOf(err))
}

func TestRestClient_SendRequest_ContextCanceled(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/0/public/Time", func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})

	client := newTestClient(transport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.PublicService.ServerTime(ctx)
	require.Error(t, err)
	assert.Equal(t, ErrorKindTransport, KindOf(err))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRestClient_SendRequest_IgnoresHTTPStatus(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.GET("/0/public/Time", func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusBadGateway, readFixture(t, "time.json")), nil
	})
	transport.POST("/0/private/Balance", func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusForbidden, `{"error":["EAPI:Invalid key"]}`), nil
	})

	client := newTestClient(transport)
	ctx := context.Background()

	serverTime, err := client.PublicService.ServerTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1688669448), serverTime.Time.Unix())

	_, err = client.AccountService.Balance(ctx)
	assert.True(t, IsAPIError(err, "EAPI:Invalid key"))
}

func TestRestClient_Call_UnknownPath(t *testing.T) {
	client := newTestClient(&httptesting.MockTransport{})

	_, err := client.Call(context.Background(), publicEndpoint("Nope"), nil)
	assert.Equal(t, ErrorKindTransport, KindOf(err))
}

func TestRestClient_ErrorMetrics(t *testing.T) {
	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/TradeBalance", replyWith(`{"error":["EGeneral:Internal error"]}`))
	transport.POST("/0/private/DepositMethods", replyWith(`{"error":[],"result":[{"method":"Bitcoin","fee":"abc"}]}`))

	client := newTestClient(transport)
	ctx := context.Background()

	apiCounter := requestErrorMetrics.WithLabelValues("/0/private/TradeBalance", string(ErrorKindAPI))
	parseCounter := requestErrorMetrics.WithLabelValues("/0/private/DepositMethods", string(ErrorKindFieldParse))
	apiBefore := testutil.ToFloat64(apiCounter)
	parseBefore := testutil.ToFloat64(parseCounter)

	_, err := client.AccountService.TradeBalance(ctx, "")
	assert.Equal(t, ErrorKindAPI, KindOf(err))

	_, err = client.AccountService.DepositMethods(ctx, "XBT")
	assert.Equal(t, ErrorKindFieldParse, KindOf(err))

	assert.Equal(t, apiBefore+1, testutil.ToFloat64(apiCounter))
	assert.Equal(t, parseBefore+1, testutil.ToFloat64(parseCounter))
}

func TestRestClient_ConcurrentPrivateCallsUseDistinctNonces(t *testing.T) {
	var (
		mu     sync.Mutex
		nonces = map[string]int{}
	)

	transport := &httptesting.MockTransport{}
	transport.POST("/0/private/Balance", func(req *http.Request) (*http.Response, error) {
		body, err := httptesting.ReadRequestBody(req)
		if err != nil {
			return nil, err
		}

		values, err := url.ParseQuery(body)
		if err != nil {
			return nil, err
		}

		mu.Lock()
		nonces[values.Get("nonce")]++
		mu.Unlock()
		return httptesting.BuildResponseString(http.StatusOK, readFixture(t, "balance.json")), nil
	})

	client := newTestClient(transport)
	client.SetNonceGenerator(&sequenceNonce{next: testNonce})

	const workers, calls = 8, 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < calls; i++ {
				_, err := client.AccountService.Balance(context.Background())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, nonces, workers*calls)
	for nonce, n := range nonces {
		assert.Equal(t, 1, n, "nonce %s reused", nonce)
		assert.False(t, strings.HasPrefix(nonce, "-"))
	}
}

func TestRestClient_SendsUserAgent(t *testing.T) {
	var saved *http.Request

	client := NewClient()
	client.SetHttpClient(httptesting.HttpClientSaver(&saved, readFixture(t, "time.json")))
	client.SetUserAgent("richy-test/1.0")

	_, err := client.PublicService.ServerTime(context.Background())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "richy-test/1.0", saved.Header.Get("User-Agent"))
	assert.Empty(t, saved.Header.Get("API-Key"))
}

func TestRestClient_MalformedBody(t *testing.T) {
	client := NewClient()
	client.SetHttpClient(httptesting.HttpClientWithContent("<html>bad gateway</html>"))

	_, err := client.PublicService.ServerTime(context.Background())
	require.Error(t, err)
	assert.Equal(t, ErrorKindMalformedResponse, KindOf(err))
}
