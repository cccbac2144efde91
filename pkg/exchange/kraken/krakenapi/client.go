package krakenapi

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/c9s/requestgen"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"

	"github.com/richy-trading/richy/pkg/nonce"
	"github.com/richy-trading/richy/pkg/version"
)

const (
	ProductionRestBaseURL = "https://api.kraken.com"
	SandboxRestBaseURL    = "https://api.demo.kraken.com"

	defaultHTTPTimeout = 30 * time.Second
)

var DefaultUserAgent = "richy/" + version.Version

var log = logrus.WithField("exchange", "kraken")

// NonceGenerator issues the nonce of each private request. Values must be strictly
// increasing and the generator must be safe for concurrent use.
type NonceGenerator interface {
	GetInt64() int64
}

// RestClient holds the base url, the credentials and the http client shared by all
// services. Each request snapshots this state once, so Auth, UseSandbox or SetTimeout
// never affect a request that is already built.
type RestClient struct {
	requestgen.BaseAPIClient

	mu        sync.RWMutex
	key       string
	secret    string
	userAgent string
	nonce     NonceGenerator

	PublicService  *PublicService
	AccountService *AccountService
	TradeService   *TradeService
}

func NewClient() *RestClient {
	u, err := url.Parse(ProductionRestBaseURL)
	if err != nil {
		panic(err)
	}

	client := &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout: defaultHTTPTimeout,
			},
		},
		userAgent: DefaultUserAgent,
		nonce:     nonce.NewMicrosecondNonce(time.Now()),
	}

	client.PublicService = &PublicService{client: client}
	client.AccountService = &AccountService{client: client}
	client.TradeService = &TradeService{client: client}
	return client
}

// Auth sets the api key and the base64 encoded api secret.
func (c *RestClient) Auth(key, secret string) {
	c.mu.Lock()
	c.key = key
	// pragma: allowlist nextline secret
	c.secret = secret
	c.mu.Unlock()
}

// HasCredentials reports whether both the key and the secret are set.
func (c *RestClient) HasCredentials() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key != "" && c.secret != ""
}

// UseSandbox switches between the demo and the production base url.
func (c *RestClient) UseSandbox(sandbox bool) {
	baseURL := ProductionRestBaseURL
	if sandbox {
		baseURL = SandboxRestBaseURL
	}

	if err := c.SetBaseURL(baseURL); err != nil {
		panic(err)
	}
}

func (c *RestClient) SetBaseURL(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.BaseURL = u
	c.mu.Unlock()
	return nil
}

// GetBaseURL returns a copy of the current base url.
func (c *RestClient) GetBaseURL() *url.URL {
	c.mu.RLock()
	defer c.mu.RUnlock()
	u := *c.BaseURL
	return &u
}

// SetTimeout replaces the http client with a copy using the given timeout.
func (c *RestClient) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	httpClient := *c.HttpClient
	httpClient.Timeout = timeout
	c.HttpClient = &httpClient
}

func (c *RestClient) SetHttpClient(httpClient *http.Client) {
	c.mu.Lock()
	c.HttpClient = httpClient
	c.mu.Unlock()
}

func (c *RestClient) SetUserAgent(userAgent string) {
	c.mu.Lock()
	c.userAgent = userAgent
	c.mu.Unlock()
}

func (c *RestClient) SetNonceGenerator(ng NonceGenerator) {
	c.mu.Lock()
	c.nonce = ng
	c.mu.Unlock()
}

// SendRequest sends the request and reads the whole response body. The http status is not
// inspected: the venue reports application failures in the JSON error list, so a non-2xx
// response is handed to the response parser like any other.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	c.mu.RLock()
	httpClient := c.HttpClient
	c.mu.RUnlock()

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		recordLatencyMetrics(req, 0, time.Since(start))
		return nil, &TransportError{Method: req.Method, URL: redactURL(req.URL), Err: err}
	}

	response, err := requestgen.NewResponse(resp)
	recordLatencyMetrics(req, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: redactURL(req.URL), Err: err}
	}

	log.Debugf("%s %s -> %d (%d bytes in %s)", req.Method, req.URL.Path, resp.StatusCode, len(response.Body), time.Since(start))
	return response, nil
}

// Call runs one endpoint end to end: build, sign (private endpoints only), send and
// unwrap the response envelope. The returned value is the envelope's result.
func (c *RestClient) Call(ctx context.Context, endpoint Endpoint, params url.Values) (*fastjson.Value, error) {
	req, err := c.NewRequest(ctx, endpoint, params)
	if err != nil {
		recordErrorMetrics(endpoint.Path, err)
		return nil, err
	}

	response, err := c.SendRequest(req)
	if err != nil {
		recordErrorMetrics(endpoint.Path, err)
		return nil, err
	}

	result, err := parseEnvelope(response.Body)
	if err != nil {
		recordErrorMetrics(endpoint.Path, err)
		if apiErr, ok := err.(*APIError); ok {
			log.Warnf("%s returned %v", endpoint.Path, apiErr.Messages)
		}
		return nil, err
	}

	return result, nil
}

// decode maps the result of a successful call and counts mapping failures like any other
// failed call.
func decode[T any](ctx context.Context, c *RestClient, endpoint Endpoint, params url.Values, mapper func(*fastjson.Value) (T, error)) (T, error) {
	var zero T

	result, err := c.Call(ctx, endpoint, params)
	if err != nil {
		return zero, err
	}

	value, err := mapper(result)
	if err != nil {
		recordErrorMetrics(endpoint.Path, err)
		return zero, err
	}

	return value, nil
}

func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.Redacted()
}
