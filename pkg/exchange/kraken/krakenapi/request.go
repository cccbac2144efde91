package krakenapi

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

// EncodeForm serializes params as application/x-www-form-urlencoded with sorted keys.
// The same bytes are signed and sent.
func EncodeForm(params url.Values) string {
	return params.Encode()
}

// PrivateBody builds the POST body of a private request: the nonce always comes first,
// followed by the remaining parameters in EncodeForm order. A "nonce" key in params is
// ignored.
func PrivateBody(nonce string, params url.Values) string {
	rest := make(url.Values, len(params))
	for k, v := range params {
		if k == "nonce" {
			continue
		}
		rest[k] = v
	}

	var sb strings.Builder
	sb.WriteString("nonce=")
	sb.WriteString(url.QueryEscape(nonce))
	if encoded := EncodeForm(rest); encoded != "" {
		sb.WriteByte('&')
		sb.WriteString(encoded)
	}
	return sb.String()
}

// NewRequest builds the http request of endpoint. Private endpoints get a fresh nonce
// and the API-Key / API-Sign headers; missing or undecodable credentials fail with a
// *SigningError before a nonce is consumed.
func (c *RestClient) NewRequest(ctx context.Context, endpoint Endpoint, params url.Values) (*http.Request, error) {
	c.mu.RLock()
	baseURL := c.BaseURL
	key, secret := c.key, c.secret
	userAgent := c.userAgent
	ng := c.nonce
	c.mu.RUnlock()

	// the base url may carry a path prefix, e.g. a gateway mount point
	pathURL := *baseURL
	pathURL.Path = path.Join("/", baseURL.Path, endpoint.Path)
	pathURL.RawPath = ""

	if !endpoint.Private {
		if len(params) > 0 {
			pathURL.RawQuery = EncodeForm(params)
		}

		req, err := http.NewRequestWithContext(ctx, endpoint.Method, pathURL.String(), nil)
		if err != nil {
			return nil, err
		}

		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("User-Agent", userAgent)
		return req, nil
	}

	if key == "" || secret == "" {
		return nil, &SigningError{Err: ErrEmptyCredentials}
	}

	signer, err := NewSigner(secret)
	if err != nil {
		return nil, err
	}

	nonce := strconv.FormatInt(ng.GetInt64(), 10)
	body := PrivateBody(nonce, params)

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, pathURL.String(), strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("API-Key", key)
	req.Header.Set("API-Sign", signer.Sign(endpoint.Path, nonce, body))
	return req, nil
}
