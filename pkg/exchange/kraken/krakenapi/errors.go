package krakenapi

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSecret    = errors.New("api secret is not valid base64")
	ErrEmptyCredentials = errors.New("api key and api secret are required for private endpoints")
)

// ErrorKind classifies a failed call.
type ErrorKind string

const (
	ErrorKindNone              ErrorKind = ""
	ErrorKindTransport         ErrorKind = "transport"
	ErrorKindSigning           ErrorKind = "signing"
	ErrorKindMalformedResponse ErrorKind = "malformed_response"
	ErrorKindUnexpectedShape   ErrorKind = "unexpected_shape"
	ErrorKindFieldParse        ErrorKind = "field_parse"
	ErrorKindAPI               ErrorKind = "api"
	ErrorKindUnknown           ErrorKind = "unknown"
)

// TransportError is returned when the http exchange itself failed: connection errors,
// timeouts, canceled contexts, TLS failures or a broken response body.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("kraken transport error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SigningError means the request could not be signed and was never sent.
type SigningError struct {
	Err   error // ErrInvalidSecret or ErrEmptyCredentials
	Cause error
}

func (e *SigningError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("kraken signing error: %v: %v", e.Err, e.Cause)
	}
	return fmt.Sprintf("kraken signing error: %v", e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }

// MalformedResponseError means the response body is not valid JSON.
type MalformedResponseError struct {
	Body string // excerpt
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("kraken malformed response: %v, body: %q", e.Err, e.Body)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// UnexpectedShapeError means a JSON value is missing or has the wrong type.
type UnexpectedShapeError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *UnexpectedShapeError) Error() string {
	return fmt.Sprintf("kraken unexpected response shape: %s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// FieldParseError means a field is present but its value could not be parsed.
type FieldParseError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("kraken field parse error: %s: %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }

// APIError carries the error list reported by the venue, e.g. "EAPI:Invalid nonce".
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return "kraken api error: " + strings.Join(e.Messages, "; ")
}

// Contains reports whether any of the messages contains the given code,
// e.g. "EOrder:Insufficient funds" or just "EGeneral".
func (e *APIError) Contains(code string) bool {
	for _, m := range e.Messages {
		if strings.Contains(m, code) {
			return true
		}
	}
	return false
}

// KindOf returns the kind of the most specific kraken error in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}

	var (
		transportErr *TransportError
		signingErr   *SigningError
		malformedErr *MalformedResponseError
		shapeErr     *UnexpectedShapeError
		fieldErr     *FieldParseError
		apiErr       *APIError
	)

	switch {
	case errors.As(err, &apiErr):
		return ErrorKindAPI
	case errors.As(err, &signingErr):
		return ErrorKindSigning
	case errors.As(err, &transportErr):
		return ErrorKindTransport
	case errors.As(err, &malformedErr):
		return ErrorKindMalformedResponse
	case errors.As(err, &fieldErr):
		return ErrorKindFieldParse
	case errors.As(err, &shapeErr):
		return ErrorKindUnexpectedShape
	}

	return ErrorKindUnknown
}

// IsAPIError reports whether err is a venue error containing code.
func IsAPIError(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Contains(code)
}
