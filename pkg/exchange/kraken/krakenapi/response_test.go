package krakenapi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind ErrorKind
	}{
		{name: "object result", body: `{"error":[],"result":{"count":1}}`},
		{name: "array result", body: `{"error":[],"result":[]}`},
		{name: "missing error list", body: `{"result":{}}`},
		{name: "null error list", body: `{"error":null,"result":{}}`},
		{name: "not json", body: `<html>502 Bad Gateway</html>`, kind: ErrorKindMalformedResponse},
		{name: "truncated", body: `{"error":[],"result":{`, kind: ErrorKindMalformedResponse},
		{name: "empty body", body: ``, kind: ErrorKindMalformedResponse},
		{name: "top level array", body: `[]`, kind: ErrorKindUnexpectedShape},
		{name: "error is a string", body: `{"error":"EAPI:Invalid nonce","result":{}}`, kind: ErrorKindUnexpectedShape},
		{name: "missing result", body: `{"error":[]}`, kind: ErrorKindUnexpectedShape},
		{name: "null result", body: `{"error":[],"result":null}`, kind: ErrorKindUnexpectedShape},
		{name: "scalar result", body: `{"error":[],"result":"ok"}`, kind: ErrorKindUnexpectedShape},
		{name: "error wins over result", body: `{"error":["EAPI:Invalid nonce"],"result":{"ZUSD":"1.0"}}`, kind: ErrorKindAPI},
		{name: "error wins over missing result", body: `{"error":["EGeneral:Invalid arguments"]}`, kind: ErrorKindAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseEnvelope([]byte(tt.body))
			assert.Equal(t, tt.kind, KindOf(err))
			if tt.kind == ErrorKindNone {
				assert.NotNil(t, result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestParseEnvelope_APIErrorMessages(t *testing.T) {
	_, err := parseEnvelope([]byte(`{"error":["EOrder:Insufficient funds","EGeneral:Temporary lockout"],"result":{}}`))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, []string{"EOrder:Insufficient funds", "EGeneral:Temporary lockout"}, apiErr.Messages)
	assert.True(t, apiErr.Contains("EOrder:Insufficient funds"))
	assert.True(t, apiErr.Contains("EGeneral"))
	assert.False(t, apiErr.Contains("EAPI"))
	assert.Equal(t, "kraken api error: EOrder:Insufficient funds; EGeneral:Temporary lockout", err.Error())
}

func TestParseEnvelope_MalformedKeepsExcerpt(t *testing.T) {
	body := make([]byte, 1024)
	for i := range body {
		body[i] = 'x'
	}

	_, err := parseEnvelope(body)

	var malformed *MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Len(t, malformed.Body, maxBodyExcerpt+3)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorKindNone, KindOf(nil))
	assert.Equal(t, ErrorKindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, ErrorKindAPI, KindOf(errors.Wrap(&APIError{Messages: []string{"EAPI:Rate limit exceeded"}}, "balance")))
	assert.Equal(t, ErrorKindFieldParse, KindOf(&FieldParseError{Field: "result.a[0]", Value: "x"}))
	assert.Equal(t, ErrorKindUnexpectedShape, KindOf(&UnexpectedShapeError{Field: "result"}))
	assert.Equal(t, ErrorKindSigning, KindOf(&SigningError{Err: ErrEmptyCredentials}))
	assert.Equal(t, ErrorKindTransport, KindOf(&TransportError{Err: errors.New("timeout")}))
	assert.Equal(t, ErrorKindMalformedResponse, KindOf(&MalformedResponseError{Err: errors.New("eof")}))
}
