package krakenapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
)

// Signer computes the API-Sign header for private endpoints.
//
//	API-Sign = base64(HMAC-SHA512(base64decode(secret), path + SHA256(nonce + body)))
//
// The SHA256 digest is appended in its raw 32 byte form.
type Signer struct {
	key []byte
}

// NewSigner decodes the base64 api secret. A secret that is not valid standard base64
// fails with a *SigningError wrapping ErrInvalidSecret.
func NewSigner(secret string) (*Signer, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, &SigningError{Err: ErrInvalidSecret, Cause: err}
	}

	return &Signer{key: key}, nil
}

// Sign signs the exact body bytes that are going to be sent. path is the endpoint path
// without host or query, e.g. /0/private/Balance.
func (s *Signer) Sign(path, nonce, body string) string {
	digest := sha256.Sum256([]byte(nonce + body))

	mac := hmac.New(sha512.New, s.key)
	mac.Write([]byte(path))
	mac.Write(digest[:])
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Sign is a shortcut of NewSigner(secret).Sign(path, nonce, body).
func Sign(secret, path, nonce, body string) (string, error) {
	signer, err := NewSigner(secret)
	if err != nil {
		return "", err
	}

	return signer.Sign(path, nonce, body), nil
}
