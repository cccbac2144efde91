package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrationTestConfigured(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("FOO_API_KEY", "abcdefgh")
	t.Setenv("FOO_API_SECRET", "c2VjcmV0")

	t.Setenv("TEST_FOO", "")
	_, _, ok := IntegrationTestConfigured(t, "FOO")
	assert.False(t, ok)

	t.Setenv("TEST_FOO", "1")
	key, secret, ok := IntegrationTestConfigured(t, "FOO")
	assert.True(t, ok)
	assert.Equal(t, "abcdefgh", key)
	assert.Equal(t, "c2VjcmV0", secret)

	t.Setenv("CI", "true")
	_, _, ok = IntegrationTestConfigured(t, "FOO")
	assert.False(t, ok)
}

func TestIntegrationTestSandbox(t *testing.T) {
	t.Setenv("FOO_SANDBOX", "1")
	assert.True(t, IntegrationTestSandbox("FOO"))

	t.Setenv("FOO_SANDBOX", "")
	assert.False(t, IntegrationTestSandbox("FOO"))
}
