package testutil

import (
	"os"
	"strconv"
	"testing"

	"github.com/richy-trading/richy/pkg/config"
)

// IntegrationTestConfigured reports whether the live api tests of prefix are enabled:
// PREFIX_API_KEY and PREFIX_API_SECRET are set and TEST_PREFIX=1. They never run on CI.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	if b, _ := strconv.ParseBool(os.Getenv("CI")); b {
		return "", "", false
	}

	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s, secret = %s", config.MaskSecret(key), config.MaskSecret(secret))
	}

	return key, secret, ok
}

// IntegrationTestSandbox reports whether PREFIX_SANDBOX asks for the demo environment.
func IntegrationTestSandbox(prefix string) bool {
	b, _ := strconv.ParseBool(os.Getenv(prefix + "_SANDBOX"))
	return b
}
