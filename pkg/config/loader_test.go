package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		f       func(t *testing.T, config *Config)
	}{
		{
			name: "name value lines",
			content: "# richy configuration file\n" +
				"host:api.kraken.com\n" +
				"api_key:my-key\n" +
				"api_secret:a2V5\n",
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, "api.kraken.com", config.Host)
				assert.Equal(t, "my-key", config.APIKey)
				assert.Equal(t, "a2V5", config.APISecret)
				assert.Equal(t, DefaultTimeout, config.Timeout)
			},
		},
		{
			name: "yaml with optional fields",
			content: "host: https://api.kraken.com\n" +
				"api_key: my-key\n" +
				"api_secret: a2V5\n" +
				"sandbox: true\n" +
				"timeout: 5s\n" +
				"user_agent: my-bot/1.0\n" +
				"pairs:\n  - XBTUSD\n  - ETHUSD\n",
			f: func(t *testing.T, config *Config) {
				assert.True(t, config.Sandbox)
				assert.Equal(t, 5*time.Second, config.Timeout)
				assert.Equal(t, "my-bot/1.0", config.UserAgent)
				assert.Equal(t, StringSlice{"XBTUSD", "ETHUSD"}, config.Pairs)
			},
		},
		{
			name:    "comma separated pairs",
			content: "pairs: XBTUSD, ETHUSD\n",
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, DefaultHost, config.Host)
				assert.Equal(t, StringSlice{"XBTUSD", "ETHUSD"}, config.Pairs)
			},
		},
		{
			name: "malformed lines are skipped",
			content: "host:api.kraken.com\n" +
				"this line is garbage\n" +
				"api_key:K\r\n" +
				"{not yaml\n" +
				"api_secret:a2V5\n",
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, "api.kraken.com", config.Host)
				assert.Equal(t, "K", config.APIKey)
				assert.Equal(t, "a2V5", config.APISecret)
			},
		},
		{
			name:    "empty file keeps defaults",
			content: "",
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, Default(), config)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err)
			tt.f(t, config)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.conf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "timeout: [1, 2]\n"))
	assert.Error(t, err)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)

	config := Default()
	config.APIKey = "my-key"
	config.APISecret = "a2V5"
	config.Pairs = StringSlice{"XBTUSD"}
	require.NoError(t, config.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# richy configuration file\n")
	assert.Contains(t, string(data), "api_key: my-key\n")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	config := &Config{
		Host:      "ftp://example.com",
		APIKey:    "my-key",
		APISecret: "",
		Timeout:   -time.Second,
	}

	err := config.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)

	config = &Config{Host: DefaultHost, APIKey: "your_api_key_here", APISecret: "your_api_secret_here"}
	assert.NoError(t, config.Validate())
	assert.ErrorContains(t, config.CheckSecret(), "api_secret is not valid base64")
	assert.NoError(t, Default().CheckSecret())
	assert.NoError(t, (&Config{APISecret: "a2V5"}).CheckSecret())

	config = &Config{Host: " "}
	assert.Contains(t, config.Validate().Error(), "host is empty")
}

func TestConfig_BaseURL(t *testing.T) {
	tests := []struct {
		host    string
		sandbox bool
		want    string
	}{
		{host: "api.kraken.com", want: "https://api.kraken.com"},
		{host: "https://api.kraken.com", want: "https://api.kraken.com"},
		{host: "http://localhost:8080", want: "http://localhost:8080"},
		{host: "api.kraken.com", sandbox: true, want: "https://api.demo.kraken.com"},
	}

	for _, tt := range tests {
		config := &Config{Host: tt.host, Sandbox: tt.sandbox}
		u, err := config.BaseURL()
		require.NoError(t, err, tt.host)
		assert.Equal(t, tt.want, u.String())
	}

	_, err := (&Config{Host: "https://"}).BaseURL()
	assert.Error(t, err)
}

func TestConfig_Redacted(t *testing.T) {
	config := Config{Host: DefaultHost, APIKey: "abcdefghij", APISecret: "a2V5"}
	redacted := config.Redacted()

	assert.Equal(t, "abcd******", redacted.APIKey)
	assert.Equal(t, "****", redacted.APISecret)
	assert.Equal(t, "abcdefghij", config.APIKey)
	assert.Empty(t, Config{}.Redacted().APIKey)
}
