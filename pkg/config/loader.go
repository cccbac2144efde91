package config

import (
	"bytes"
	"encoding/base64"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile = "richy.conf"

	DefaultHost    = "api.kraken.com"
	SandboxHost    = "api.demo.kraken.com"
	DefaultTimeout = 30 * time.Second
)

// Config is the content of the richy.conf file. The file is a list of "name: value"
// lines, which makes it a flat YAML mapping.
type Config struct {
	Host      string        `yaml:"host"`
	APIKey    string        `yaml:"api_key"`
	APISecret string        `yaml:"api_secret"`
	Sandbox   bool          `yaml:"sandbox,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	UserAgent string        `yaml:"user_agent,omitempty"`

	// Pairs are the default pairs of the market data commands.
	Pairs StringSlice `yaml:"pairs,omitempty"`
}

func Default() *Config {
	return &Config{
		Host:    DefaultHost,
		Timeout: DefaultTimeout,
	}
}

// legacyLine matches the "name:value" lines written without a space after the colon,
// which YAML would read as a plain scalar.
var legacyLine = regexp.MustCompile(`(?m)^([a-z_]+):([^\s].*)$`)

// fieldLine matches the start of a top level "name:" entry.
var fieldLine = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*:`)

// normalize rewrites the legacy lines into YAML and skips the top level lines that are
// not a "name: value" entry. Comments, blank lines and nested YAML are kept.
func normalize(data []byte) []byte {
	lines := bytes.Split(data, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		trimmed := bytes.TrimRight(line, "\r")
		switch {
		case len(bytes.TrimSpace(trimmed)) == 0,
			trimmed[0] == '#', trimmed[0] == ' ', trimmed[0] == '\t', trimmed[0] == '-',
			fieldLine.Match(trimmed):
			kept = append(kept, line)
		default:
			log.Warnf("config: skipping malformed line %q", string(trimmed))
		}
	}

	return legacyLine.ReplaceAll(bytes.Join(kept, []byte("\n")), []byte("$1: $2"))
}

// Load reads the config file on top of the defaults. A missing file is reported with an
// error matching os.ErrNotExist, callers usually fall back to Default().
func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
	}

	config := Default()
	if err := yaml.Unmarshal(normalize(data), config); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config file %s", configFile)
	}

	return config, nil
}

// Save writes the config with a commented header. The file holds the api secret, so it
// is only readable by the owner.
func (c *Config) Save(configFile string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# richy configuration file\n")
	buf.WriteString("# This file is automatically generated\n\n")
	buf.Write(out)

	if err := os.WriteFile(configFile, buf.Bytes(), 0600); err != nil {
		return errors.Wrapf(err, "unable to write config file %s", configFile)
	}

	return nil
}

// Validate reports every problem of the config at once. The secret encoding is not
// checked here, see CheckSecret.
func (c *Config) Validate() (err error) {
	if strings.TrimSpace(c.Host) == "" {
		err = multierr.Append(err, errors.New("host is empty"))
	} else if _, urlErr := c.BaseURL(); urlErr != nil {
		err = multierr.Append(err, urlErr)
	}

	if (c.APIKey == "") != (c.APISecret == "") {
		err = multierr.Append(err, errors.New("api_key and api_secret must be set together"))
	}

	if c.Timeout < 0 {
		err = multierr.Append(err, errors.Errorf("timeout must not be negative, got %s", c.Timeout))
	}

	return err
}

// CheckSecret reports whether the api secret decodes as standard base64. A bad secret
// only breaks the signed calls, the public ones keep working.
func (c *Config) CheckSecret() error {
	if c.APISecret == "" {
		return nil
	}

	if _, err := base64.StdEncoding.DecodeString(c.APISecret); err != nil {
		return errors.Wrap(err, "api_secret is not valid base64")
	}

	return nil
}

// HasCredentials reports whether both the api key and the api secret are set.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.APISecret != ""
}

// BaseURL derives the REST base url from the host, https is assumed when the host has no
// scheme. The sandbox flag always selects the demo environment.
func (c *Config) BaseURL() (*url.URL, error) {
	host := strings.TrimSpace(c.Host)
	if c.Sandbox {
		host = SandboxHost
	}

	if !strings.Contains(host, "://") {
		host = "https://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid host %q", c.Host)
	}

	if u.Host == "" {
		return nil, errors.Errorf("invalid host %q", c.Host)
	}

	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, errors.Errorf("unsupported scheme %q in host %q", u.Scheme, c.Host)
	}

	return u, nil
}
