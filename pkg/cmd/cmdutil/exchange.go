package cmdutil

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/richy-trading/richy/pkg/config"
	"github.com/richy-trading/richy/pkg/exchange/kraken"
)

// LoadConfig loads the config file named by the "config" key and applies the flag and
// environment overrides on top of it. A missing config file is not an error.
func LoadConfig() (*config.Config, error) {
	configFile := viper.GetString("config")
	if configFile == "" {
		configFile = config.DefaultFile
	}

	conf, err := config.Load(configFile)
	if errors.Is(err, os.ErrNotExist) {
		conf = config.Default()
	} else if err != nil {
		return nil, err
	}

	applyOverrides(conf)
	return conf, nil
}

func applyOverrides(conf *config.Config) {
	if v := viper.GetString("kraken-api-key"); v != "" {
		conf.APIKey = v
	}

	if v := viper.GetString("kraken-api-secret"); v != "" {
		conf.APISecret = v
	}

	if v := viper.GetString("kraken-host"); v != "" {
		conf.Host = v
	}

	if viper.GetBool("kraken-sandbox") {
		conf.Sandbox = true
	}

	if v := viper.GetDuration("kraken-timeout"); v > 0 {
		conf.Timeout = v
	}
}

// NewExchange constructs the exchange object from the config file and viper settings.
func NewExchange() (*kraken.Exchange, error) {
	conf, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return kraken.NewFromConfig(conf)
}

// NewAuthenticatedExchange is NewExchange for the private endpoints, it fails early when
// the credentials are missing.
func NewAuthenticatedExchange() (*kraken.Exchange, error) {
	conf, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if !conf.HasCredentials() {
		return nil, errors.New("kraken: empty key or secret, set KRAKEN_API_KEY and KRAKEN_API_SECRET or the config file")
	}

	return kraken.NewFromConfig(conf)
}
