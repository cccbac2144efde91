package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags for environments
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("kraken-api-key", "", "kraken api key")
	flags.String("kraken-api-secret", "", "kraken api secret, base64 encoded")
	flags.String("kraken-host", "", "kraken api host, e.g. api.kraken.com")
	flags.Bool("kraken-sandbox", false, "use the kraken demo environment")
	flags.Duration("kraken-timeout", 0, "http request timeout")
}
