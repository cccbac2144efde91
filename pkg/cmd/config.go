package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
	"github.com/richy-trading/richy/pkg/config"
)

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	RootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "manage the config file",
}

// go run ./cmd/richy config init --kraken-api-key=KEY --kraken-api-secret=SECRET
var configInitCmd = &cobra.Command{
	Use:          "init",
	Short:        "write a config file from the defaults, the flags and the environment",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := viper.GetString("config")
		if configFile == "" {
			configFile = config.DefaultFile
		}

		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}

		if _, err := os.Stat(configFile); err == nil && !force {
			return errors.Errorf("config file %s already exists, use --force to overwrite it", configFile)
		}

		conf, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		if err := conf.Validate(); err != nil {
			return errors.Wrap(err, "invalid config")
		}

		if err := conf.Save(configFile); err != nil {
			return err
		}

		log.Infof("config file %s saved", configFile)
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "config written to %s\n", configFile)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "show the effective config with the secrets masked",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := cmdutil.LoadConfig()
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(conf.Redacted())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))

		if err := multierr.Append(conf.Validate(), conf.CheckSecret()); err != nil {
			color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "config problems: %v\n", err)
		}

		return nil
	},
}
