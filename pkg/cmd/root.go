package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/richy-trading/richy/pkg/cmd/cmdutil"
	"github.com/richy-trading/richy/pkg/config"
)

var RootCmd = &cobra.Command{
	Use:   "richy",
	Short: "richy kraken client",
	Long:  "command line client of the kraken rest api",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("no-color") {
			color.NoColor = true
		}
		return setupLogging()
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", config.DefaultFile, "config file")
	RootCmd.PersistentFlags().String("dotenv", ".env.local", "the dotenv file to load")
	RootCmd.PersistentFlags().String("log-formatter", "", "log formatter: text or json")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// A flag can be 'persistent' meaning that this flag will be available to
	// the command it's assigned to as well as every command under that command.
	// For global flags, assign a flag as a persistent flag on the root.
	cmdutil.PersistentFlags(RootCmd.PersistentFlags())
}

func setupLogging() error {
	logger := log.StandardLogger()

	formatter := viper.GetString("log-formatter")
	environment := os.Getenv("RICHY_ENV")
	if formatter == "" && isProduction(environment) {
		formatter = "json"
	}

	switch formatter {
	case "", "text":
		logger.SetFormatter(&prefixed.TextFormatter{})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return errors.Errorf("unsupported log formatter %q", formatter)
	}

	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	if isProduction(environment) {
		writer := &lumberjack.Logger{
			Filename:   filepath.Join("log", "access_log"),
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     30, // days
		}
		logger.AddHook(
			lfshook.NewHook(
				lfshook.WriterMap{
					log.DebugLevel: writer,
					log.InfoLevel:  writer,
					log.WarnLevel:  writer,
					log.ErrorLevel: writer,
					log.FatalLevel: writer,
				},
				&log.JSONFormatter{},
			),
		)
	}

	return nil
}

func isProduction(environment string) bool {
	switch environment {
	case "production", "prod":
		return true
	}
	return false
}

// loadDotEnv loads the dotenv file before the environment is bound, the variables already
// set in the environment win.
func loadDotEnv(args []string) {
	dotenvFile := ".env.local"
	for i, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--dotenv="):
			dotenvFile = strings.TrimPrefix(arg, "--dotenv=")
		case arg == "--dotenv" && i+1 < len(args):
			dotenvFile = args[i+1]
		}
	}

	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			log.WithError(err).Errorf("error loading dotenv file %s", dotenvFile)
		}
	}
}

func initViper() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.WithError(err).Errorf("failed to bind local flags. please check the flag settings.")
	}
}

func Execute() {
	loadDotEnv(os.Args[1:])
	initViper()

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
