package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/fetchers"
	"github.com/malusev998/currency-rates/services"
)

type (
	Config struct {
		Ctx    context.Context
		Now    func() time.Time
		Client *http.Client
	}
)

func newLogger(output io.Writer, debug bool) *log.Logger {
	logger := log.New("currency-rates")
	logger.SetOutput(output)
	logger.SetHeader("${level} ${prefix}")
	logger.SetLevel(log.INFO)

	if debug {
		logger.SetLevel(log.DEBUG)
	}

	return logger
}

func rootCommand(config *Config) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "currency-rates [n_days] [currency ...]",
		Short: "PrivatBank archive exchange rates",
		Long: `Prints the PrivatBank cash rates of today and up to 10 previous days as JSON.
EUR and USD are always reported, other currency codes can follow the number of days.
Negative numbers have to be passed after "--".`,
		Version:      "v2.0.0",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.Bool("debug", false, "Debug flag")
	flags.StringVar(&configFile, "config", defaultConfigFile, "Path to config file")
	flags.String("url", fetchers.PrivatBankURL, "Archive endpoint, the date is appended to it")
	flags.String("order", string(currency.LexicalOrder), "Report order: lexical or chronological")

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())

		if err != nil {
			return err
		}

		if err := readConfigFile(v, configFile, cmd.Flags().Changed("config")); err != nil {
			return fmt.Errorf("error while reading in the config file: %w", err)
		}

		s, err := getSettings(v)

		if err != nil {
			return err
		}

		logger := newLogger(cmd.ErrOrStderr(), s.Debug)

		service := services.Service{
			Fetcher: fetchers.NewCurrencyFetcher(fetchers.Config{
				URL:    s.URL,
				Logger: logger,
				Client: config.Client,
			}),
			Logger: logger,
			Order:  s.Order,
			Now:    config.Now,
		}

		report, err := service.Report(cmd.Context(), args)

		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(report))

		return err
	}

	return rootCmd
}

func Execute(config *Config) error {
	ctx := config.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	return rootCommand(config).ExecuteContext(ctx)
}
