package fetchers

import (
	"net/http"

	"github.com/labstack/gommon/log"

	"github.com/malusev998/currency-rates"
)

type (
	Config struct {
		URL    string
		Logger *log.Logger
		// Client is optional, a fresh client is used for every batch otherwise.
		Client *http.Client
	}
)

func NewCurrencyFetcher(config Config) currency.Fetcher {
	return PrivatBankFetcher{
		URL:    config.URL,
		Logger: config.Logger,
		Client: config.Client,
	}
}
