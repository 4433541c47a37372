package fetchers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/gommon/log"

	"github.com/malusev998/currency-rates"
)

// PrivatBankFetcher requests the archive rates of PrivatBank one day at a time.
type PrivatBankFetcher struct {
	URL    string
	Logger *log.Logger
	Client *http.Client
}

func (p PrivatBankFetcher) client() (*http.Client, func()) {
	if p.Client != nil {
		return p.Client, func() {}
	}

	client := &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}

	return client, client.CloseIdleConnections
}

func (p PrivatBankFetcher) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}

	logger := log.New("privatbank")
	logger.SetLevel(log.OFF)

	return logger
}

// fetchDate performs the request for a single day.
func (p PrivatBankFetcher) fetchDate(
	ctx context.Context,
	client *http.Client,
	url string,
	currencies currency.CurrencySet,
) (currency.DateResult, error) {
	req, err := getData(ctx, url)

	if err != nil {
		return currency.DateResult{}, &ConnectionError{URL: url, Err: err}
	}

	res, err := client.Do(req)

	if err != nil {
		return currency.DateResult{}, &ConnectionError{URL: url, Err: err}
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return currency.DateResult{}, &StatusError{StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return currency.DateResult{}, &ConnectionError{URL: url, Err: err}
	}

	return Extract(body, currencies)
}

// Fetch requests every date in order, waiting for each response before the
// next request. A failed date is logged and left out of the result. Only a
// cancelled context ends the batch early.
func (p PrivatBankFetcher) Fetch(
	ctx context.Context,
	dates []currency.DateKey,
	currencies currency.CurrencySet,
) ([]currency.DateResult, error) {
	logger := p.logger()
	baseURL := p.URL

	if baseURL == "" {
		baseURL = PrivatBankURL
	}

	if ctx == nil {
		ctx = context.Background()
	}

	client, release := p.client()
	defer release()

	results := make([]currency.DateResult, 0, len(dates))

	for _, date := range dates {
		url := baseURL + string(date)
		result, err := p.fetchDate(ctx, client, url, currencies)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return results, ctxErr
		}

		if err != nil {
			logFailure(logger, date, err)
			continue
		}

		logger.Debugf("Fetched %d currencies for date: %s", len(result.Rates), date)
		results = append(results, result)
	}

	return results, nil
}

func logFailure(logger *log.Logger, date currency.DateKey, err error) {
	var statusErr *StatusError
	var connErr *ConnectionError

	switch {
	case errors.As(err, &statusErr):
		logger.Infof("Error status: %d, for date: %s.", statusErr.StatusCode, date)
	case errors.As(err, &connErr):
		logger.Infof("Connection error: %s, %v", connErr.URL, connErr.Err)
	default:
		logger.Warnf("Skipping date %s: %v", date, err)
	}
}
