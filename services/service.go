package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"github.com/malusev998/currency-rates"
)

var ErrNoFetcher = errors.New("no fetcher provided")

// Service turns command line arguments into the rates report.
// Now defaults to time.Now and IDGenerator to uuid.New.
type Service struct {
	Fetcher     currency.Fetcher
	Logger      *log.Logger
	Order       currency.Order
	Now         func() time.Time
	IDGenerator func() uuid.UUID
}

func (s Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

func (s Service) runID() uuid.UUID {
	if s.IDGenerator == nil {
		return uuid.New()
	}

	return s.IDGenerator()
}

func (s Service) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}

	logger := log.New("currency-rates")
	logger.SetLevel(log.OFF)

	return logger
}

func (s Service) Report(ctx context.Context, args []string) ([]byte, error) {
	if s.Fetcher == nil {
		return nil, ErrNoFetcher
	}

	logger := s.logger()
	id := s.runID()

	dates, err := currency.ResolveDates(s.now(), args)

	if err != nil {
		logger.Info(err)
	}

	currencies := currency.ResolveCurrencies(args)

	logger.Debugf("Starting batch %s", id)
	logger.Infof("The following date(s) will be considered: %v", dates)
	logger.Infof("The following currencies will be considered if available: %v", currencies.Codes())

	results, err := s.Fetcher.Fetch(ctx, dates, currencies)

	if err != nil {
		return nil, fmt.Errorf("batch %s stopped after %d of %d dates: %w", id, len(results), len(dates), err)
	}

	logger.Debugf("Batch %s finished: %d of %d dates fetched", id, len(results), len(dates))

	return currency.Aggregate(results, s.Order)
}
