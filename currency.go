package currency

import "context"

type (
	// Fetcher retrieves the rates of the given currencies for every date it can.
	// Dates that fail are left out of the result; the error is reserved for
	// failures that stop the whole batch.
	Fetcher interface {
		Fetch(ctx context.Context, dates []DateKey, currencies CurrencySet) ([]DateResult, error)
	}
)
