package currency

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const MaxDays = 10

var (
	ErrInvalidDays = errors.New("invalid number of days")

	DefaultCurrencies = []string{"EUR", "USD"}
)

// ResolveDates returns today followed by up to MaxDays preceding days, oldest
// first, as requested by args[0]. An unusable day count is not fatal: only
// today is returned together with an error wrapping ErrInvalidDays.
func ResolveDates(today time.Time, args []string) ([]DateKey, error) {
	dates := []DateKey{NewDateKey(today)}

	if len(args) == 0 {
		return dates, nil
	}

	days, err := strconv.Atoi(args[0])

	if err != nil || days < 0 || days > MaxDays {
		return dates, fmt.Errorf("input '%s' is not a valid number of days (will be ignored), possible numbers are 0 to %d: %w", args[0], MaxDays, ErrInvalidDays)
	}

	for ; days > 0; days-- {
		dates = append(dates, NewDateKey(today.AddDate(0, 0, -days)))
	}

	return dates, nil
}

// ResolveCurrencies returns the default currencies plus every argument after the day count.
func ResolveCurrencies(args []string) CurrencySet {
	set := NewCurrencySet(DefaultCurrencies...)

	if len(args) > 1 {
		for _, code := range args[1:] {
			set.Add(code)
		}
	}

	return set
}
