package fetchers

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/malusev998/currency-rates"
)

type (
	privatBankResponse struct {
		Date         *string           `json:"date"`
		ExchangeRate []json.RawMessage `json:"exchangeRate"`
	}

	// privatBankRateRecord is decoded loosely: fields are only checked once the
	// currency turns out to be requested.
	privatBankRateRecord map[string]json.RawMessage
)

func (r privatBankRateRecord) currency() (string, bool) {
	var code string

	if err := json.Unmarshal(r["currency"], &code); err != nil {
		return "", false
	}

	return code, true
}

// Extract keeps the rates of the requested currencies from one archive response.
// A missing sale or purchase rate is replaced by the matching sentinel text.
// Entries of other currencies are never inspected.
func Extract(body []byte, currencies currency.CurrencySet) (currency.DateResult, error) {
	var data privatBankResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return currency.DateResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if data.Date == nil {
		return currency.DateResult{}, fmt.Errorf("%w: date is missing", ErrMalformedResponse)
	}

	if data.ExchangeRate == nil {
		return currency.DateResult{}, fmt.Errorf("%w: exchangeRate is missing", ErrMalformedResponse)
	}

	result := currency.DateResult{
		Date:  currency.DateKey(*data.Date),
		Rates: make([]currency.CurrencyRate, 0, currencies.Len()),
	}
	positions := make(map[string]int, currencies.Len())

	for _, raw := range data.ExchangeRate {
		var record privatBankRateRecord

		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}

		code, ok := record.currency()

		if !ok || !currencies.Has(code) {
			continue
		}

		sale, err := rateOrSentinel(record, "saleRate", currency.NotSold)
		if err != nil {
			return currency.DateResult{}, fmt.Errorf("%w: %s sale: %v", ErrMalformedResponse, code, err)
		}

		purchase, err := rateOrSentinel(record, "purchaseRate", currency.NotPurchased)
		if err != nil {
			return currency.DateResult{}, fmt.Errorf("%w: %s purchase: %v", ErrMalformedResponse, code, err)
		}

		rate := currency.CurrencyRate{
			Currency: code,
			RateEntry: currency.RateEntry{
				Sale:     sale,
				Purchase: purchase,
			},
		}

		// a repeated currency keeps its first position and its last rates
		if i, ok := positions[code]; ok {
			result.Rates[i] = rate
			continue
		}

		positions[code] = len(result.Rates)
		result.Rates = append(result.Rates, rate)
	}

	return result, nil
}

// rateOrSentinel returns the sentinel only when the field is absent; an
// explicit null is kept as null.
func rateOrSentinel(record privatBankRateRecord, field, sentinel string) (currency.Rate, error) {
	value, ok := record[field]

	if !ok {
		return currency.SentinelRate(sentinel), nil
	}

	if string(bytes.TrimSpace(value)) == "null" {
		return currency.NullRate(), nil
	}

	var number json.Number

	if err := json.Unmarshal(value, &number); err != nil {
		return currency.Rate{}, err
	}

	return currency.NewRate(number.String())
}
