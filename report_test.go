package currency_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency-rates"
)

func mustRate(t *testing.T, raw string) currency.Rate {
	rate, err := currency.NewRate(raw)
	require.NoError(t, err)

	return rate
}

func dateOrder(asserts *require.Assertions, report []byte) []string {
	var decoded []map[string]interface{}
	asserts.Nil(json.Unmarshal(report, &decoded))

	keys := make([]string, 0, len(decoded))
	for _, item := range decoded {
		asserts.Len(item, 1)
		for key := range item {
			keys = append(keys, key)
		}
	}

	return keys
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("SortsDescending", func(t *testing.T) {
		asserts := require.New(t)
		results := []currency.DateResult{
			{Date: "01.01.2024"},
			{Date: "03.01.2024"},
			{Date: "02.01.2024"},
		}

		report, err := currency.Aggregate(results, currency.LexicalOrder)

		asserts.Nil(err)
		asserts.Equal([]string{"03.01.2024", "02.01.2024", "01.01.2024"}, dateOrder(asserts, report))
		asserts.Equal(currency.DateKey("01.01.2024"), results[0].Date)
	})

	t.Run("LexicalAcrossMonths", func(t *testing.T) {
		asserts := require.New(t)
		results := []currency.DateResult{{Date: "31.12.2023"}, {Date: "01.01.2024"}}

		report, err := currency.Aggregate(results, currency.LexicalOrder)

		asserts.Nil(err)
		asserts.Equal([]string{"31.12.2023", "01.01.2024"}, dateOrder(asserts, report))
	})

	t.Run("ChronologicalAcrossMonths", func(t *testing.T) {
		asserts := require.New(t)
		results := []currency.DateResult{{Date: "31.12.2023"}, {Date: "01.01.2024"}, {Date: "30.12.2023"}}

		report, err := currency.Aggregate(results, currency.ChronologicalOrder)

		asserts.Nil(err)
		asserts.Equal([]string{"01.01.2024", "31.12.2023", "30.12.2023"}, dateOrder(asserts, report))
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		asserts := require.New(t)

		report, err := currency.Aggregate(nil, currency.LexicalOrder)

		asserts.Nil(err)
		asserts.Equal("[]", string(report))
	})

	t.Run("EscapesLikeAsciiJSON", func(t *testing.T) {
		asserts := require.New(t)
		results := []currency.DateResult{
			{
				Date: "03.01.2024",
				Rates: []currency.CurrencyRate{
					{Currency: "A&B", RateEntry: currency.RateEntry{Sale: mustRate(t, "1"), Purchase: currency.NullRate()}},
					{Currency: "Ч€<>", RateEntry: currency.RateEntry{Sale: mustRate(t, "2"), Purchase: mustRate(t, "3")}},
					{Currency: "💶", RateEntry: currency.RateEntry{Sale: mustRate(t, "4"), Purchase: mustRate(t, "5")}},
				},
			},
		}

		report, err := currency.Aggregate(results, currency.LexicalOrder)

		asserts.Nil(err)
		asserts.Contains(string(report), `"A&B": {`)
		asserts.Contains(string(report), `"purchase": null`)
		asserts.Contains(string(report), `"\u0427\u20ac<>": {`)
		asserts.Contains(string(report), `"\ud83d\udcb6": {`)
		asserts.Equal([]string{"03.01.2024"}, dateOrder(asserts, report))

		var decoded []map[string]map[string]interface{}
		asserts.Nil(json.Unmarshal(report, &decoded))
		asserts.Contains(decoded[0]["03.01.2024"], "Ч€<>")
		asserts.Contains(decoded[0]["03.01.2024"], "💶")
	})

	t.Run("IndentedDocument", func(t *testing.T) {
		asserts := require.New(t)
		results := []currency.DateResult{
			{
				Date: "03.01.2024",
				Rates: []currency.CurrencyRate{
					{
						Currency: "EUR",
						RateEntry: currency.RateEntry{
							Sale:     mustRate(t, "39.5"),
							Purchase: mustRate(t, "39.0"),
						},
					},
					{
						Currency: "PLN",
						RateEntry: currency.RateEntry{
							Sale:     currency.SentinelRate(currency.NotSold),
							Purchase: currency.SentinelRate(currency.NotPurchased),
						},
					},
				},
			},
		}

		report, err := currency.Aggregate(results, currency.LexicalOrder)

		expected := `[
    {
        "03.01.2024": {
            "EUR": {
                "sale": 39.5,
                "purchase": 39.0
            },
            "PLN": {
                "sale": "not sold by PB",
                "purchase": "not purchased by PB"
            }
        }
    }
]`

		asserts.Nil(err)
		asserts.Equal(expected, string(report))
	})
}
