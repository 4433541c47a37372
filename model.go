package currency

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateKeyLayout is the day format PrivatBank uses both in requests and responses.
const DateKeyLayout = "02.01.2006"

const (
	NotSold      = "not sold by PB"
	NotPurchased = "not purchased by PB"
)

type (
	// DateKey identifies one calendar day as DD.MM.YYYY.
	DateKey string

	CurrencySet map[string]struct{}

	// Rate is either a numeric rate as sent by the bank, an explicit null or a sentinel text.
	Rate struct {
		raw      string
		sentinel string
	}

	RateEntry struct {
		Sale     Rate `json:"sale"`
		Purchase Rate `json:"purchase"`
	}

	CurrencyRate struct {
		Currency string
		RateEntry
	}

	// DateResult holds the requested rates of a single day, in the order the bank listed them.
	DateResult struct {
		Date  DateKey
		Rates []CurrencyRate
	}
)

func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

func (d DateKey) Time() (time.Time, error) {
	return time.Parse(DateKeyLayout, string(d))
}

func NewCurrencySet(codes ...string) CurrencySet {
	set := make(CurrencySet, len(codes))

	for _, c := range codes {
		set.Add(c)
	}

	return set
}

func (s CurrencySet) Add(code string) {
	s[code] = struct{}{}
}

func (s CurrencySet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

func (s CurrencySet) Len() int {
	return len(s)
}

// Codes returns the set members sorted alphabetically.
func (s CurrencySet) Codes() []string {
	codes := make([]string, 0, len(s))

	for c := range s {
		codes = append(codes, c)
	}

	sort.Strings(codes)

	return codes
}

const nullRate = "null"

// NewRate checks that raw is a decimal number. The original text is kept for
// output so the bank's formatting survives unchanged.
func NewRate(raw string) (Rate, error) {
	if _, err := decimal.NewFromString(raw); err != nil {
		return Rate{}, fmt.Errorf("rate %q is not a number: %v", raw, err)
	}

	return Rate{raw: raw}, nil
}

// NullRate is a rate the bank sent as an explicit null.
func NullRate() Rate {
	return Rate{raw: nullRate}
}

func SentinelRate(text string) Rate {
	return Rate{sentinel: text}
}

func (r Rate) IsSentinel() bool {
	return r.raw == ""
}

func (r Rate) IsNull() bool {
	return r.raw == nullRate
}

func (r Rate) String() string {
	if r.IsSentinel() {
		return r.sentinel
	}

	return r.raw
}

func (r Rate) MarshalJSON() ([]byte, error) {
	if r.IsSentinel() {
		return marshalString(r.sentinel)
	}

	return []byte(r.raw), nil
}

func (d DateResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	key, err := marshalString(string(d.Date))

	if err != nil {
		return nil, err
	}

	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteString(":{")

	for i, rate := range d.Rates {
		if i > 0 {
			buf.WriteByte(',')
		}

		code, err := marshalString(rate.Currency)
		if err != nil {
			return nil, err
		}

		entry, err := json.Marshal(rate.RateEntry)
		if err != nil {
			return nil, err
		}

		buf.Write(code)
		buf.WriteByte(':')
		buf.Write(entry)
	}

	buf.WriteString("}}")

	return buf.Bytes(), nil
}

// marshalString encodes s without escaping &, < and >.
func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(s); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
