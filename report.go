package currency

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

const reportIndent = "    "

// Aggregate sorts the results by date, newest key first, and renders them as
// an indented JSON array. The input slice is left untouched.
func Aggregate(results []DateResult, order Order) ([]byte, error) {
	sorted := make([]DateResult, len(results))
	copy(sorted, results)

	sort.SliceStable(sorted, func(i, j int) bool {
		return after(sorted[i].Date, sorted[j].Date, order)
	})

	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", reportIndent)

	if err := encoder.Encode(sorted); err != nil {
		return nil, err
	}

	return escapeNonASCII(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func after(a, b DateKey, order Order) bool {
	if order == ChronologicalOrder {
		ta, errA := a.Time()
		tb, errB := b.Time()

		// keys that do not parse fall back to string order
		if errA == nil && errB == nil {
			return ta.After(tb)
		}
	}

	return a > b
}

// escapeNonASCII writes every rune above 0x7f as a \uXXXX escape, using
// surrogate pairs outside the basic plane. Such runes only occur inside JSON
// strings, so the document stays valid.
func escapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]

		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}

		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = append(out, fmt.Sprintf(`\u%04x\u%04x`, r1, r2)...)
			continue
		}

		out = append(out, fmt.Sprintf(`\u%04x`, r)...)
	}

	return out
}
