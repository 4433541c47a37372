package currency

import (
	"errors"
	"fmt"
	"strings"
)

type Order string

const (
	// LexicalOrder sorts date keys as plain strings, descending.
	LexicalOrder Order = "lexical"
	// ChronologicalOrder sorts date keys by calendar day, newest first.
	ChronologicalOrder Order = "chronological"
)

var ErrInvalidOrder = errors.New("invalid order")

func ConvertToOrderFromString(str string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "", "lexical":
		return LexicalOrder, nil
	case "chronological":
		return ChronologicalOrder, nil
	}

	return "", fmt.Errorf("value %s is not valid Order: %w", str, ErrInvalidOrder)
}

func (o *Order) UnmarshalText(text []byte) error {
	order, err := ConvertToOrderFromString(string(text))

	if err != nil {
		return err
	}

	*o = order

	return nil
}

func (o Order) MarshalText() ([]byte, error) {
	return []byte(o), nil
}
