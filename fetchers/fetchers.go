package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const (
	PrivatBankURL = "https://api.privatbank.ua/p24api/exchange_rates?date="
)

var (
	ErrHTTPStatus        = errors.New("unexpected http status")
	ErrConnection        = errors.New("connection error")
	ErrMalformedResponse = errors.New("malformed response")
)

type (
	StatusError struct {
		StatusCode int
	}

	// ConnectionError covers everything that keeps a request from getting a
	// response: unreachable hosts, malformed urls and broken bodies.
	ConnectionError struct {
		URL string
		Err error
	}
)

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: %d", ErrHTTPStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrHTTPStatus
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%v: %s, %v", ErrConnection, e.URL, e.Err)
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func getData(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	return req, nil
}
