package currency

import "context"

type (
	Service interface {
		Report(ctx context.Context, args []string) ([]byte, error)
	}
)
