package cart

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
}
