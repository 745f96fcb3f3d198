package uow

import "context"

// UnitOfWork runs fn inside one storage transaction carried by the context
// passed to fn. Repositories pick the transaction up from that context.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
