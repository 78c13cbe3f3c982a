package domain

import "context"

// TxManager wraps a unit of work in a single transaction boundary so that a
// failure partway through a multi-write operation does not leave an orphaned
// bare record behind.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
