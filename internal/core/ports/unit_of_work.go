package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Domain events recorded by
// aggregates saved through its repositories are written to the outbox in the
// same transaction when Commit runs.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// SalesOrderRepository returns a repository bound to the current transaction.
	SalesOrderRepository() SalesOrderRepository
}
