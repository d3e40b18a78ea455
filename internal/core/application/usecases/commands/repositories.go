// Package commands contains the operations that change sales orders.
// Each command is validated on construction and handled inside one unit of work.
package commands

import (
	"context"

	"sales/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SalesOrderRepoFactory provides the order repository within a transaction.
	SalesOrderRepoFactory interface {
		SalesOrderRepository() ports.SalesOrderRepository
	}

	// SalesOrderUoW manages transactions for sales order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.SalesOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SalesOrderUoW interface {
		TxManager
		SalesOrderRepoFactory
	}

	// SalesOrderUoWFactory creates new sales order unit of work instances.
	SalesOrderUoWFactory interface {
		Create() SalesOrderUoW
	}
)
