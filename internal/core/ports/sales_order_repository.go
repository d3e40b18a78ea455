// Package ports defines the contracts between the sales order core and its
// infrastructure: persistence, the variant catalog and event delivery.
package ports

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/salesorder"
)

// ErrSalesOrderAlreadyExists is returned when an account reuses an order
// name or order number.
var ErrSalesOrderAlreadyExists = errors.New("sales order already exists")

// SalesOrderRepository persists SalesOrder aggregates.
type SalesOrderRepository interface {
	// Add stores a new order. The pair (account, order number) must be unused,
	// otherwise Add fails with ErrSalesOrderAlreadyExists.
	Add(ctx context.Context, aggregate *salesorder.SalesOrder) error

	// Update stores changes to an order loaded by Get. It fails with
	// errs.ErrVersionIsInvalid if the order was changed since it was loaded.
	Update(ctx context.Context, aggregate *salesorder.SalesOrder) error

	// Get loads an order. Unknown ids fail with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*salesorder.SalesOrder, error)

	// Delete removes an order. Unknown ids fail with errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsWithName reports whether the account already has an order with this name.
	ExistsWithName(ctx context.Context, accountID kernel.AccountID, orderName string) (bool, error)
}
