package queries

import (
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrGetSalesOrderQueryIsNotConstructed = errors.New(
	"GetSalesOrderQuery must be created via NewGetSalesOrderQuery constructor",
)

// GetSalesOrderQuery fetches the stored projection of one order.
//
// Example:
//
//	query, err := NewGetSalesOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	doc, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetSalesOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSalesOrderQuery(orderID kernel.UUID) (GetSalesOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetSalesOrderQuery{}, err
	}

	return GetSalesOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetSalesOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesOrderQueryIsNotConstructed)
}

func (q GetSalesOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
