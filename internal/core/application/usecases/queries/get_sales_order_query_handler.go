package queries

import (
	"context"
	"database/sql"
	"errors"

	"sales/internal/core/domain/model/salesorder"
	"sales/internal/pkg/errs"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetSalesOrderQueryHandler reads the document column directly; the
// aggregate is not rebuilt.
type GetSalesOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetSalesOrderQueryHandler(db *gorm.DB) GetSalesOrderQueryHandler {
	return GetSalesOrderQueryHandler{db: db}
}

// Handle returns the order document with its current version. Unknown ids
// fail with errs.ErrObjectNotFound.
func (h GetSalesOrderQueryHandler) Handle(ctx context.Context, query GetSalesOrderQuery) (salesorder.Document, error) {
	if err := query.Validate(); err != nil {
		return salesorder.Document{}, err
	}

	var row struct {
		Document datatypes.JSONType[salesorder.Document]
		Version  int
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			document,
			version
		FROM sales_orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&row.Document, &row.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return salesorder.Document{}, errs.NewObjectNotFoundError("salesOrder", query.OrderID().String())
		}
		return salesorder.Document{}, err
	}

	doc := row.Document.Data()
	doc.Version = row.Version
	return doc, nil
}
