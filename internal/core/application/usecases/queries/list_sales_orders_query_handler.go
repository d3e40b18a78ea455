package queries

import (
	"context"

	"sales/internal/core/domain/model/salesorder"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ListSalesOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListSalesOrdersQueryHandler(db *gorm.DB) ListSalesOrdersQueryHandler {
	return ListSalesOrdersQueryHandler{db: db}
}

// Handle counts the matching orders and reads the requested page, newest
// first. A page past the end yields no items but the correct totals.
func (h ListSalesOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListSalesOrdersQuery,
) (ListSalesOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListSalesOrdersQueryResponse{}, err
	}

	where, args := listFilter(query)

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM sales_orders
		WHERE `+where, args...).Row().Scan(&total)
	if err != nil {
		return ListSalesOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			document,
			version
		FROM sales_orders
		WHERE `+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, query.Size(), query.Offset())...).Rows()
	if err != nil {
		return ListSalesOrdersQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]salesorder.Document, 0, query.Size())
	for rows.Next() {
		var document datatypes.JSONType[salesorder.Document]
		var version int
		if err = rows.Scan(&document, &version); err != nil {
			return ListSalesOrdersQueryResponse{}, err
		}

		doc := document.Data()
		doc.Version = version
		items = append(items, doc)
	}

	if err = rows.Err(); err != nil {
		return ListSalesOrdersQueryResponse{}, err
	}

	return ListSalesOrdersQueryResponse{
		Items: items,
		Total: total,
		Page:  query.Page(),
		Size:  query.Size(),
		Pages: int((total + int64(query.Size()) - 1) / int64(query.Size())),
	}, nil
}

func listFilter(query ListSalesOrdersQuery) (string, []any) {
	where := "TRUE"
	args := make([]any, 0, 4)

	if accountID, ok := query.AccountID(); ok {
		where += " AND account_id = ?"
		args = append(args, accountID.UUID().Bytes())
	}
	if query.Status() != salesorder.Unknown {
		where += " AND status = ?"
		args = append(args, query.Status().String())
	}

	return where, args
}
