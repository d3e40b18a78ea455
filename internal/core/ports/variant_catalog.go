package ports

import (
	"context"

	"sales/internal/core/domain/model/lineitem"
)

// VariantCatalog resolves a SKU to the variant snapshot stored on a line item.
// Unknown SKUs fail with errs.ErrObjectNotFound.
type VariantCatalog interface {
	Resolve(ctx context.Context, sku string) (lineitem.VariantDocument, error)
}
