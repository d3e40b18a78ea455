// Package orderrepo persists sales orders. Each order is one row: a few
// columns for lookups and listing, and the full salesorder.Document as JSONB.
package orderrepo

import (
	"time"

	"sales/internal/core/domain/model/salesorder"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SalesOrderDTO is the sales_orders row. Timestamps are copied from the
// aggregate, so gorm's automatic time tracking is turned off.
type SalesOrderDTO struct {
	ID          uuid.UUID                               `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID                               `gorm:"type:uuid;not null;uniqueIndex:idx_sales_orders_account_number,priority:1;index:idx_sales_orders_account_name,priority:1"`
	OrderNumber int                                     `gorm:"not null;uniqueIndex:idx_sales_orders_account_number,priority:2"`
	OrderName   string                                  `gorm:"not null;index:idx_sales_orders_account_name,priority:2"`
	Status      string                                  `gorm:"not null"`
	Version     int                                     `gorm:"not null"`
	CreatedAt   time.Time                               `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt   time.Time                               `gorm:"not null;autoUpdateTime:false"`
	Document    datatypes.JSONType[salesorder.Document] `gorm:"type:jsonb;not null"`
}

func (SalesOrderDTO) TableName() string {
	return "sales_orders"
}

// fromDomain maps the aggregate onto a row stored at the given version.
func fromDomain(aggregate *salesorder.SalesOrder, version int) SalesOrderDTO {
	doc := salesorder.ToDocument(aggregate)
	doc.Version = version

	return SalesOrderDTO{
		ID:          aggregate.ID().Bytes(),
		AccountID:   aggregate.AccountID().UUID().Bytes(),
		OrderNumber: doc.OrderNumber,
		OrderName:   doc.OrderName,
		Status:      doc.OrderStatus,
		Version:     version,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
		Document:    datatypes.NewJSONType(doc),
	}
}

// toDomain rebuilds the aggregate. The version column wins over the copy
// inside the document.
func toDomain(dto SalesOrderDTO) (*salesorder.SalesOrder, error) {
	doc := dto.Document.Data()
	doc.Version = dto.Version
	return salesorder.Load(doc)
}
