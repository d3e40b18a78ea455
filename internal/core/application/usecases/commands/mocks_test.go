package commands_test

import (
	"context"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSalesOrderRepository struct{ mock.Mock }

func (m *MockSalesOrderRepository) Add(ctx context.Context, o *salesorder.SalesOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Update(ctx context.Context, o *salesorder.SalesOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) Get(ctx context.Context, id kernel.UUID) (*salesorder.SalesOrder, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*salesorder.SalesOrder)
	return o, args.Error(1)
}

func (m *MockSalesOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSalesOrderRepository) ExistsWithName(
	ctx context.Context,
	accountID kernel.AccountID,
	orderName string,
) (bool, error) {
	args := m.Called(ctx, accountID, orderName)
	return args.Bool(0), args.Error(1)
}

type MockSalesOrderUoW struct{ mock.Mock }

func (m *MockSalesOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSalesOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSalesOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSalesOrderUoW) SalesOrderRepository() ports.SalesOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.SalesOrderRepository)
}

type MockSalesOrderUoWFactory struct{ mock.Mock }

func (m *MockSalesOrderUoWFactory) Create() commands.SalesOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.SalesOrderUoW)
}

type MockVariantCatalog struct{ mock.Mock }

func (m *MockVariantCatalog) Resolve(ctx context.Context, sku string) (lineitem.VariantDocument, error) {
	args := m.Called(ctx, sku)
	return args.Get(0).(lineitem.VariantDocument), args.Error(1)
}

type MockOutboxStore struct{ mock.Mock }

func (m *MockOutboxStore) Unpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	msgs, _ := args.Get(0).([]ports.OutboxMessage)
	return msgs, args.Error(1)
}

func (m *MockOutboxStore) MarkPublished(ctx context.Context, id kernel.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockOutboxStore) PurgePublished(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
