package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "sales/internal/adapters/out/postgres"
	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/outboxrepo"
	"sales/internal/core/domain/model/lineitem"
	"sales/internal/core/domain/model/personalization"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite checks transaction boundaries and outbox
// writes against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.SalesOrderDTO{}, &outboxrepo.OutboxMessageDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE sales_orders, outbox_messages").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotNil(uow1)
	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.SalesOrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WritesOrderAndOutbox() {
	ctx := context.Background()
	order := suite.createTestOrder(1001)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SalesOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&orderrepo.SalesOrderDTO{}, 1)
	messages := suite.unpublished()
	suite.Require().Len(messages, 1)
	suite.Equal(salesorder.EventOrderPlaced, messages[0].EventType)
	suite.True(messages[0].AggregateID.IsEqual(order.ID()))
	suite.Empty(order.DomainEvents())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_UpdateAppendsEventsInOrder() {
	ctx := context.Background()
	order := suite.createTestOrder(1001)
	suite.commitAdd(order)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.SalesOrderRepository()
	loaded, err := repo.Get(ctx, order.ID())
	suite.Require().NoError(err)

	address := shippingAddress()
	address.City = "Oakland"
	address.PostalCode = "94607"
	suite.Require().NoError(loaded.UpdateShippingAddress(address))
	item := loaded.LineItems()[0]
	suite.Require().NoError(loaded.UpdatePersonalization(item.ID(), []personalization.Property{{Name: "text", Value: "MAX"}}))
	suite.Require().NoError(repo.Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	messages := suite.unpublished()
	suite.Require().Len(messages, 3)
	suite.Equal(salesorder.EventOrderPlaced, messages[0].EventType)
	suite.Equal(salesorder.EventShippingAddressUpdated, messages[1].EventType)
	suite.Equal(salesorder.EventPersonalizationUpdated, messages[2].EventType)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrderAndEvents() {
	ctx := context.Background()
	order := suite.createTestOrder(1001)
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SalesOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&orderrepo.SalesOrderDTO{}, 0)
	suite.assertCount(&outboxrepo.OutboxMessageDTO{}, 0)
	suite.Len(order.DomainEvents(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_IsNoOp() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_DuplicateNumber_LeavesNoOutboxRows() {
	ctx := context.Background()
	suite.commitAdd(suite.createTestOrder(1001))
	duplicate := suite.createTestOrder(1001)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.SalesOrderRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, ports.ErrSalesOrderAlreadyExists)
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&orderrepo.SalesOrderDTO{}, 1)
	suite.assertCount(&outboxrepo.OutboxMessageDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) commitAdd(order *salesorder.SalesOrder) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SalesOrderRepository().Add(ctx, order))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) unpublished() []ports.OutboxMessage {
	messages, err := outboxrepo.NewGormOutboxRepository(suite.db).Unpublished(context.Background(), 100)
	suite.Require().NoError(err)
	return messages
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(number int) *salesorder.SalesOrder {
	variant := lineitem.VariantDocument{
		SKU:  "TAG-01",
		Type: "pet-tag",
		PersonalizationRules: []lineitem.RuleDocument{
			{Name: "text", Type: "input", Pattern: "[A-Z]*", Required: true, MaxLength: 8},
		},
	}
	order, err := salesorder.Create(salesorder.CreateRequest{
		AccountID:       testAccountID,
		OrderName:       "#" + time.Now().Format("150405.000000"),
		OrderNumber:     number,
		OrderDate:       "2024-07-04",
		Customer:        salesorder.CustomerProps{Name: "Sam", Email: "sam@example.com"},
		ShippingAddress: shippingAddress(),
		BillingAddress:  shippingAddress(),
		LineItems: []lineitem.CreateRequest{
			{LineNumber: 1, Quantity: 1, Variant: variant, Properties: []personalization.Property{{Name: "text", Value: "REX"}}},
		},
	})
	suite.Require().NoError(err)
	return order
}

const testAccountID = "0b4ad2f4-7f3c-4c11-9d0f-0d7a7e8f9a10"

func shippingAddress() salesorder.AddressProps {
	return salesorder.AddressProps{
		FirstName:   "Sam",
		LastName:    "Carter",
		Line1:       "1 Market St",
		City:        "San Francisco",
		CountryCode: "US",
		PostalCode:  "94105",
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
