package http

import (
	"context"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/salesorder"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateSalesOrderCommand) (kernel.UUID, error)
	}
	ShippingAddressUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateShippingAddressCommand) error
	}
	PersonalizationUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdatePersonalizationCommand) error
	}
	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteSalesOrderCommand) error
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetSalesOrderQuery) (salesorder.Document, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListSalesOrdersQuery) (queries.ListSalesOrdersQueryResponse, error)
	}
)

// Handlers are the use cases the server exposes.
type Handlers struct {
	CreateOrder           OrderCreator
	UpdateShippingAddress ShippingAddressUpdater
	UpdatePersonalization PersonalizationUpdater
	DeleteOrder           OrderDeleter
	GetOrder              OrderGetter
	ListOrders            OrderLister
}

// Server translates HTTP requests into commands and queries. It holds no
// business rules of its own.
type Server struct {
	handlers Handlers
	logger   *zap.SugaredLogger
}

func NewServer(handlers Handlers, logger *zap.SugaredLogger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts the API, /health and /metrics on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = requestValidator{}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PATCH("/orders/:id/shipping-address", s.UpdateShippingAddress)
	api.PATCH("/orders/:id/line-items/:lineItemId/personalization", s.UpdatePersonalization)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateSalesOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateSalesOrderCommand(req.toParams())
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+orderID.String())
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetSalesOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	doc, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, doc)
}

// ListOrders handles GET /api/v1/orders?accountId=&status=&page=&size=.
func (s *Server) ListOrders(ctx echo.Context) error {
	var req ListSalesOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid query parameters")
	}
	if err := ctx.Validate(&req); err != nil {
		return s.badRequest(ctx, "Invalid query parameters: "+err.Error())
	}

	query, err := queries.NewListSalesOrdersQuery(queries.ListSalesOrdersParams{
		AccountID: req.AccountID,
		Status:    req.Status,
		Page:      req.Page,
		Size:      req.Size,
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ListSalesOrdersResponse{
		Total:  resp.Total,
		Pages:  resp.Pages,
		Size:   resp.Size,
		Page:   resp.Page,
		Result: resp.Items,
	})
}

// UpdateShippingAddress handles PATCH /api/v1/orders/:id/shipping-address.
func (s *Server) UpdateShippingAddress(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req salesorder.AddressProps
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateShippingAddressCommand(orderID, req)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdateShippingAddress.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdatePersonalization handles
// PATCH /api/v1/orders/:id/line-items/:lineItemId/personalization.
func (s *Server) UpdatePersonalization(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	lineItemID, err := pathUUID(ctx, "lineItemId")
	if err != nil {
		return s.fail(ctx, err)
	}

	var req UpdatePersonalizationRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePersonalizationCommand(orderID, lineItemID, req.properties())
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.UpdatePersonalization.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteSalesOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
