package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/generated/servers"
	"fastfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	checkoutOrderHandler         commands.CheckoutOrderCommandHandler
	advanceOrderStatusHandler    commands.AdvanceOrderStatusCommandHandler
	updatePaymentStatusHandler   commands.PaymentStatusUpdater
	processPaymentWebhookHandler commands.ProcessPaymentWebhookCommandHandler

	// Query handlers
	getPaymentStatusHandler queries.GetPaymentStatusQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	checkoutOrderHandler commands.CheckoutOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	updatePaymentStatusHandler commands.PaymentStatusUpdater,
	processPaymentWebhookHandler commands.ProcessPaymentWebhookCommandHandler,
	getPaymentStatusHandler queries.GetPaymentStatusQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		checkoutOrderHandler:         checkoutOrderHandler,
		advanceOrderStatusHandler:    advanceOrderStatusHandler,
		updatePaymentStatusHandler:   updatePaymentStatusHandler,
		processPaymentWebhookHandler: processPaymentWebhookHandler,
		getPaymentStatusHandler:      getPaymentStatusHandler,
		logger:                       logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var products []string
	if body.Products != nil {
		products = *body.Products
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewEntityID(), body.CustomerId, products)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toResponse(o))
}

// CheckoutOrder handles POST /orders/{orderId}/checkout - finalizes an order.
func (s *Server) CheckoutOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewCheckoutOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.checkoutOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toResponse(o))
}

// ChangeOrderStatus handles PATCH /orders/{orderId}/status. The body is optional:
// without a status the order moves one step forward.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var target string
	if body.Status != nil {
		target = *body.Status
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toResponse(o))
}

// UpdatePaymentStatus handles PATCH /orders/{orderId}/payment-status.
func (s *Server) UpdatePaymentStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdatePaymentStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, body.PaymentStatus)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toResponse(o))
}

// GetPaymentStatus handles GET /payments/{orderId}/status.
func (s *Server) GetPaymentStatus(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetPaymentStatusQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.getPaymentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PaymentStatus{
		OrderId:       res.OrderID,
		PaymentStatus: res.PaymentStatus,
	})
}

// HandlePaymentWebhook handles POST /webhooks/payment. A notification with a
// missing field is accepted and ignored.
func (s *Server) HandlePaymentWebhook(ctx echo.Context) error {
	var body servers.HandlePaymentWebhookJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd := commands.NewProcessPaymentWebhookCommand(deref(body.OrderId), deref(body.PaymentStatus))
	if err := s.processPaymentWebhookHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// fail writes the error response. Unknown errors are logged and hidden behind a 500.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrPaymentNotApproved),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func toResponse(o *order.Order) servers.Order {
	ids := o.Products()
	products := make([]string, len(ids))
	for i, id := range ids {
		products[i] = id.String()
	}

	return servers.Order{
		Id:            o.ID().String(),
		CustomerId:    o.CustomerID().String(),
		Products:      products,
		Status:        servers.OrderStatus(o.Status().String()),
		PaymentStatus: servers.OrderPaymentStatus(o.PaymentStatus().String()),
		CreatedAt:     o.CreatedAt(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
