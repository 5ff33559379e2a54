// Package servers holds the HTTP API models and echo bindings described by
// openapi.yaml. The layout follows oapi-codegen's echo-server output, but the
// file is maintained by hand: keep it in step with openapi.yaml.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Defines values for OrderStatus.
const (
	OrderStatusEmPreparação OrderStatus = "Em preparação"
	OrderStatusFinalizado   OrderStatus = "Finalizado"
	OrderStatusPronto       OrderStatus = "Pronto"
	OrderStatusRecebido     OrderStatus = "Recebido"
)

// Defines values for OrderPaymentStatus.
const (
	OrderPaymentStatusAprovado OrderPaymentStatus = "Aprovado"
	OrderPaymentStatusPendente OrderPaymentStatus = "Pendente"
	OrderPaymentStatusRecusado OrderPaymentStatus = "Recusado"
)

// ChangeOrderStatus defines model for ChangeOrderStatus.
type ChangeOrderStatus struct {
	Status *string `json:"status,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerId string    `json:"customerId"`
	Products   *[]string `json:"products,omitempty"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt     time.Time          `json:"createdAt"`
	CustomerId    string             `json:"customerId"`
	Id            string             `json:"id"`
	PaymentStatus OrderPaymentStatus `json:"paymentStatus"`
	Products      []string           `json:"products"`
	Status        OrderStatus        `json:"status"`
}

// OrderPaymentStatus defines model for Order.PaymentStatus.
type OrderPaymentStatus string

// OrderStatus defines model for Order.Status.
type OrderStatus string

// PaymentStatus defines model for PaymentStatus.
type PaymentStatus struct {
	OrderId       string `json:"orderId"`
	PaymentStatus string `json:"paymentStatus"`
}

// PaymentWebhook defines model for PaymentWebhook.
type PaymentWebhook struct {
	OrderId *string `json:"orderId,omitempty"`

	// PaymentStatus Provider vocabulary, "approved" or "rejected".
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// UpdatePaymentStatus defines model for UpdatePaymentStatus.
type UpdatePaymentStatus struct {
	PaymentStatus string `json:"paymentStatus"`
}

// OrderId defines model for OrderId.
type OrderId = string

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = ChangeOrderStatus

// UpdatePaymentStatusJSONRequestBody defines body for UpdatePaymentStatus for application/json ContentType.
type UpdatePaymentStatusJSONRequestBody = UpdatePaymentStatus

// HandlePaymentWebhookJSONRequestBody defines body for HandlePaymentWebhook for application/json ContentType.
type HandlePaymentWebhookJSONRequestBody = PaymentWebhook

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create an order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Check an order out
	// (POST /orders/{orderId}/checkout)
	CheckoutOrder(ctx echo.Context, orderId OrderId) error
	// Set the payment status
	// (PATCH /orders/{orderId}/payment-status)
	UpdatePaymentStatus(ctx echo.Context, orderId OrderId) error
	// Advance the fulfillment status
	// (PATCH /orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId OrderId) error
	// Read the payment status of an order
	// (GET /payments/{orderId}/status)
	GetPaymentStatus(ctx echo.Context, orderId OrderId) error
	// Receive a payment provider notification
	// (POST /webhooks/payment)
	HandlePaymentWebhook(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// CheckoutOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CheckoutOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CheckoutOrder(ctx, orderId)
	return err
}

// UpdatePaymentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdatePaymentStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdatePaymentStatus(ctx, orderId)
	return err
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ChangeOrderStatus(ctx, orderId)
	return err
}

// GetPaymentStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetPaymentStatus(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPaymentStatus(ctx, orderId)
	return err
}

// HandlePaymentWebhook converts echo context to params.
func (w *ServerInterfaceWrapper) HandlePaymentWebhook(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.HandlePaymentWebhook(ctx)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.POST(baseURL+"/orders/:orderId/checkout", wrapper.CheckoutOrder)
	router.PATCH(baseURL+"/orders/:orderId/payment-status", wrapper.UpdatePaymentStatus)
	router.PATCH(baseURL+"/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.GET(baseURL+"/payments/:orderId/status", wrapper.GetPaymentStatus)
	router.POST(baseURL+"/webhooks/payment", wrapper.HandlePaymentWebhook)

}

//go:embed openapi.yaml
var swaggerSpec []byte

// GetSwagger returns the OpenAPI document these bindings implement.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	swagger, err = loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
