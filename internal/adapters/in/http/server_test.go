package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "fastfood/internal/adapters/in/http"
	"fastfood/internal/adapters/out/inmemory"
	"fastfood/internal/core/application/dispatch"
	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/ports"
	"fastfood/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentNotifier struct {
	mock.Mock
}

func (m *MockPaymentNotifier) UpdatePaymentStatus(ctx context.Context, orderID string, paymentStatus string) error {
	args := m.Called(ctx, orderID, paymentStatus)
	return args.Error(0)
}

func (m *MockPaymentNotifier) NotifyProductionApproved(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockPaymentNotifier) FetchOrder(ctx context.Context, orderID string) (ports.RemoteOrder, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.RemoteOrder), args.Error(1)
}

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type fixture struct {
	echo     *echo.Echo
	notifier *MockPaymentNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := inmemory.NewStore()
	uowFactory := inmemory.NewUnitOfWorkFactory(store)
	var factory commands.OrderUoWFactory = orderUoWFactory(func() commands.OrderUoW {
		return uowFactory.Create()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := &MockPaymentNotifier{}
	payments := commands.NewUpdatePaymentStatusCommandHandler(factory, dispatch.NewInlineDispatcher(notifier, logger))

	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewCheckoutOrderCommandHandler(factory),
		commands.NewAdvanceOrderStatusCommandHandler(factory),
		&payments,
		commands.NewProcessPaymentWebhookCommandHandler(&payments, logger),
		queries.NewGetPaymentStatusQueryHandler(store),
		logger,
	)

	e := echo.New()
	servers.RegisterHandlers(e, server)

	t.Cleanup(func() { notifier.AssertExpectations(t) })
	return &fixture{echo: e, notifier: notifier}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) createOrder(t *testing.T) servers.Order {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/orders", `{"customerId":"customer-1","products":["burger","fries"]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[servers.Order](t, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("creates a received order with pending payment", func(t *testing.T) {
		f := newFixture(t)

		o := f.createOrder(t)

		assert.NotEmpty(t, o.Id)
		assert.Equal(t, "customer-1", o.CustomerId)
		assert.Equal(t, []string{"burger", "fries"}, o.Products)
		assert.Equal(t, servers.OrderStatusRecebido, o.Status)
		assert.Equal(t, servers.OrderPaymentStatusPendente, o.PaymentStatus)
		assert.False(t, o.CreatedAt.IsZero())
	})

	t.Run("rejects a blank customer", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/orders", `{"customerId":"  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Message, "customerId")
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/orders", `{"customerId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decode[servers.Error](t, rec).Message)
	})
}

func TestServer_OrderLifecycle(t *testing.T) {
	f := newFixture(t)
	o := f.createOrder(t)

	rec := f.do(t, http.MethodPatch, "/orders/"+o.Id+"/status", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Payment for the order has not been approved.", decode[servers.Error](t, rec).Message)

	f.notifier.On("UpdatePaymentStatus", mock.Anything, o.Id, "Aprovado").Return(nil).Once()
	f.notifier.On("NotifyProductionApproved", mock.Anything, o.Id).Return(nil).Once()

	rec = f.do(t, http.MethodPatch, "/orders/"+o.Id+"/payment-status", `{"paymentStatus":"Aprovado"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.OrderPaymentStatusAprovado, decode[servers.Order](t, rec).PaymentStatus)

	rec = f.do(t, http.MethodPatch, "/orders/"+o.Id+"/status", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.OrderStatusEmPreparação, decode[servers.Order](t, rec).Status)

	rec = f.do(t, http.MethodPatch, "/orders/"+o.Id+"/status", `{"status":"Em preparação"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Não é possível mudar o status de Preparação para Preparação.", decode[servers.Error](t, rec).Message)

	rec = f.do(t, http.MethodPatch, "/orders/"+o.Id+"/status", `{"status":"Pronto"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.OrderStatusPronto, decode[servers.Order](t, rec).Status)

	rec = f.do(t, http.MethodPost, "/orders/"+o.Id+"/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, servers.OrderStatusFinalizado, decode[servers.Order](t, rec).Status)

	rec = f.do(t, http.MethodPost, "/orders/"+o.Id+"/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, servers.OrderStatusFinalizado, decode[servers.Order](t, rec).Status)
}

func TestServer_UpdatePaymentStatus(t *testing.T) {
	t.Run("rejected payment only updates the order service", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		f.notifier.On("UpdatePaymentStatus", mock.Anything, o.Id, "Recusado").Return(nil).Once()

		rec := f.do(t, http.MethodPatch, "/orders/"+o.Id+"/payment-status", `{"paymentStatus":"Recusado"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, servers.OrderPaymentStatusRecusado, decode[servers.Order](t, rec).PaymentStatus)
		f.notifier.AssertNotCalled(t, "NotifyProductionApproved", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown label", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)

		rec := f.do(t, http.MethodPatch, "/orders/"+o.Id+"/payment-status", `{"paymentStatus":"Pago"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Message, "paymentStatus")
	})
}

func TestServer_NotFound(t *testing.T) {
	f := newFixture(t)

	requests := []struct {
		method, path, body string
	}{
		{http.MethodPost, "/orders/missing/checkout", ""},
		{http.MethodPatch, "/orders/missing/status", ""},
		{http.MethodPatch, "/orders/missing/payment-status", `{"paymentStatus":"Aprovado"}`},
		{http.MethodPatch, "/orders/missing/payment-status", `{"paymentStatus":"Pago"}`},
		{http.MethodGet, "/payments/missing/status", ""},
		{http.MethodPost, "/webhooks/payment", `{"orderId":"missing","paymentStatus":"approved"}`},
	}

	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			rec := f.do(t, r.method, r.path, r.body)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, http.StatusNotFound, decode[servers.Error](t, rec).Code)
		})
	}

	f.notifier.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "NotifyProductionApproved", mock.Anything, mock.Anything)
}

func TestServer_GetPaymentStatus(t *testing.T) {
	f := newFixture(t)
	o := f.createOrder(t)

	rec := f.do(t, http.MethodGet, "/payments/"+o.Id+"/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, servers.PaymentStatus{OrderId: o.Id, PaymentStatus: "Pendente"}, decode[servers.PaymentStatus](t, rec))
}

func TestServer_HandlePaymentWebhook(t *testing.T) {
	t.Run("approved payment is applied", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)
		f.notifier.On("UpdatePaymentStatus", mock.Anything, o.Id, "Aprovado").Return(nil).Once()
		f.notifier.On("NotifyProductionApproved", mock.Anything, o.Id).Return(nil).Once()

		rec := f.do(t, http.MethodPost, "/webhooks/payment", `{"orderId":"`+o.Id+`","paymentStatus":"approved"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec = f.do(t, http.MethodGet, "/payments/"+o.Id+"/status", "")
		assert.Equal(t, "Aprovado", decode[servers.PaymentStatus](t, rec).PaymentStatus)
	})

	t.Run("missing fields are acknowledged and ignored", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)

		for _, body := range []string{
			`{"orderId":"","paymentStatus":"approved"}`,
			`{"orderId":"` + o.Id + `","paymentStatus":""}`,
			`{}`,
		} {
			rec := f.do(t, http.MethodPost, "/webhooks/payment", body)

			assert.Equal(t, http.StatusOK, rec.Code, body)
			assert.Empty(t, rec.Body.String())
		}

		rec := f.do(t, http.MethodGet, "/payments/"+o.Id+"/status", "")
		assert.Equal(t, "Pendente", decode[servers.PaymentStatus](t, rec).PaymentStatus)
	})

	t.Run("unknown provider status is a bad request", func(t *testing.T) {
		f := newFixture(t)
		o := f.createOrder(t)

		rec := f.do(t, http.MethodPost, "/webhooks/payment", `{"orderId":"`+o.Id+`","paymentStatus":"unknown"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Message, "unrecognized provider payment status")
	})
}

func TestGetSwagger(t *testing.T) {
	swagger, err := servers.GetSwagger()

	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))
	assert.NotNil(t, swagger.Paths.Find("/payments/{orderId}/status"))
	assert.NotNil(t, swagger.Paths.Find("/webhooks/payment"))
}
