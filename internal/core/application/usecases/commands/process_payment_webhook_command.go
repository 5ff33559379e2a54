package commands

import (
	"errors"
	"strings"

	"fastfood/internal/pkg/guard"
)

var (
	ErrProcessPaymentWebhookCommandIsNotConstructed = errors.New(
		"ProcessPaymentWebhookCommand must be created via NewProcessPaymentWebhookCommand constructor",
	)
)

// ProcessPaymentWebhookCommand carries a payment provider notification as it
// arrived. Fields are kept raw: a blank field is a malformed webhook that the
// handler acknowledges without doing anything.
type ProcessPaymentWebhookCommand struct { //nolint:recvcheck //using for validation
	orderID        string
	providerStatus string

	guard guard.ConstructorGuard
}

// NewProcessPaymentWebhookCommand creates the command. It never fails; the
// provider vocabulary is checked by the handler.
func NewProcessPaymentWebhookCommand(orderID string, providerStatus string) ProcessPaymentWebhookCommand {
	return ProcessPaymentWebhookCommand{
		orderID:        strings.TrimSpace(orderID),
		providerStatus: strings.TrimSpace(providerStatus),
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentWebhookCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentWebhookCommandIsNotConstructed)
}

// OrderID returns the order id sent by the provider.
func (c ProcessPaymentWebhookCommand) OrderID() string {
	return c.orderID
}

// ProviderStatus returns the provider's status word, e.g. "approved".
func (c ProcessPaymentWebhookCommand) ProviderStatus() string {
	return c.providerStatus
}

// IsMalformed reports whether the order id or the status is missing.
func (c ProcessPaymentWebhookCommand) IsMalformed() bool {
	return c.orderID == "" || c.providerStatus == ""
}
