// Package order provides the Order aggregate of the fast-food ordering system and
// the two value objects that describe where an order stands.
//
// The package includes:
//   - Order: the aggregate root, sole owner and mutator of both statuses
//   - Status: the fulfillment state machine (Recebido -> Em preparação -> Pronto -> Finalizado)
//   - PaymentStatus: the payment state (Pendente, Aprovado, Recusado), set directly by payment signals
//
// Key business rules:
//   - Fulfillment transitions must appear in the Status transition table
//   - Moving to Em preparação requires an approved payment
//   - Finalization (checkout) is allowed from any state and is idempotent
//   - Payment status may be replaced at any time without touching fulfillment status
//
// Rejected operations leave the aggregate unchanged and return a typed error
// (ErrPaymentNotApproved, *InvalidTransitionError) that callers can branch on.
package order
