package order

import (
	"fmt"
	"slices"

	"fastfood/internal/pkg/errs"
)

// Status represents the fulfillment stage of an order.
// It implements a state machine with a fixed transition table:
//
//	Recebido ──> Em preparação ──> Pronto ──> Finalizado ──┐
//	    │              │                          ▲   ▲     │
//	    │              └──────────────────────────┘   └─────┘
//	    └─────────────────────────────────────────┘  (checkout, idempotent)
//
// Status is an immutable value object: transitions return a new Status.
// Values are persisted and exchanged by their label (String), and shown to
// people by their display name (DisplayName).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status of every new order.
	Received

	// InPreparation indicates the kitchen is working on the order.
	// Entering it requires an approved payment.
	InPreparation

	// Ready indicates the order is waiting to be picked up.
	Ready

	// Finalized indicates the order was handed over (checkout).
	Finalized
)

var statusLabels = map[Status]string{
	Received:      "Recebido",
	InPreparation: "Em preparação",
	Ready:         "Pronto",
	Finalized:     "Finalizado",
}

var statusDisplayNames = map[Status]string{
	Received:      "Recebido",
	InPreparation: "Preparação",
	Ready:         "Pronto",
	Finalized:     "Finalizado",
}

// statusTransitions lists, for each source status, every destination the
// table allows.
var statusTransitions = map[Status][]Status{
	Received:      {InPreparation, Finalized},
	InPreparation: {Ready, Finalized},
	Ready:         {Finalized},
	Finalized:     {Finalized},
}

// statusChain is the single canonical forward step from each status.
var statusChain = map[Status]Status{
	Received:      InPreparation,
	InPreparation: Ready,
	Ready:         Finalized,
	Finalized:     Finalized,
}

// NewStatus parses a status label ("Recebido", "Em preparação", "Pronto",
// "Finalizado"). Any other label fails with a ValueIsInvalidError whose cause
// is ErrUnrecognizedStatus.
func NewStatus(label string) (Status, error) {
	for s, l := range statusLabels {
		if l == label {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%w: %q", ErrUnrecognizedStatus, label))
}

// Validate checks that s is one of the four defined statuses.
func (s Status) Validate() error {
	if _, ok := statusLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status label, or "Unknown" for invalid values.
func (s Status) String() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "Unknown"
}

// DisplayName returns the short human-readable name used in messages,
// e.g. "Preparação" for InPreparation.
func (s Status) DisplayName() string {
	if n, ok := statusDisplayNames[s]; ok {
		return n
	}
	return "Unknown"
}

// CanTransitionTo reports whether the transition table allows s -> to.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(statusTransitions[s], to)
}

// TransitionTo returns to when the table allows s -> to, and an
// *InvalidTransitionError otherwise.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return s, NewInvalidTransitionError(s, to)
	}
	return to, nil
}

// Next returns the canonical next step: Recebido -> Em preparação -> Pronto ->
// Finalizado -> Finalizado. Invalid statuses return Unknown.
func (s Status) Next() Status {
	return statusChain[s]
}
