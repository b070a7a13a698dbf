package order

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/pkg/errs"
)

// ErrStatusIsTerminal marks transition rejections out of a terminal status.
// It travels as the cause of the validation error so callers can map the
// rejection to a conflict instead of a plain bad request.
var ErrStatusIsTerminal = errors.New("terminal status accepts no transition")

// Status represents the lifecycle state of an order. The tokens are the wire
// values exchanged with the persistence collaborator and form a closed set
// with two subsequences:
//
// Forward path (ordered by intent):
//
//	PEDIDO_REALIZADO -> PEDIDO_CONFIRMADO -> NOTA_GERADA -> PEDIDO_RECEBIDO
//	  -> ENVIADO_TRANSPORTADORA -> RECEBIDO_TRANSPORTADORA
//	  -> MERCADORIA_TRANSITO -> PEDIDO_ENTREGUE
//
// Exception path (reachable from any non-terminal state):
//
//	PROCESSO_DEVOLUCAO -> PEDIDO_DEVOLVIDO
//	PEDIDO_CANCELADO
//	PROBLEMA_ENTREGA
//
// The collaborator models returns and cancellations as a separate resource,
// so PROCESSO_DEVOLUCAO, PEDIDO_DEVOLVIDO and PEDIDO_CANCELADO route to a
// dedicated endpoint (see IsReturnFlow). PROBLEMA_ENTREGA belongs to the
// exception path but uses the standard status endpoint.
//
// The only enforced transition rule is that terminal states accept no further
// changes. The forward ordering documents intent; it is not enforced, since
// the upstream product never defined which skips are illegal.
type Status string

const (
	// StatusPlaced is the initial state of every new order.
	StatusPlaced Status = "PEDIDO_REALIZADO"

	// StatusConfirmed indicates the seller accepted the order.
	StatusConfirmed Status = "PEDIDO_CONFIRMADO"

	// StatusInvoiceIssued indicates the fiscal invoice was generated.
	StatusInvoiceIssued Status = "NOTA_GERADA"

	// StatusReceivedBySeller indicates the goods were received by the seller
	// for dispatch.
	StatusReceivedBySeller Status = "PEDIDO_RECEBIDO"

	// StatusShippedToCarrier indicates the goods were handed over for
	// carrier pickup.
	StatusShippedToCarrier Status = "ENVIADO_TRANSPORTADORA"

	// StatusReceivedByCarrier indicates the carrier confirmed receipt.
	StatusReceivedByCarrier Status = "RECEBIDO_TRANSPORTADORA"

	// StatusInTransit indicates the goods are on their way to the client.
	StatusInTransit Status = "MERCADORIA_TRANSITO"

	// StatusDelivered is the happy-path terminal state.
	StatusDelivered Status = "PEDIDO_ENTREGUE"

	// StatusReturnInProgress indicates a return was opened by the client.
	StatusReturnInProgress Status = "PROCESSO_DEVOLUCAO"

	// StatusReturned is the terminal state of a completed return.
	StatusReturned Status = "PEDIDO_DEVOLVIDO"

	// StatusCancelled is the terminal state of a cancelled order.
	StatusCancelled Status = "PEDIDO_CANCELADO"

	// StatusDeliveryProblem flags a delivery incident. It is not terminal:
	// the order can still be delivered, returned or cancelled afterwards.
	StatusDeliveryProblem Status = "PROBLEMA_ENTREGA"
)

// ForwardPath returns the happy-path subsequence in its intended order,
// from placement to delivery.
func ForwardPath() []Status {
	return []Status{
		StatusPlaced,
		StatusConfirmed,
		StatusInvoiceIssued,
		StatusReceivedBySeller,
		StatusShippedToCarrier,
		StatusReceivedByCarrier,
		StatusInTransit,
		StatusDelivered,
	}
}

// ExceptionPath returns the return/cancellation subsequence.
func ExceptionPath() []Status {
	return []Status{
		StatusReturnInProgress,
		StatusReturned,
		StatusCancelled,
		StatusDeliveryProblem,
	}
}

// AllStatuses returns every valid status token.
func AllStatuses() []Status {
	return append(ForwardPath(), ExceptionPath()...)
}

// Validate checks that the token belongs to the closed status set.
// Returns an error for empty strings and unknown tokens.
func (s Status) Validate() error {
	for _, valid := range AllStatuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status token", string(s)))
}

// String returns the wire token.
func (s Status) String() string {
	return string(s)
}

// DisplayLabel derives the human-readable form of the token: separators are
// replaced with spaces and each word is title-cased, e.g. PEDIDO_REALIZADO
// becomes "Pedido Realizado".
//
// The derivation is a pure function of the token. It never validates or
// mutates anything, and it is one-way: labels are not parsed back into
// tokens.
func (s Status) DisplayLabel() string {
	words := strings.Split(strings.ToLower(strings.ReplaceAll(string(s), "_", " ")), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// IsTerminal reports whether the status accepts no further transitions.
// Terminal states are PEDIDO_ENTREGUE, PEDIDO_DEVOLVIDO and PEDIDO_CANCELADO.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusReturned || s == StatusCancelled
}

// IsReturnFlow reports whether a transition into this status must be sent to
// the collaborator's return/cancellation endpoint instead of the standard
// status endpoint. The backend treats these as a separate operation with its
// own side effects (refund, restock), hence the dedicated route.
func (s Status) IsReturnFlow() bool {
	return s == StatusReturnInProgress || s == StatusReturned || s == StatusCancelled
}

// ChangeTo validates a transition from the current status to next.
//
// Rules enforced:
//   - next must be a valid token
//   - a terminal status accepts no transition at all
//
// Everything else is accepted. The upstream product gives no evidence of
// which forward skips should be illegal, so "no regression out of a terminal
// state" is the only safe guard.
//
// Returns:
//   - (next, nil) on an accepted transition
//   - ("", error) when next is invalid or the current status is terminal
func (s Status) ChangeTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}

	if s.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%w: %s cannot change to %s", ErrStatusIsTerminal, s, next))
	}

	return next, nil
}

// IsTerminalTransitionError reports whether err is a transition rejection
// caused by a terminal status.
func IsTerminalTransitionError(err error) bool {
	var invalid *errs.ValueIsInvalidError
	return errors.As(err, &invalid) && errors.Is(invalid.Cause, ErrStatusIsTerminal)
}
