package queries

import (
	"context"

	"studio-booking/internal/pkg/errs"
)

var (
	ErrSessionLookupFailed = errs.New("payment session lookup failed")
	ErrMissingSessionType  = errs.New("payment session has no booking type metadata")
)

// SessionTypeReader is the slice of the payment gateway the read side needs.
type SessionTypeReader interface {
	GetSessionType(ctx context.Context, sessionID string) (string, error)
}

type PaymentQueries interface {
	// SessionKind returns the booking category recorded in the payment
	// session's metadata ("studio" or "service").
	SessionKind(ctx context.Context, sessionID string) (string, error)
}

type paymentQueriesImpl struct {
	sessions SessionTypeReader
}

func NewPaymentQueries(sessions SessionTypeReader) PaymentQueries {
	return &paymentQueriesImpl{sessions: sessions}
}

func (q *paymentQueriesImpl) SessionKind(ctx context.Context, sessionID string) (string, error) {
	kind, err := q.sessions.GetSessionType(ctx, sessionID)
	if err != nil {
		return "", errs.Mark(err, ErrSessionLookupFailed)
	}
	if kind == "" {
		return "", ErrMissingSessionType
	}
	return kind, nil
}
