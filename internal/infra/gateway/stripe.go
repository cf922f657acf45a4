package gateway

import (
	"context"

	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Metadata keys written by the checkout-session creator (the storefront).
const (
	metadataBookingID   = "bookingId"
	metadataBookingType = "bookingType"
)

// StripeGateway retrieves hosted checkout sessions. Session creation happens
// on the storefront side and is out of scope here.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(apiKey string) *StripeGateway {
	return &StripeGateway{api: client.New(apiKey, nil)}
}

func (g *StripeGateway) GetSession(ctx context.Context, sessionID string) (*commands.PaymentSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to retrieve checkout session")
	}

	return &commands.PaymentSession{
		ID:          sess.ID,
		Paid:        sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Status:      string(sess.PaymentStatus),
		BookingID:   sess.Metadata[metadataBookingID],
		BookingType: sess.Metadata[metadataBookingType],
		AmountTotal: sess.AmountTotal,
	}, nil
}

func (g *StripeGateway) GetSessionType(ctx context.Context, sessionID string) (string, error) {
	sess, err := g.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return sess.BookingType, nil
}
