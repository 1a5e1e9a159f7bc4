package gateway

import (
	"context"
	"encoding/json"

	"poolside/internal/pkg/config"
	"poolside/internal/pkg/errs"
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

const metadataReservationID = "reservation_id"

// StripeGateway adapts the Stripe PaymentIntents API to the payment port.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, reservationID uuid.UUID) (*commands.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataReservationID, reservationID.String())

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create payment intent")
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*commands.Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to retrieve payment intent")
	}
	return toIntent(pi), nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (*commands.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, errs.Wrap(err, "webhook signature verification failed")
	}

	out := &commands.WebhookEvent{Type: string(event.Type)}

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded, stripe.EventTypePaymentIntentPaymentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.Wrap(err, "failed to decode payment intent event")
		}
		out.IntentID = pi.ID
		if raw, ok := pi.Metadata[metadataReservationID]; ok {
			if id, err := uuid.Parse(raw); err == nil {
				out.ReservationID = id
			}
		}
	}

	return out, nil
}

func toIntent(pi *stripe.PaymentIntent) *commands.Intent {
	return &commands.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       toIntentStatus(pi.Status),
	}
}

func toIntentStatus(s stripe.PaymentIntentStatus) commands.IntentStatus {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return commands.IntentStatusSucceeded
	case stripe.PaymentIntentStatusCanceled:
		return commands.IntentStatusCanceled
	default:
		return commands.IntentStatusPending
	}
}
