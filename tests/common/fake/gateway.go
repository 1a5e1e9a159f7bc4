//go:build unit

package fake

import (
	"context"
	"fmt"
	"sync"

	"poolside/internal/infra"
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"
)

type Gateway struct {
	mu      sync.Mutex
	intents map[string]*commands.Intent
	counter int

	CreateErr   error
	RetrieveErr error
	Event       *commands.WebhookEvent
	VerifyErr   error
}

func NewGateway() *Gateway {
	return &Gateway{intents: make(map[string]*commands.Intent)}
}

func (g *Gateway) CreateIntent(_ context.Context, _ int64, _ uuid.UUID) (*commands.Intent, error) {
	if g.CreateErr != nil {
		return nil, g.CreateErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	intent := &commands.Intent{
		ID:           fmt.Sprintf("pi_%d", g.counter),
		ClientSecret: fmt.Sprintf("pi_%d_secret", g.counter),
		Status:       commands.IntentStatusPending,
	}
	g.intents[intent.ID] = intent
	return intent, nil
}

func (g *Gateway) RetrieveIntent(_ context.Context, intentID string) (*commands.Intent, error) {
	if g.RetrieveErr != nil {
		return nil, g.RetrieveErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	intent, ok := g.intents[intentID]
	if !ok {
		return nil, infra.WrapRepoErr("intent not found", nil, infra.KindNotFound)
	}
	copied := *intent
	return &copied, nil
}

func (g *Gateway) VerifyWebhook(_ []byte, _ string) (*commands.WebhookEvent, error) {
	if g.VerifyErr != nil {
		return nil, g.VerifyErr
	}
	return g.Event, nil
}

func (g *Gateway) SetIntentStatus(intentID string, status commands.IntentStatus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if intent, ok := g.intents[intentID]; ok {
		intent.Status = status
	}
}

func (g *Gateway) CreatedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

var _ commands.PaymentGateway = (*Gateway)(nil)
