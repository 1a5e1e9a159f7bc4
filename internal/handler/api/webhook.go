package api

import (
	"errors"
	"io"
	"net/http"

	"poolside/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// webhook bodies are small JSON events; cap the read
const maxWebhookBodyBytes = 1 << 16

type WebhookHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewWebhookHandler(paymentCommands commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Stripe webhook
// @Description Receive asynchronous payment events from the gateway; authenticated by signature, not by JWT
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Webhook signature"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	signature := c.GetHeader("Stripe-Signature")

	err = h.paymentCommands.ApplyWebhookEvent(c.Request.Context(), payload, signature)
	if err != nil {
		if errors.Is(err, commands.ErrWebhookVerification) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid webhook signature",
			})
			return
		}
		// non-2xx makes the gateway redeliver; applying is idempotent, so a
		// retry after a transient failure is safe
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
