package api

import (
	"errors"
	"net/http"

	resdto "poolside/internal/handler/dto/response"
	"poolside/internal/handler/middleware"
	"poolside/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Create payment intent
// @Description Get the reservation's gateway intent, creating it on first call; repeated calls return the same intent
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.PaymentIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/{id}/payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	result, err := h.paymentCommands.GetOrCreateIntent(c.Request.Context(), id, actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, commands.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the renter may pay for this reservation",
			})
		case errors.Is(err, commands.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is not awaiting payment",
			})
		case errors.Is(err, commands.ErrPaymentWindowExpired):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment window has expired",
			})
		case errors.Is(err, commands.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation is already paid",
			})
		case errors.Is(err, commands.ErrGatewayFailure):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment gateway is unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntentResult(result))
}
