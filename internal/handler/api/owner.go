package api

import (
	"net/http"

	resdto "poolside/internal/handler/dto/response"
	"poolside/internal/handler/middleware"
	"poolside/internal/usecase/commands"
	"poolside/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// OwnerHandler serves the owner dashboard reads. Both endpoints sweep expired
// payment windows first so the answer never includes a reservation that is
// only accepted because the sweeper has not run yet.
type OwnerHandler struct {
	sweeper            *commands.PaymentSweeper
	reservationQueries queries.ReservationQueries
}

func NewOwnerHandler(sweeper *commands.PaymentSweeper, reservationQueries queries.ReservationQueries) *OwnerHandler {
	return &OwnerHandler{
		sweeper:            sweeper,
		reservationQueries: reservationQueries,
	}
}

// @Summary List owner reservations
// @Description List reservations across the owner's pools, filtered by status
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param status query string false "Reservation status filter" default(accepted)
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /owner/reservations [get]
func (h *OwnerHandler) ListReservations(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.sweepFirst(c)

	status := c.DefaultQuery("status", "accepted")

	items, err := h.reservationQueries.ListByOwnerAndStatus(c.Request.Context(), ownerID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Owner revenue
// @Description Sum paid reservation amounts per pool for the current owner
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RevenueItemResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /owner/revenue [get]
func (h *OwnerHandler) Revenue(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.sweepFirst(c)

	items, err := h.reservationQueries.RevenueByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.RevenueItemResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromRevenueItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// sweepFirst is best effort: a failed sweep degrades to slightly stale data
// rather than failing the read.
func (h *OwnerHandler) sweepFirst(c *gin.Context) {
	if _, err := h.sweeper.SweepExpiredPayments(c.Request.Context()); err != nil {
		_ = c.Error(err)
	}
}
