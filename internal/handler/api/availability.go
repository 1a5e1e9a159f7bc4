package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "poolside/internal/handler/dto/request"
	resdto "poolside/internal/handler/dto/response"
	"poolside/internal/handler/middleware"
	"poolside/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityCommands commands.AvailabilityCommands
}

func NewAvailabilityHandler(availabilityCommands commands.AvailabilityCommands) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityCommands: availabilityCommands,
	}
}

// @Summary Create availability request
// @Description Ask the pool owner for an ad-hoc time window on a pool
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pool ID"
// @Param request body reqdto.CreateAvailabilityRequest true "Availability request"
// @Success 201 {object} resdto.AvailabilityRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pools/{id}/availability-requests [post]
func (h *AvailabilityHandler) CreateRequest(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	poolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pool ID format",
		})
		return
	}

	var req reqdto.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	request, err := h.availabilityCommands.CreateRequest(c.Request.Context(), commands.CreateRequestParams{
		PoolID:    poolID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pool not found",
			})
		case errors.Is(err, commands.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid availability window",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAvailabilityRequest(request))
}

// @Summary Decide availability request
// @Description Pool owner approves or rejects a pending availability request
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Availability request ID"
// @Param request body reqdto.DecideAvailabilityRequest true "Decision"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /availability-requests/{id} [patch]
func (h *AvailabilityHandler) DecideRequest(c *gin.Context) {
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
			"error": "Invalid availability request ID format",
		})
		return
	}

	var req reqdto.DecideAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.availabilityCommands.Decide(c.Request.Context(), id, *req.Approve, actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Availability request not found",
			})
		case errors.Is(err, commands.ErrRequestDecided):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Availability request is already decided",
			})
		case errors.Is(err, commands.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the pool owner may decide this request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
