package api

import (
	"errors"
	"net/http"

	reqdto "poolside/internal/handler/dto/request"
	resdto "poolside/internal/handler/dto/response"
	"poolside/internal/handler/middleware"
	"poolside/internal/usecase/commands"
	"poolside/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PoolHandler struct {
	poolCommands commands.PoolCommands
	poolQueries  queries.PoolQueries
}

func NewPoolHandler(poolCommands commands.PoolCommands, poolQueries queries.PoolQueries) *PoolHandler {
	return &PoolHandler{
		poolCommands: poolCommands,
		poolQueries:  poolQueries,
	}
}

// @Summary Create pool
// @Description Register a new pool owned by the current user
// @Tags pools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePoolRequest true "Pool request"
// @Success 201 {object} resdto.PoolResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /pools [post]
func (h *PoolHandler) CreatePool(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	p, err := h.poolCommands.Create(c.Request.Context(), commands.CreatePoolParams{
		Name:            req.Name,
		HourlyRateCents: req.HourlyRateCents,
	}, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPool):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pool data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPool(p))
}

// @Summary List pools
// @Description List all pools with current availability
// @Tags pools
// @Produce json
// @Success 200 {array} resdto.PoolResponse
// @Router /pools [get]
func (h *PoolHandler) ListPools(c *gin.Context) {
	views, err := h.poolQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PoolResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromPoolView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get pool
// @Description Get pool by ID
// @Tags pools
// @Produce json
// @Param id path string true "Pool ID"
// @Success 200 {object} resdto.PoolResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pools/{id} [get]
func (h *PoolHandler) GetPool(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pool ID format",
		})
		return
	}

	view, err := h.poolQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPoolNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pool not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPoolView(view))
}
