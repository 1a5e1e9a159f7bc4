package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PoolID    uuid.UUID `json:"pool_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected cancelled"`
}
