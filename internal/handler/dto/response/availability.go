package response

import (
	"time"

	"poolside/internal/domain/availability"

	"github.com/google/uuid"
)

type AvailabilityRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	PoolID      uuid.UUID `json:"poolId"`
	RequesterID uuid.UUID `json:"requesterId"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
}

func FromAvailabilityRequest(req *availability.Request) *AvailabilityRequestResponse {
	return &AvailabilityRequestResponse{
		ID:          req.ID(),
		PoolID:      req.PoolID(),
		RequesterID: req.RequesterID(),
		Date:        req.Date().Format(time.DateOnly),
		StartTime:   req.StartTime(),
		EndTime:     req.EndTime(),
		Status:      req.Status().String(),
	}
}
