package request

type CreatePoolRequest struct {
	Name            string `json:"name" binding:"required"`
	HourlyRateCents int64  `json:"hourlyRateCents" binding:"required,min=0"`
}
