package request

type CreateAvailabilityRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type DecideAvailabilityRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}
