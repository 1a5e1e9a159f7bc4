package response

import (
	"poolside/internal/usecase/commands"
)

type PaymentIntentResponse struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
	AmountCents  int64  `json:"amountCents"`
}

func FromIntentResult(result *commands.IntentResult) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		IntentID:     result.IntentID,
		ClientSecret: result.ClientSecret,
		Status:       string(result.Status),
		AmountCents:  result.AmountCents,
	}
}
