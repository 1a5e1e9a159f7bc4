package response

import (
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthResponse struct {
	AccessToken string    `json:"accessToken"`
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		AccessToken: result.Token,
		UserID:      result.UserID,
		Email:       result.Email,
		Role:        result.Role.String(),
	}
}
