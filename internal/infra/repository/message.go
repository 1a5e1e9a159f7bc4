package repository

import (
	"context"

	"poolside/internal/infra"
	"poolside/internal/infra/db"

	"github.com/google/uuid"
)

type MessageRepository struct {
	db db.DBTX
}

func NewMessageRepository(dbtx db.DBTX) *MessageRepository {
	return &MessageRepository{db: dbtx}
}

func (r *MessageRepository) Create(ctx context.Context, senderID, recipientID uuid.UUID, content string, reservationID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO messages (id, sender_id, recipient_id, content, reservation_id)
VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), senderID, recipientID, content, reservationID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert message", err)
	}
	return nil
}
