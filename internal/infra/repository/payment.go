package repository

import (
	"context"
	"errors"

	"poolside/internal/domain/payment"
	"poolside/internal/infra"
	"poolside/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

const paymentColumns = `
SELECT id, reservation_id, COALESCE(intent_id, ''), COALESCE(client_secret, ''),
       status, amount_cents, created_at, updated_at
FROM payments
`

func (r *PaymentRepository) FindByReservation(ctx context.Context, reservationID uuid.UUID) (*payment.Record, error) {
	row := r.db.QueryRow(ctx, paymentColumns+`WHERE reservation_id = $1`, reservationID)
	return scanRecord(row, "payment record not found for reservation")
}

func (r *PaymentRepository) FindByIntent(ctx context.Context, intentID string) (*payment.Record, error) {
	row := r.db.QueryRow(ctx, paymentColumns+`WHERE intent_id = $1`, intentID)
	return scanRecord(row, "payment record not found for intent")
}

// Claim inserts the reservation's single payment row if absent. The unique
// constraint on reservation_id resolves the race between two concurrent
// first attempts: the loser's insert is a no-op and both read the same row.
func (r *PaymentRepository) Claim(ctx context.Context, reservationID uuid.UUID, amountCents int64) (*payment.Record, bool, error) {
	tag, err := r.db.Exec(ctx, `
INSERT INTO payments (id, reservation_id, status, amount_cents)
VALUES ($1, $2, 'pending', $3)
ON CONFLICT (reservation_id) DO NOTHING`,
		uuid.New(), reservationID, amountCents,
	)
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to claim payment record", err)
	}
	created := tag.RowsAffected() == 1

	rec, err := r.FindByReservation(ctx, reservationID)
	if err != nil {
		return nil, false, err
	}
	return rec, created, nil
}

// AttachIntent lands when no live intent is attached yet, or when the record
// still holds the intent the caller observed (so a canceled intent can be
// replaced). A concurrent attacher that already stored a different pending
// intent wins and this returns false.
func (r *PaymentRepository) AttachIntent(ctx context.Context, recordID uuid.UUID, priorIntentID, intentID, clientSecret string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE payments
SET intent_id = $3, client_secret = $4, status = 'pending', updated_at = now()
WHERE id = $1
  AND (intent_id IS NULL OR intent_id = $2 OR status IN ('failed', 'refused'))`,
		recordID, priorIntentID, intentID, clientSecret,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach payment intent", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PaymentRepository) MarkSucceeded(ctx context.Context, recordID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
UPDATE payments SET status = 'succeeded', updated_at = now()
WHERE id = $1 AND status <> 'succeeded'`,
		recordID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment succeeded", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, recordID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
UPDATE payments SET status = 'failed', updated_at = now()
WHERE id = $1 AND status <> 'succeeded'`,
		recordID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark payment failed", err)
	}
	return nil
}

func (r *PaymentRepository) RefuseByReservation(ctx context.Context, reservationID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
UPDATE payments SET status = 'refused', updated_at = now()
WHERE reservation_id = $1 AND status <> 'succeeded'`,
		reservationID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to refuse payment record", err)
	}
	return nil
}

func scanRecord(row pgx.Row, notFoundMsg string) (*payment.Record, error) {
	var rec payment.Record
	var status string
	err := row.Scan(
		&rec.ID, &rec.ReservationID, &rec.IntentID, &rec.ClientSecret,
		&status, &rec.AmountCents, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan payment record", err)
	}
	rec.Status = payment.Status(status)
	return &rec, nil
}
