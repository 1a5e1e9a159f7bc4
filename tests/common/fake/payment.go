//go:build unit

package fake

import (
	"context"
	"sync"

	"poolside/internal/domain/payment"
	"poolside/internal/infra"
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"
)

type PaymentStore struct {
	mu            sync.Mutex
	records       map[uuid.UUID]*payment.Record // keyed by record id
	byReservation map[uuid.UUID]uuid.UUID

	// BeforeAttach runs before AttachIntent evaluates its condition, letting
	// tests interleave a concurrent attach.
	BeforeAttach func()
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		records:       make(map[uuid.UUID]*payment.Record),
		byReservation: make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *PaymentStore) Put(rec *payment.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *rec
	s.records[rec.ID] = &copied
	s.byReservation[rec.ReservationID] = rec.ID
}

func (s *PaymentStore) Get(reservationID uuid.UUID) *payment.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if recID, ok := s.byReservation[reservationID]; ok {
		copied := *s.records[recID]
		return &copied
	}
	return nil
}

func (s *PaymentStore) FindByReservation(_ context.Context, reservationID uuid.UUID) (*payment.Record, error) {
	rec := s.Get(reservationID)
	if rec == nil {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return rec, nil
}

func (s *PaymentStore) FindByIntent(_ context.Context, intentID string) (*payment.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.IntentID == intentID {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
}

func (s *PaymentStore) Claim(_ context.Context, reservationID uuid.UUID, amountCents int64) (*payment.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if recID, ok := s.byReservation[reservationID]; ok {
		copied := *s.records[recID]
		return &copied, false, nil
	}
	rec := &payment.Record{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Status:        payment.StatusPending,
		AmountCents:   amountCents,
	}
	s.records[rec.ID] = rec
	s.byReservation[reservationID] = rec.ID
	copied := *rec
	return &copied, true, nil
}

func (s *PaymentStore) AttachIntent(_ context.Context, recordID uuid.UUID, priorIntentID, intentID, clientSecret string) (bool, error) {
	if s.BeforeAttach != nil {
		hook := s.BeforeAttach
		s.BeforeAttach = nil
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[recordID]
	if !ok {
		return false, nil
	}
	if rec.IntentID != "" && rec.IntentID != priorIntentID &&
		rec.Status != payment.StatusFailed && rec.Status != payment.StatusRefused {
		return false, nil
	}
	rec.IntentID = intentID
	rec.ClientSecret = clientSecret
	rec.Status = payment.StatusPending
	return true, nil
}

func (s *PaymentStore) MarkSucceeded(_ context.Context, recordID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[recordID]
	if !ok || rec.Status == payment.StatusSucceeded {
		return false, nil
	}
	rec.Status = payment.StatusSucceeded
	return true, nil
}

func (s *PaymentStore) MarkFailed(_ context.Context, recordID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[recordID]; ok {
		rec.Status = payment.StatusFailed
	}
	return nil
}

func (s *PaymentStore) RefuseByReservation(_ context.Context, reservationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recID, ok := s.byReservation[reservationID]
	if !ok {
		return nil
	}
	if rec := s.records[recID]; rec.Status != payment.StatusSucceeded {
		rec.Status = payment.StatusRefused
	}
	return nil
}

var _ commands.PaymentStore = (*PaymentStore)(nil)
