//go:build unit

// Package fake provides in-memory store implementations for command tests.
// They honor the same conditional-update semantics as the SQL repositories so
// race-sensitive flows (conditional transitions, intent claiming) can be
// exercised without a database.
package fake

import (
	"context"
	"sync"
	"time"

	"poolside/internal/domain/availability"
	"poolside/internal/domain/pool"
	"poolside/internal/domain/reservation"
	"poolside/internal/infra"
	"poolside/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationStore struct {
	mu    sync.Mutex
	snaps map[uuid.UUID]*commands.ReservationSnapshot

	// BeforeUpdate runs after Snapshot but before the conditional update,
	// letting tests interleave a concurrent transition.
	BeforeUpdate func()
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{snaps: make(map[uuid.UUID]*commands.ReservationSnapshot)}
}

func (s *ReservationStore) Put(snap *commands.ReservationSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *snap
	s.snaps[snap.ID] = &copied
}

func (s *ReservationStore) Get(id uuid.UUID) *commands.ReservationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap, ok := s.snaps[id]; ok {
		copied := *snap
		return &copied
	}
	return nil
}

func (s *ReservationStore) Create(_ context.Context, res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[res.ID()] = &commands.ReservationSnapshot{
		ID:          res.ID(),
		PoolID:      res.PoolID(),
		RenterID:    res.RenterID(),
		Status:      res.Status(),
		StartTime:   res.StartTime(),
		EndTime:     res.EndTime(),
		AmountCents: res.AmountCents(),
	}
	return nil
}

func (s *ReservationStore) Snapshot(_ context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	copied := *snap
	return &copied, nil
}

func (s *ReservationStore) UpdateStatusIf(_ context.Context, id uuid.UUID, from, to reservation.Status, at time.Time) (bool, error) {
	if s.BeforeUpdate != nil {
		hook := s.BeforeUpdate
		s.BeforeUpdate = nil
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.snaps[id]
	if !ok || snap.Status != from {
		return false, nil
	}
	snap.Status = to
	snap.UpdatedAt = at
	return true, nil
}

func (s *ReservationStore) ListExpiredAccepted(_ context.Context, cutoff time.Time) ([]commands.ReservationSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []commands.ReservationSnapshot
	for _, snap := range s.snaps {
		if snap.Status == reservation.StatusAccepted && snap.UpdatedAt.Before(cutoff) {
			out = append(out, *snap)
		}
	}
	return out, nil
}

func (s *ReservationStore) ListHoldCandidates(_ context.Context, poolID uuid.UUID) ([]commands.ReservationSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []commands.ReservationSnapshot
	for _, snap := range s.snaps {
		if snap.PoolID == poolID && snap.Status.Blocks() {
			out = append(out, *snap)
		}
	}
	return out, nil
}

type PoolStore struct {
	mu           sync.Mutex
	pools        map[uuid.UUID]*pool.Pool
	availability map[uuid.UUID]bool
}

func NewPoolStore() *PoolStore {
	return &PoolStore{
		pools:        make(map[uuid.UUID]*pool.Pool),
		availability: make(map[uuid.UUID]bool),
	}
}

func (s *PoolStore) Put(p *pool.Pool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[p.ID()] = p
	s.availability[p.ID()] = p.IsAvailable()
}

func (s *PoolStore) Available(poolID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availability[poolID]
}

func (s *PoolStore) Create(_ context.Context, p *pool.Pool) error {
	s.Put(p)
	return nil
}

func (s *PoolStore) Find(_ context.Context, id uuid.UUID) (*pool.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pools[id]
	if !ok {
		return nil, infra.WrapRepoErr("pool not found", nil, infra.KindNotFound)
	}
	return p, nil
}

func (s *PoolStore) SetAvailability(_ context.Context, poolID uuid.UUID, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.availability[poolID] = available
	return nil
}

func (s *PoolStore) ListUnavailableIDs(_ context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []uuid.UUID
	for id, available := range s.availability {
		if !available {
			out = append(out, id)
		}
	}
	return out, nil
}

type RequestStore struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*availability.Request
	owners   map[uuid.UUID]uuid.UUID // pool id -> owner id
}

func NewRequestStore() *RequestStore {
	return &RequestStore{
		requests: make(map[uuid.UUID]*availability.Request),
		owners:   make(map[uuid.UUID]uuid.UUID),
	}
}

func (s *RequestStore) SetPoolOwner(poolID, ownerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[poolID] = ownerID
}

func (s *RequestStore) Get(id uuid.UUID) *availability.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[id]
}

func (s *RequestStore) Create(_ context.Context, req *availability.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID()] = req
	return nil
}

func (s *RequestStore) Snapshot(_ context.Context, id uuid.UUID) (*commands.RequestSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("availability request not found", nil, infra.KindNotFound)
	}
	return &commands.RequestSnapshot{
		ID:          req.ID(),
		PoolID:      req.PoolID(),
		PoolOwnerID: s.owners[req.PoolID()],
		RequesterID: req.RequesterID(),
		Status:      req.Status(),
	}, nil
}

func (s *RequestStore) SetStatus(_ context.Context, id uuid.UUID, status availability.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return infra.WrapRepoErr("availability request not found", nil, infra.KindNotFound)
	}
	s.requests[id] = availability.ReconstructRequest(
		req.ID(), req.PoolID(), req.RequesterID(),
		req.Date(), req.StartTime(), req.EndTime(),
		status, req.CreatedAt(),
	)
	return nil
}

func (s *RequestStore) ListApproved(_ context.Context, poolID uuid.UUID) ([]*availability.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*availability.Request
	for _, req := range s.requests {
		if req.PoolID() == poolID && req.Status() == availability.StatusApproved {
			out = append(out, req)
		}
	}
	return out, nil
}

var (
	_ commands.ReservationStore = (*ReservationStore)(nil)
	_ commands.PoolStore        = (*PoolStore)(nil)
	_ commands.RequestStore     = (*RequestStore)(nil)
)
