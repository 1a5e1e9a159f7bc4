package pool

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPoolName   = errors.New("pool name cannot be empty")
	ErrPoolNameTooLong = errors.New("pool name is too long (max 255 characters)")
	ErrNegativeRate    = errors.New("hourly rate cannot be negative")
)

const MaxPoolNameLength = 255

// Pool is the rentable resource. IsAvailable is derived from the set of
// active reservations and approved availability requests; only the
// reconciler writes it.
type Pool struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	name            string
	hourlyRateCents int64
	isAvailable     bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPool(ownerID uuid.UUID, name string, hourlyRateCents int64) (*Pool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyPoolName
	}
	if len(name) > MaxPoolNameLength {
		return nil, ErrPoolNameTooLong
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Pool{
		id:              uuid.New(),
		ownerID:         ownerID,
		name:            name,
		hourlyRateCents: hourlyRateCents,
		isAvailable:     true,
	}, nil
}

func ReconstructPool(id, ownerID uuid.UUID, name string, hourlyRateCents int64, isAvailable bool, createdAt, updatedAt time.Time) *Pool {
	return &Pool{
		id:              id,
		ownerID:         ownerID,
		name:            name,
		hourlyRateCents: hourlyRateCents,
		isAvailable:     isAvailable,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// QuoteCents prices a rental window at the pool's hourly rate.
func (p *Pool) QuoteCents(start, end time.Time) int64 {
	if !end.After(start) {
		return 0
	}
	// integer arithmetic so fractional hours never round a cent
	return int64(end.Sub(start)) * p.hourlyRateCents / int64(time.Hour)
}

func (p *Pool) ID() uuid.UUID          { return p.id }
func (p *Pool) OwnerID() uuid.UUID     { return p.ownerID }
func (p *Pool) Name() string           { return p.name }
func (p *Pool) HourlyRateCents() int64 { return p.hourlyRateCents }
func (p *Pool) IsAvailable() bool      { return p.isAvailable }
func (p *Pool) CreatedAt() time.Time   { return p.createdAt }
func (p *Pool) UpdatedAt() time.Time   { return p.updatedAt }
