package availability

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be in 15:04 format")
	ErrInvalidWindow    = errors.New("end time must be after start time")
)

const timeOfDayLayout = "15:04"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// Request is an ad-hoc hold on a pool, independent of a priced reservation.
// Date carries the day; StartTime/EndTime are local times of day ("15:04").
type Request struct {
	id          uuid.UUID
	poolID      uuid.UUID
	requesterID uuid.UUID
	date        time.Time
	startTime   string
	endTime     string
	status      Status
	createdAt   time.Time
}

func NewRequest(poolID, requesterID uuid.UUID, date time.Time, startTime, endTime string) (*Request, error) {
	start, err := time.Parse(timeOfDayLayout, startTime)
	if err != nil {
		return nil, ErrInvalidTimeOfDay
	}
	end, err := time.Parse(timeOfDayLayout, endTime)
	if err != nil {
		return nil, ErrInvalidTimeOfDay
	}
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}

	return &Request{
		id:          uuid.New(),
		poolID:      poolID,
		requesterID: requesterID,
		date:        date,
		startTime:   startTime,
		endTime:     endTime,
		status:      StatusPending,
	}, nil
}

func ReconstructRequest(id, poolID, requesterID uuid.UUID, date time.Time, startTime, endTime string, status Status, createdAt time.Time) *Request {
	return &Request{
		id:          id,
		poolID:      poolID,
		requesterID: requesterID,
		date:        date,
		startTime:   startTime,
		endTime:     endTime,
		status:      status,
		createdAt:   createdAt,
	}
}

// WindowEnd combines the request's date with its end time of day.
func (r *Request) WindowEnd() time.Time {
	return WindowEnd(r.date, r.endTime)
}

// HoldsPoolAt reports whether an approved request still blocks the pool: its
// window has not yet elapsed.
func (r *Request) HoldsPoolAt(now time.Time) bool {
	return r.status == StatusApproved && !r.WindowEnd().Before(now)
}

// WindowEnd combines a date with a "15:04" time of day in the date's location.
func WindowEnd(date time.Time, endTime string) time.Time {
	t, err := time.Parse(timeOfDayLayout, endTime)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) PoolID() uuid.UUID      { return r.poolID }
func (r *Request) RequesterID() uuid.UUID { return r.requesterID }
func (r *Request) Date() time.Time        { return r.date }
func (r *Request) StartTime() string      { return r.startTime }
func (r *Request) EndTime() string        { return r.endTime }
func (r *Request) Status() Status         { return r.status }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
