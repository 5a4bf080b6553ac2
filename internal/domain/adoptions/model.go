package adoptions

import "time"

// Status de una solicitud de adopción. Hoy no existe transición desde pending.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Request es una solicitud de adopción de PetID hecha por RequesterID.
type Request struct {
	ID          int64
	PetID       int64
	RequesterID int64
	Message     string
	Status      Status
	CreatedAt   time.Time
}
