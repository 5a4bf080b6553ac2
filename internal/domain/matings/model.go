package matings

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// Request: RequesterPetID propone cruza con PetID (la mascota ofrecida).
type Request struct {
	ID             int64
	PetID          int64
	RequesterPetID int64
	Status         Status
	CreatedAt      time.Time
}
