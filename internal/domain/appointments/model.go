package appointments

import "time"

// TimeLayout es el formato que aceptan los formularios ("YYYY-MM-DD HH:MM", UTC).
const TimeLayout = "2006-01-02 15:04"

// Appointment es un turno de OwnerID con VetID para PetID.
type Appointment struct {
	ID        int64
	OwnerID   int64
	PetID     int64
	VetID     int64
	Time      time.Time
	Reason    string
	CreatedAt time.Time
}
