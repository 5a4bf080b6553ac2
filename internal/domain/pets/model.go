package pets

// Pet es una mascota publicada por su dueño.
// OwnerID queda fijo al usuario que la creó.
type Pet struct {
	ID      int64
	OwnerID int64

	Name    string
	Species string
	Breed   string
	Age     int
	Gender  string
	Color   string

	// WeightKg 0 => sin dato (NULL en postgres)
	WeightKg float64

	City    string
	Address string

	// Image es el nombre de archivo en el image store; vacío => sin imagen.
	Image string

	IsForAdoption     bool
	IsForMating       bool
	Vaccinated        bool
	Dewormed          bool
	PedigreeCertified bool
	Neutered          bool

	Temperament string
	HealthNotes string
}
