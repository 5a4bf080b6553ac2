package memory

import (
	"sort"
	"sync"

	"pet-hub/internal/domain/adoptions"
	"pet-hub/internal/domain/appointments"
	"pet-hub/internal/domain/matings"
	"pet-hub/internal/domain/pets"
	"pet-hub/internal/domain/users"
)

// Store guarda todas las tablas bajo un solo lock para poder chequear FKs
// y el email único igual que lo hace postgres.
type Store struct {
	mu sync.RWMutex

	users        map[int64]users.User
	emails       map[string]int64
	pets         map[int64]pets.Pet
	adoptions    map[int64]adoptions.Request
	matings      map[int64]matings.Request
	appointments map[int64]appointments.Appointment

	seq sequences
}

type sequences struct {
	users, pets, adoptions, matings, appointments int64
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int64]users.User),
		emails:       make(map[string]int64),
		pets:         make(map[int64]pets.Pet),
		adoptions:    make(map[int64]adoptions.Request),
		matings:      make(map[int64]matings.Request),
		appointments: make(map[int64]appointments.Appointment),
	}
}

// Reset vacía todas las tablas y reinicia los ids.
func (s *Store) Reset() {
	fresh := NewStore()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = fresh.users
	s.emails = fresh.emails
	s.pets = fresh.pets
	s.adoptions = fresh.adoptions
	s.matings = fresh.matings
	s.appointments = fresh.appointments
	s.seq = sequences{}
}

func (s *Store) userExists(id int64) bool {
	_, ok := s.users[id]
	return ok
}

func (s *Store) petExists(id int64) bool {
	_, ok := s.pets[id]
	return ok
}

// sortedValues devuelve los valores de m ordenados por id asc.
func sortedValues[T any](m map[int64]T, keep func(T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
