package appointments

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pet-hub/internal/domain/users"
	"pet-hub/internal/middleware"
	"pet-hub/internal/web"

	"github.com/go-chi/chi/v5"
)

// UserLister alimenta el selector de veterinario.
type UserLister interface {
	List(ctx context.Context) ([]users.User, error)
}

func RegisterRoutes(r chi.Router, svc *Service, people UserLister, env web.Env) {
	r.Group(func(ar chi.Router) {
		ar.Use(middleware.RequireAuth)
		ar.Get("/appointments", listHandler(svc, people, env))
		ar.Post("/appointments/book", bookHandler(svc, env))
	})
}

type AppointmentResponse struct {
	ID              int64     `json:"id"`
	OwnerID         int64     `json:"owner_id"`
	PetID           int64     `json:"pet_id"`
	VetID           int64     `json:"vet_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Reason          string    `json:"reason"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToResponse(a Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		OwnerID:         a.OwnerID,
		PetID:           a.PetID,
		VetID:           a.VetID,
		AppointmentTime: a.Time,
		Reason:          a.Reason,
		CreatedAt:       a.CreatedAt,
	}
}

func ToResponses(items []Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ToResponse(a))
	}
	return out
}

type appointmentsView struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Users        []users.UserResponse  `json:"users"`
}

// listHandler godoc
// @Summary  Appointments of the session user (assigned ones for vets)
// @Tags     appointments
// @Produce  json
// @Success  200
// @Router   /appointments [get]
func listHandler(svc *Service, people UserLister, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.GetPrincipal(r.Context())

		items, err := svc.ListFor(r.Context(), p)
		if err != nil {
			env.InternalError(w, r, "list appointments failed", err)
			return
		}

		view := appointmentsView{
			Appointments: ToResponses(items),
			Users:        []users.UserResponse{},
		}
		if !p.IsVet() {
			all, err := people.List(r.Context())
			if err != nil {
				env.InternalError(w, r, "list users failed", err)
				return
			}
			view.Users = users.ToResponses(all)
		}

		env.Render(w, r, http.StatusOK, "vet_appointments", &p, view)
	}
}

// bookHandler godoc
// @Summary  Book a vet appointment
// @Tags     appointments
// @Accept   x-www-form-urlencoded
// @Param    pet_id           formData int    true  "Pet id"
// @Param    vet_id           formData int    true  "Vet user id"
// @Param    appointment_time formData string true  "YYYY-MM-DD HH:MM"
// @Param    reason           formData string false "Reason"
// @Success  303
// @Router   /appointments/book [post]
func bookHandler(svc *Service, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.GetPrincipal(r.Context())

		if err := web.ParseForm(w, r, web.MaxFormBytes); err != nil {
			web.RedirectWithFlash(w, r, "/appointments", web.FlashDanger, "Invalid form submission")
			return
		}

		petID, errPet := web.FormInt64(r, "pet_id")
		vetID, errVet := web.FormInt64(r, "vet_id")
		if errPet != nil || errVet != nil {
			web.RedirectWithFlash(w, r, "/appointments", web.FlashDanger, "Choose a pet and a vet")
			return
		}

		a, err := svc.Book(r.Context(), p.UserID, BookInput{
			PetID:  petID,
			VetID:  vetID,
			Time:   r.PostFormValue("appointment_time"),
			Reason: r.PostFormValue("reason"),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidTime):
				web.RedirectWithFlash(w, r, "/appointments", web.FlashDanger, "Appointment time must be YYYY-MM-DD HH:MM")
			case errors.Is(err, ErrInvalidReference), errors.Is(err, ErrInvalidInput):
				web.RedirectWithFlash(w, r, "/appointments", web.FlashDanger, "Pet not found")
			default:
				env.InternalError(w, r, "book appointment failed", err)
			}
			return
		}

		env.Metrics.AppointmentBooked()
		env.Logger().Info("appointment booked", map[string]any{
			"appointment_id": a.ID,
			"owner_id":       a.OwnerID,
			"vet_id":         a.VetID,
		})
		web.RedirectWithFlash(w, r, "/appointments", web.FlashSuccess, "Appointment booked")
	}
}
