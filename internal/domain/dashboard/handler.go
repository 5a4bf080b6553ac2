package dashboard

import (
	"net/http"

	"pet-hub/internal/domain/adoptions"
	"pet-hub/internal/domain/appointments"
	"pet-hub/internal/domain/matings"
	"pet-hub/internal/domain/pets"
	"pet-hub/internal/domain/users"
	"pet-hub/internal/middleware"
	"pet-hub/internal/web"

	"github.com/go-chi/chi/v5"
)

// Sources son los servicios que las vistas agregadas leen.
type Sources struct {
	Users        *users.Service
	Pets         *pets.Service
	Adoptions    *adoptions.Service
	Matings      *matings.Service
	Appointments *appointments.Service
}

func RegisterRoutes(r chi.Router, src Sources, env web.Env) {
	r.Get("/", indexHandler())

	r.Group(func(dr chi.Router) {
		dr.Use(middleware.RequireAuth)
		dr.Get("/dashboard", dashboardHandler(src, env))
		dr.With(RequireAdmin).Get("/admin", adminHandler(src, env))
	})
}

// RequireAdmin va después de RequireAuth. No es un 403: avisa y vuelve al dashboard.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := middleware.GetPrincipal(r.Context())
		if !ok || !p.IsAdmin() {
			web.RedirectWithFlash(w, r, "/dashboard", web.FlashDanger, "Admin access only.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func indexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetPrincipal(r.Context()); ok {
			web.Redirect(w, r, "/dashboard")
			return
		}
		web.Redirect(w, r, "/login")
	}
}

type dashboardView struct {
	Pets             []pets.PetResponse                 `json:"pets"`
	Appointments     []appointments.AppointmentResponse `json:"appointments"`
	AdoptionRequests []adoptions.RequestResponse        `json:"adoption_requests"`
}

// dashboardHandler godoc
// @Summary  Session user's pets, appointments and adoption requests
// @Tags     views
// @Produce  json
// @Success  200
// @Router   /dashboard [get]
func dashboardHandler(src Sources, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.GetPrincipal(r.Context())
		ctx := r.Context()

		myPets, err := src.Pets.ListByOwner(ctx, p.UserID)
		if err != nil {
			env.InternalError(w, r, "dashboard pets failed", err)
			return
		}
		appts, err := src.Appointments.ListFor(ctx, p)
		if err != nil {
			env.InternalError(w, r, "dashboard appointments failed", err)
			return
		}
		reqs, err := src.Adoptions.ListByRequester(ctx, p.UserID)
		if err != nil {
			env.InternalError(w, r, "dashboard adoption requests failed", err)
			return
		}

		env.Render(w, r, http.StatusOK, "dashboard", &p, dashboardView{
			Pets:             pets.ToResponses(myPets),
			Appointments:     appointments.ToResponses(appts),
			AdoptionRequests: adoptions.ToResponses(reqs),
		})
	}
}

type adminView struct {
	Users        []users.UserResponse               `json:"users"`
	Pets         []pets.PetResponse                 `json:"pets"`
	Adoptions    []adoptions.RequestResponse        `json:"adoptions"`
	Matings      []matings.RequestResponse          `json:"matings"`
	Appointments []appointments.AppointmentResponse `json:"appointments"`
}

// adminHandler godoc
// @Summary  Full dump of every entity (admin only)
// @Tags     views
// @Produce  json
// @Success  200
// @Router   /admin [get]
func adminHandler(src Sources, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.GetPrincipal(r.Context())
		ctx := r.Context()

		allUsers, err := src.Users.List(ctx)
		if err != nil {
			env.InternalError(w, r, "admin users failed", err)
			return
		}
		allPets, err := src.Pets.ListAll(ctx)
		if err != nil {
			env.InternalError(w, r, "admin pets failed", err)
			return
		}
		adopts, err := src.Adoptions.ListAll(ctx)
		if err != nil {
			env.InternalError(w, r, "admin adoptions failed", err)
			return
		}
		mates, err := src.Matings.ListAll(ctx)
		if err != nil {
			env.InternalError(w, r, "admin matings failed", err)
			return
		}
		appts, err := src.Appointments.ListAll(ctx)
		if err != nil {
			env.InternalError(w, r, "admin appointments failed", err)
			return
		}

		env.Render(w, r, http.StatusOK, "admin_dashboard", &p, adminView{
			Users:        users.ToResponses(allUsers),
			Pets:         pets.ToResponses(allPets),
			Adoptions:    adoptions.ToResponses(adopts),
			Matings:      matings.ToResponses(mates),
			Appointments: appointments.ToResponses(appts),
		})
	}
}
