package matings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-hub/internal/middleware"
	"pet-hub/internal/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, env web.Env) {
	r.With(middleware.RequireAuth).Post("/mating/request/{petID:[0-9]+}", createRequestHandler(svc, env))
}

type RequestResponse struct {
	ID             int64     `json:"id"`
	PetID          int64     `json:"pet_id"`
	RequesterPetID int64     `json:"requester_pet_id"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:             req.ID,
		PetID:          req.PetID,
		RequesterPetID: req.RequesterPetID,
		Status:         req.Status,
		CreatedAt:      req.CreatedAt,
	}
}

func ToResponses(items []Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ToResponse(it))
	}
	return out
}

// createRequestHandler godoc
// @Summary  Propose a mating between two pets
// @Tags     requests
// @Accept   x-www-form-urlencoded
// @Param    petID            path     int true "Offered pet id"
// @Param    requester_pet_id formData int true "Proposing pet id"
// @Success  303
// @Router   /mating/request/{petID} [post]
func createRequestHandler(svc *Service, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			web.RedirectWithFlash(w, r, "/pets", web.FlashDanger, "Pet not found")
			return
		}
		if err := web.ParseForm(w, r, web.MaxFormBytes); err != nil {
			web.RedirectWithFlash(w, r, "/pets", web.FlashDanger, "Invalid form submission")
			return
		}

		requesterPetID, err := web.FormInt64(r, "requester_pet_id")
		if err != nil {
			web.RedirectWithFlash(w, r, "/pets", web.FlashDanger, "Choose one of your pets to propose")
			return
		}

		req, err := svc.Create(r.Context(), petID, requesterPetID)
		if err != nil {
			if errors.Is(err, ErrInvalidReference) || errors.Is(err, ErrInvalidInput) {
				web.RedirectWithFlash(w, r, "/pets", web.FlashDanger, "Pet not found")
				return
			}
			env.InternalError(w, r, "create mating request failed", err)
			return
		}

		env.Metrics.RequestCreated("mating")
		env.Logger().Info("mating requested", map[string]any{
			"mating_id":        req.ID,
			"pet_id":           req.PetID,
			"requester_pet_id": req.RequesterPetID,
		})
		web.RedirectWithFlash(w, r, "/pets", web.FlashSuccess, "Mating request submitted")
	}
}
