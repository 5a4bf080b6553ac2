package adoptions

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
	r.With(middleware.RequireAuth).Post("/adopt/{petID:[0-9]+}", createRequestHandler(svc, env))
}

type RequestResponse struct {
	ID          int64     `json:"id"`
	PetID       int64     `json:"pet_id"`
	RequesterID int64     `json:"requester_id"`
	Message     string    `json:"message"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		PetID:       req.PetID,
		RequesterID: req.RequesterID,
		Message:     req.Message,
		Status:      req.Status,
		CreatedAt:   req.CreatedAt,
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
// @Summary  Request to adopt a pet
// @Tags     requests
// @Accept   x-www-form-urlencoded
// @Param    petID   path     int    true  "Pet id"
// @Param    message formData string false "Message to the owner"
// @Success  303
// @Router   /adopt/{petID} [post]
func createRequestHandler(svc *Service, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.GetPrincipal(r.Context())

		petID, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			web.RedirectWithFlash(w, r, "/pets", web.FlashDanger, "Pet not found")
			return
		}
		if err := web.ParseForm(w, r, web.MaxFormBytes); err != nil {
			web.RedirectWithFlash(w, r, "/pets", web.FlashDanger, "Invalid form submission")
			return
		}

		req, err := svc.Create(r.Context(), p.UserID, petID, r.PostFormValue("message"))
		if err != nil {
			if errors.Is(err, ErrInvalidReference) || errors.Is(err, ErrInvalidInput) {
				web.RedirectWithFlash(w, r, "/pets", web.FlashDanger, "Pet not found")
				return
			}
			env.InternalError(w, r, "create adoption request failed", err)
			return
		}

		env.Metrics.RequestCreated("adoption")
		env.Logger().Info("adoption requested", map[string]any{
			"adoption_id":  req.ID,
			"pet_id":       req.PetID,
			"requester_id": req.RequesterID,
		})
		web.RedirectWithFlash(w, r, "/pets", web.FlashSuccess, "Adoption request submitted")
	}
}
