package pets

import (
	"errors"
	"io"
	"math"
	"mime"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	"pet-hub/internal/middleware"
	"pet-hub/internal/ports/media"
	"pet-hub/internal/web"

	"github.com/go-chi/chi/v5"
)

// Uploads agrupa lo necesario para recibir y servir imágenes.
type Uploads struct {
	Uploader *ImageUploader
	Opener   media.ImageOpener // nil => GET /images/{name} responde 404
	MaxBytes int64
}

func RegisterRoutes(r chi.Router, svc *Service, up Uploads, env web.Env) {
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth)
		pr.Get("/pets", listPetsHandler(svc, env))
		pr.Post("/pets/add", createPetHandler(svc, up, env))
	})

	r.Get("/images/{name}", imageHandler(up.Opener, env))
}

// PetResponse es la forma en que las vistas reciben una mascota.
type PetResponse struct {
	ID                int64    `json:"id"`
	OwnerID           int64    `json:"owner_id"`
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Breed             string   `json:"breed,omitempty"`
	Age               int      `json:"age"`
	Gender            string   `json:"gender,omitempty"`
	Color             string   `json:"color,omitempty"`
	WeightKg          *float64 `json:"weight_kg"`
	City              string   `json:"city,omitempty"`
	Address           string   `json:"address,omitempty"`
	Image             *string  `json:"image"`
	IsForAdoption     bool     `json:"is_for_adoption"`
	IsForMating       bool     `json:"is_for_mating"`
	Vaccinated        bool     `json:"vaccinated"`
	Dewormed          bool     `json:"dewormed"`
	PedigreeCertified bool     `json:"pedigree_certified"`
	Neutered          bool     `json:"neutered"`
	Temperament       string   `json:"temperament,omitempty"`
	HealthNotes       string   `json:"health_notes,omitempty"`
}

func ToResponse(p Pet) PetResponse {
	out := PetResponse{
		ID:                p.ID,
		OwnerID:           p.OwnerID,
		Name:              p.Name,
		Species:           p.Species,
		Breed:             p.Breed,
		Age:               p.Age,
		Gender:            p.Gender,
		Color:             p.Color,
		City:              p.City,
		Address:           p.Address,
		IsForAdoption:     p.IsForAdoption,
		IsForMating:       p.IsForMating,
		Vaccinated:        p.Vaccinated,
		Dewormed:          p.Dewormed,
		PedigreeCertified: p.PedigreeCertified,
		Neutered:          p.Neutered,
		Temperament:       p.Temperament,
		HealthNotes:       p.HealthNotes,
	}
	if p.WeightKg > 0 {
		w := p.WeightKg
		out.WeightKg = &w
	}
	if p.Image != "" {
		img := p.Image
		out.Image = &img
	}
	return out
}

func ToResponses(items []Pet) []PetResponse {
	out := make([]PetResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}

type petsView struct {
	AllPets []PetResponse `json:"all_pets"`
	MyPets  []PetResponse `json:"my_pets"`
}

// listPetsHandler godoc
// @Summary  List pets
// @Tags     pets
// @Produce  json
// @Success  200
// @Router   /pets [get]
func listPetsHandler(svc *Service, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.GetPrincipal(r.Context())

		all, err := svc.ListAll(r.Context())
		if err != nil {
			env.InternalError(w, r, "list pets failed", err)
			return
		}

		mine := make([]Pet, 0)
		for _, pet := range all {
			if pet.OwnerID == p.UserID {
				mine = append(mine, pet)
			}
		}

		env.Render(w, r, http.StatusOK, "pets", &p, petsView{
			AllPets: ToResponses(all),
			MyPets:  ToResponses(mine),
		})
	}
}

// createPetHandler godoc
// @Summary  Add a pet owned by the session user
// @Tags     pets
// @Accept   multipart/form-data
// @Param    name            formData string true  "Name"
// @Param    species         formData string true  "Species"
// @Param    age             formData int    false "Age in years, empty means 0"
// @Param    weight_kg       formData number false "Weight in kg"
// @Param    is_for_adoption formData bool   false "Checkbox"
// @Param    is_for_mating   formData bool   false "Checkbox"
// @Param    image           formData file   false "png, jpg, jpeg or gif"
// @Success  303
// @Router   /pets/add [post]
func createPetHandler(svc *Service, up Uploads, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middleware.GetPrincipal(r.Context())

		if err := web.ParseForm(w, r, up.MaxBytes); err != nil {
			msg := "Invalid form submission"
			if errors.Is(err, web.ErrFormTooLarge) {
				msg = "Upload too large"
			}
			web.RedirectWithFlash(w, r, "/dashboard", web.FlashDanger, msg)
			return
		}

		age, err := parseAge(r.PostFormValue("age"))
		if err != nil {
			web.RedirectWithFlash(w, r, "/dashboard", web.FlashDanger, "Age must be a whole number")
			return
		}
		weight, err := parseWeight(r.PostFormValue("weight_kg"))
		if err != nil {
			web.RedirectWithFlash(w, r, "/dashboard", web.FlashDanger, "Weight must be a positive number")
			return
		}

		in := CreateInput{
			Name:              web.FormString(r, "name"),
			Species:           web.FormString(r, "species"),
			Breed:             web.FormString(r, "breed"),
			Age:               age,
			Gender:            web.FormString(r, "gender"),
			Color:             web.FormString(r, "color"),
			WeightKg:          weight,
			City:              web.FormString(r, "city"),
			Address:           web.FormString(r, "address"),
			IsForAdoption:     web.Checkbox(r, "is_for_adoption"),
			IsForMating:       web.Checkbox(r, "is_for_mating"),
			Vaccinated:        web.Checkbox(r, "vaccinated"),
			Dewormed:          web.Checkbox(r, "dewormed"),
			PedigreeCertified: web.Checkbox(r, "pedigree_certified"),
			Neutered:          web.Checkbox(r, "neutered"),
			Temperament:       web.FormString(r, "temperament"),
			HealthNotes:       web.FormString(r, "health_notes"),
		}
		if in.Name == "" || in.Species == "" {
			web.RedirectWithFlash(w, r, "/dashboard", web.FlashDanger, "Name and species are required")
			return
		}

		in.Image = saveImage(r, up, env)

		pet, err := svc.Create(r.Context(), p.UserID, in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.RedirectWithFlash(w, r, "/dashboard", web.FlashDanger, "Invalid pet data")
				return
			}
			env.InternalError(w, r, "create pet failed", err)
			return
		}

		env.Metrics.PetCreated()
		env.Logger().Info("pet created", map[string]any{
			"pet_id":   pet.ID,
			"owner_id": pet.OwnerID,
			"image":    pet.Image,
		})
		web.RedirectWithFlash(w, r, "/dashboard", web.FlashSuccess, "Pet added successfully")
	}
}

// saveImage nunca corta el alta: cualquier problema => sin imagen.
func saveImage(r *http.Request, up Uploads, env web.Env) string {
	file, header, err := r.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
			env.Logger().Warn("image upload unreadable", map[string]any{"err": err})
		}
		return ""
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	name, err := up.Uploader.Save(r.Context(), header.Filename, file)
	if err != nil {
		env.Logger().Warn("image upload skipped", map[string]any{
			"filename": header.Filename,
			"err":      err,
		})
		return ""
	}
	return name
}

// parseAge: vacío => 0; no entero, negativo o fuera de int32 => error.
func parseAge(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrInvalidInput
	}
	return int(n), nil
}

// parseWeight: vacío => 0 (sin dato).
func parseWeight(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidInput
	}
	return f, nil
}

func imageHandler(opener media.ImageOpener, env web.Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if opener == nil || name == "" || SanitizeFilename(name) != name {
			http.NotFound(w, r)
			return
		}

		rc, err := opener.Open(r.Context(), name)
		if err != nil {
			if errors.Is(err, media.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			env.InternalError(w, r, "open image failed", err)
			return
		}
		defer func() { _ = rc.Close() }()

		if ct := mime.TypeByExtension(strings.ToLower(path.Ext(name))); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		if _, err := io.Copy(w, rc); err != nil {
			env.Logger().Warn("image write interrupted", map[string]any{"name": name, "err": err})
		}
	}
}
