package web

import (
	"encoding/json"
	"net/http"
)

// View es el contrato de datos que consume la capa de templates.
type View struct {
	Name    string  `json:"view"`
	Flashes []Flash `json:"flashes"`
	User    any     `json:"user"`
	Data    any     `json:"data"`
}

// Renderer dibuja una vista. El templating vive fuera de este servicio;
// por defecto se expone la vista como JSON.
type Renderer interface {
	Render(w http.ResponseWriter, status int, v View) error
}

type JSONRenderer struct{}

func (JSONRenderer) Render(w http.ResponseWriter, status int, v View) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Render arma la vista con los flashes pendientes y el usuario del request.
func Render(w http.ResponseWriter, r *http.Request, rn Renderer, status int, name string, user any, data any) {
	if rn == nil {
		rn = JSONRenderer{}
	}
	v := View{
		Name:    name,
		Flashes: takeFlashes(w, r),
		User:    user,
		Data:    data,
	}
	if err := rn.Render(w, status, v); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

// Redirect guarda los flashes pendientes y redirige con 303.
func Redirect(w http.ResponseWriter, r *http.Request, to string) {
	persistFlashes(w, r)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// RedirectWithFlash es el atajo más común en los handlers de formularios.
func RedirectWithFlash(w http.ResponseWriter, r *http.Request, to, category, message string) {
	AddFlash(r, category, message)
	Redirect(w, r, to)
}
