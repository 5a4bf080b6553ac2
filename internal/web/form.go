package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var ErrFormTooLarge = errors.New("form too large")

// MaxFormBytes es el límite para formularios sin archivos.
const MaxFormBytes int64 = 1 << 20

// ParseForm acepta urlencoded y multipart. maxBytes limita el body completo.
func ParseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	err := r.ParseMultipartForm(32 << 20)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return ErrFormTooLarge
		}
		return err
	}
	return nil
}

// Checkbox: presencia de la key = true, ausencia = false.
func Checkbox(r *http.Request, key string) bool {
	_, ok := r.PostForm[key]
	return ok
}

// FormString devuelve el valor recortado.
func FormString(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

// FormInt64 exige un entero; vacío o inválido => error.
func FormInt64(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(r.PostFormValue(key)), 10, 64)
}
