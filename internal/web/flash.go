package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"sync"
)

const flashCookie = "pethub_flash"

// Categorías usadas en la UI.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type flashBag struct {
	mu    sync.Mutex
	items []Flash
}

type ctxKey string

const flashKey ctxKey = "flashes"

// Flashes carga los flashes pendientes de la cookie al contexto del request.
// Se consumen al renderizar una vista; un redirect los vuelve a guardar en la cookie.
func Flashes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bag := &flashBag{items: readFlashCookie(r)}
		ctx := context.WithValue(r.Context(), flashKey, bag)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AddFlash agrega un mensaje para el próximo render.
func AddFlash(r *http.Request, category, message string) {
	bag := bagFrom(r)
	if bag == nil {
		return
	}
	bag.mu.Lock()
	defer bag.mu.Unlock()
	bag.items = append(bag.items, Flash{Category: category, Message: message})
}

// takeFlashes vacía el bag (y la cookie).
func takeFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	bag := bagFrom(r)
	if bag == nil {
		return []Flash{}
	}
	bag.mu.Lock()
	items := bag.items
	bag.items = nil
	bag.mu.Unlock()

	if _, err := r.Cookie(flashCookie); err == nil {
		clearFlashCookie(w)
	}
	if items == nil {
		return []Flash{}
	}
	return items
}

func persistFlashes(w http.ResponseWriter, r *http.Request) {
	bag := bagFrom(r)
	if bag == nil {
		return
	}
	bag.mu.Lock()
	items := bag.items
	bag.mu.Unlock()

	if len(items) == 0 {
		if _, err := r.Cookie(flashCookie); err == nil {
			clearFlashCookie(w)
		}
		return
	}

	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func bagFrom(r *http.Request) *flashBag {
	bag, _ := r.Context().Value(flashKey).(*flashBag)
	return bag
}

func readFlashCookie(r *http.Request) []Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var items []Flash
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func clearFlashCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
