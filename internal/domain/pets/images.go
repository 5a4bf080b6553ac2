package pets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"pet-hub/internal/ports/media"

	"golang.org/x/text/unicode/norm"
)

var ErrImageRejected = errors.New("image rejected")

// AllowedImageExtensions se comparan en minúsculas y sin punto.
var AllowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// AllowedImage mira la extensión del nombre original (case-insensitive).
func AllowedImage(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	_, ok := AllowedImageExtensions[strings.ToLower(filename[i+1:])]
	return ok
}

// SanitizeFilename deja un nombre plano y ASCII, apto para el image store:
// NFKD, descarta no-ASCII, separadores => espacio, espacios => "_",
// quita todo fuera de [A-Za-z0-9_.-] y recorta "._" en los bordes.
func SanitizeFilename(name string) string {
	name = norm.NFKD.String(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	name = strings.ReplaceAll(b.String(), "/", " ")

	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// ImageUploader valida y guarda la imagen de una mascota.
type ImageUploader struct {
	store media.ImageStore
}

func NewImageUploader(store media.ImageStore) *ImageUploader {
	return &ImageUploader{store: store}
}

// Save devuelve el nombre guardado. Cualquier error significa "sin imagen";
// el alta de la mascota sigue igual.
func (u *ImageUploader) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if u == nil || u.store == nil {
		return "", fmt.Errorf("%w: no image store configured", ErrImageRejected)
	}
	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("%w: empty filename", ErrImageRejected)
	}
	if !AllowedImage(filename) {
		return "", fmt.Errorf("%w: extension not allowed: %q", ErrImageRejected, filename)
	}

	safe := SanitizeFilename(filename)
	if safe == "" {
		return "", fmt.Errorf("%w: unusable filename %q", ErrImageRejected, filename)
	}

	if err := u.store.Save(ctx, safe, r); err != nil {
		return "", fmt.Errorf("save image %q: %w", safe, err)
	}
	return safe, nil
}
