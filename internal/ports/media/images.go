package media

import (
	"context"
	"errors"
	"io"
)

// ImageStore persiste imágenes de mascotas por nombre de archivo.
// Un nombre repetido sobreescribe el anterior.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
}

// ImageOpener es opcional: stores que pueden servir el archivo de vuelta.
type ImageOpener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// ErrNotFound: Open con un nombre que el store no tiene.
var ErrNotFound = errors.New("image not found")
