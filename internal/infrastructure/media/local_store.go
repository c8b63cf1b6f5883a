// Package media guarda los binarios de imágenes de producto en disco.
package media

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore almacena archivos bajo Root; las rutas devueltas son relativas y usan "/".
type LocalStore struct {
	root   string
	prefix string
}

// NewLocalStore construye el almacén. urlPrefix es MEDIA_URL (termina en "/").
func NewLocalStore(root, urlPrefix string) *LocalStore {
	return &LocalStore{root: root, prefix: urlPrefix}
}

// Root directorio base en disco.
func (s *LocalStore) Root() string { return s.root }

// Save escribe data en <root>/<dir>/<name><ext> y devuelve la ruta relativa.
// Con name vacío se usa un uuid; con name fijo el archivo existente se reemplaza.
func (s *LocalStore) Save(ctx context.Context, dir, name, ext string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.Contains(dir, "..") {
		return "", fmt.Errorf("media: directorio inválido %q", dir)
	}
	if name == "" {
		name = uuid.New().String()
	} else if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("media: nombre inválido %q", name)
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	rel := path.Join(dir, name+strings.ToLower(ext))
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("media: crear directorio: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("media: escribir %s: %w", rel, err)
	}
	return rel, nil
}

// URL ruta pública de un archivo guardado. Vacío si rel es vacío.
func (s *LocalStore) URL(rel string) string {
	if rel == "" {
		return ""
	}
	return s.prefix + strings.TrimPrefix(rel, "/")
}
