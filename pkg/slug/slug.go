// Package slug deriva identificadores URL-safe a partir de nombres visibles.
//
// Make es puro: minúsculas ASCII, letras y dígitos, palabras unidas por "-".
// Los acentos se translitera ("Café" -> "cafe") y el resto de símbolos se descarta
// sin actuar como separador ("Home & Garden" -> "home-garden").
package slug

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxAttempts límite de sufijos probados antes de rendirse.
	MaxAttempts = 1000
	// MaxLength longitud máxima del slug base; deja lugar al sufijo "-N" dentro de VARCHAR(120).
	MaxLength = 100
)

// ErrExhausted no se encontró un slug libre dentro de MaxAttempts.
var ErrExhausted = errors.New("slug: sin valores disponibles")

// ExistsFunc indica si un slug ya está ocupado en el espacio de nombres de la entidad.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Make convierte name en su slug base de a lo sumo MaxLength caracteres.
// Puede devolver "" si name no contiene letras ni dígitos.
func Make(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, name)
	if err != nil {
		ascii = name
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingSep && b.Len() > 0 {
				if b.Len()+2 > MaxLength {
					return b.String()
				}
				b.WriteByte('-')
			}
			if b.Len() >= MaxLength {
				return b.String()
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		}
	}
	return b.String()
}

// Unique devuelve Make(name) o, si ya existe, la primera variante libre "<base>-2", "<base>-3", ...
// fallback se usa como base cuando name no produce ningún carácter válido.
func Unique(ctx context.Context, name, fallback string, exists ExistsFunc) (string, error) {
	base := Make(name)
	if base == "" {
		base = fallback
	}

	candidate := base
	for i := 2; i <= MaxAttempts+1; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("slug: verificar %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrExhausted
}
