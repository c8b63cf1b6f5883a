package slug_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Test Electronics":           "test-electronics",
		"Home & Garden":              "home-garden",
		"  Smartphone X1  ":          "smartphone-x1",
		"Classic T-Shirt":            "classic-t-shirt",
		"Café Crème":                 "cafe-creme",
		"Python  Programming__Guide": "python-programming-guide",
		"100% Cotton!":               "100-cotton",
		"---":                        "",
		"":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), "Make(%q)", in)
	}
}

func TestMake_Determinista(t *testing.T) {
	assert.Equal(t, slug.Make("LED Desk Lamp"), slug.Make("LED Desk Lamp"))
}

func setExists(taken ...string) slug.ExistsFunc {
	set := make(map[string]bool, len(taken))
	for _, s := range taken {
		set[s] = true
	}
	return func(_ context.Context, s string) (bool, error) { return set[s], nil }
}

func TestUnique_SinColision(t *testing.T) {
	s, err := slug.Unique(context.Background(), "Test Electronics", "category", setExists())
	require.NoError(t, err)
	assert.Equal(t, "test-electronics", s)
}

func TestUnique_AgregaSufijoNumerico(t *testing.T) {
	s, err := slug.Unique(context.Background(), "Test Electronics", "category",
		setExists("test-electronics", "test-electronics-2"))
	require.NoError(t, err)
	assert.Equal(t, "test-electronics-3", s)
}

func TestUnique_UsaFallbackSiNombreVacio(t *testing.T) {
	s, err := slug.Unique(context.Background(), "!!!", "product", setExists("product"))
	require.NoError(t, err)
	assert.Equal(t, "product-2", s)
}

func TestUnique_PropagaErrorDeAlmacenamiento(t *testing.T) {
	boom := errors.New("db caída")
	_, err := slug.Unique(context.Background(), "x", "x", func(context.Context, string) (bool, error) {
		return false, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestUnique_Agotado(t *testing.T) {
	_, err := slug.Unique(context.Background(), "x", "x", func(context.Context, string) (bool, error) {
		return true, nil
	})
	assert.ErrorIs(t, err, slug.ErrExhausted)
}

func TestMake_RecortaAMaxLength(t *testing.T) {
	ligatures := strings.Repeat("ﬃ", 100)
	s := slug.Make(ligatures)
	assert.Len(t, s, slug.MaxLength)
	assert.Equal(t, strings.Repeat("ffi", 34)[:slug.MaxLength], s)

	words := strings.Repeat("abcd ", 40)
	s = slug.Make(words)
	assert.LessOrEqual(t, len(s), slug.MaxLength)
	assert.False(t, strings.HasSuffix(s, "-"), "no debe terminar en separador: %q", s)
}

func TestUnique_SufijoSobreSlugRecortado(t *testing.T) {
	name := strings.Repeat("x", 150)
	base := strings.Repeat("x", slug.MaxLength)

	s, err := slug.Unique(context.Background(), name, "category", setExists(base))
	require.NoError(t, err)
	assert.Equal(t, base+"-2", s)
	assert.LessOrEqual(t, len(s), 120)
}
