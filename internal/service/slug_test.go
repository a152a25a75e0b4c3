package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Miracle", "miracle"},
		{"spaces and symbols", "Café Miracle S.A.", "cafe-miracle-s-a"},
		{"diacritics", "Peluquería Ñoño", "peluqueria-nono"},
		{"symbol runs collapse", "Tienda!!!  ***  Online", "tienda-online"},
		{"leading and trailing junk", "  --Mi Tienda--  ", "mi-tienda"},
		{"empty falls back", "", "tienda"},
		{"only symbols falls back", "!!!", "tienda"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	long := strings.Repeat("tienda ", 30)
	slug := Slugify(long)

	require.LessOrEqual(t, len(slug), 60)
	require.NotEqual(t, "-", slug[len(slug)-1:])
}
