package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestResolverColor(t *testing.T) {
	r := NewResolver(Default(), Options{})

	tests := []struct {
		name   string
		token  string
		want   string
		wantOK bool
	}{
		{name: "literal hex", token: "#112233", want: "#112233", wantOK: true},
		{name: "literal function", token: "rgb(1,2,3)", want: "rgb(1,2,3)", wantOK: true},
		{name: "transparent", token: "transparent", want: "transparent", wantOK: true},
		{name: "current", token: "current", want: "currentColor", wantOK: true},
		{name: "black", token: "black", want: "#000000", wantOK: true},
		{name: "palette", token: "blue-500", want: "#3b82f6", wantOK: true},
		{name: "unknown shade", token: "blue-550", want: "blue-550", wantOK: false},
		{name: "not a color", token: "lg", want: "lg", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Color(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolverColorFormats(t *testing.T) {
	rgb := NewResolver(Default(), Options{Format: FormatRGB})
	got, _ := rgb.Color("blue-500")
	assert.Equal(t, "rgb(59 130 246)", got)

	vars := NewResolver(Default(), Options{CSSVariables: true})
	got, _ = vars.Color("red-500")
	assert.Equal(t, "var(--color-red-500, #ef4444)", got)

	alpha, ok := NewResolver(Default(), Options{}).ColorAlpha("blue-500", 0.5)
	require.True(t, ok)
	assert.Equal(t, "rgb(59 130 246 / 0.5)", alpha)
}

func TestResolverOKLCHPreset(t *testing.T) {
	p := Default()
	p.Colors["brand"] = map[string]string{"DEFAULT": "oklch(62.8% 0.2577 29.23)"}

	hex, ok := NewResolver(p, Options{}).Color("brand")
	require.True(t, ok)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, hex)

	kept, _ := NewResolver(p, Options{UseOKLCH: true}).Color("brand")
	assert.Equal(t, "oklch(62.8% 0.2577 29.23)", kept)
}

func TestResolverSpacing(t *testing.T) {
	r := NewResolver(Default(), Options{})

	tests := []struct {
		key    string
		wantPx float64
		wantOK bool
	}{
		{"4", 16, true},
		{"px", 1, true},
		{"0.5", 2, true},
		{"13", 52, true},
		{"2.25", 9, true},
		{"2.3", 0, false},
		{"lg", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			px, ok := r.Spacing(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantPx, px, 0.0001)
		})
	}

	css, ok := r.SpacingCSS("13")
	require.True(t, ok)
	assert.Equal(t, "3.25rem", css)

	key, ok := r.SpacingKey(16)
	require.True(t, ok)
	assert.Equal(t, "4", key)
}

func TestResolverReverseLookups(t *testing.T) {
	r := NewResolver(Default(), Options{})

	name, ok := r.ColorName(RGBA{R: 59.0 / 255, G: 130.0 / 255, B: 246.0 / 255, A: 1})
	require.True(t, ok)
	assert.Equal(t, "blue-500", name)

	nearest, dist := r.NearestColorName(RGBA{R: 60.0 / 255, G: 130.0 / 255, B: 246.0 / 255, A: 1})
	assert.Equal(t, "blue-500", nearest)
	assert.Less(t, dist, 1.0)

	shadow, ok := r.ShadowByEffect(10, -3, false)
	require.True(t, ok)
	assert.Equal(t, "lg", shadow)

	radius, ok := r.KeyByPx(ScaleRadius, 8)
	require.True(t, ok)
	assert.Equal(t, "lg", radius)
}

func TestResolverToleratesMissingTables(t *testing.T) {
	r := NewResolver(&Preset{}, Options{})
	assert.Equal(t, "lg", r.Resolve(ScaleRadius, "lg"))
	_, ok := r.Color("blue-500")
	assert.False(t, ok)
}

func TestParseLength(t *testing.T) {
	px, ok := ParseLength("1.5rem", 16)
	require.True(t, ok)
	assert.Equal(t, 24.0, px)

	_, ok = ParseLength("50%", 16)
	assert.False(t, ok)
}

func TestScreenNamesOrdered(t *testing.T) {
	assert.Equal(t, []string{"sm", "md", "lg", "xl", "2xl"}, Default().ScreenNames())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "brand.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: brand\ncolors:\n  brand:\n    \"500\": \"#123456\"\n"), 0o644))
	p, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "brand", p.Name)
	assert.Equal(t, "#123456", p.Colors["brand"]["500"])
	assert.Equal(t, "#3b82f6", p.Colors["blue"]["500"], "defaults are kept")

	jsonPath := filepath.Join(dir, "brand.jsonc")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
  // screens override
  "screens": {"tablet": "900px"},
}`), 0o644))
	p, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "900px", p.Screens["tablet"])
}

func TestLoadFileReportsEveryProblem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  x:\n    \"1\": nope\nscreens:\n  big: wide\n"), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(unwrapAll(err)), 2)
}

func unwrapAll(err error) error {
	type unwrapper interface{ Unwrap() error }
	for {
		u, ok := err.(unwrapper)
		if !ok {
			return err
		}
		err = u.Unwrap()
	}
}
