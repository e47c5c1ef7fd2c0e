package style

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnershipIsDisjoint(t *testing.T) {
	seen := map[string]Category{}
	for _, cat := range Categories {
		for _, key := range Keys(cat) {
			prev, dup := seen[key]
			require.False(t, dup, "key %q owned by %s and %s", key, prev, cat)
			seen[key] = cat
		}
	}
	require.Empty(t, Keys(Arbitrary))
}

func TestDocumentSetRoutesToOwner(t *testing.T) {
	d := NewDocument()
	d.Set("gap", Num(16))
	d.Set("display", Text("flex"))

	assert.True(t, d.HasCategory(Spacing))
	assert.True(t, d.HasCategory(FlexboxGrid))
	assert.Equal(t, map[string]Value{"gap": Num(16)}, d.Category(Spacing))

	v, ok := d.Get("display")
	require.True(t, ok)
	assert.Equal(t, "flex", v.String())
}

func TestDocumentSetUnknownKeyPanics(t *testing.T) {
	d := NewDocument()
	require.Panics(t, func() { d.Set("notAKey", Text("x")) })
}

func TestDocumentSetProperty(t *testing.T) {
	tests := []struct {
		name     string
		property string
		wantCat  Category
		wantKey  string
	}{
		{name: "declared key", property: "mask-type", wantCat: Mask, wantKey: "maskType"},
		{name: "undeclared property", property: "text-shadow", wantCat: Arbitrary, wantKey: "text-shadow"},
		{name: "custom property", property: "--brand", wantCat: Arbitrary, wantKey: "--brand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDocument()
			d.SetProperty(tt.property, Text("v"))
			require.Contains(t, d.Category(tt.wantCat), tt.wantKey)
		})
	}
}

func TestDocumentChain(t *testing.T) {
	d := NewDocument()
	d.Apply(
		Chain("filter", "blur(8px)"),
		Chain("filter", "brightness(1.5)"),
		Chain("filter", "blur(4px)"),
	)
	assert.Equal(t, "blur(4px) brightness(1.5)", d.Text("filter"))
}

func TestDocumentChainLayers(t *testing.T) {
	lg := "drop-shadow(0 10px 8px rgb(0 0 0 / 0.04)) drop-shadow(0 4px 3px rgb(0 0 0 / 0.1))"
	sm := "drop-shadow(0 1px 1px rgb(0 0 0 / 0.05))"

	d := NewDocument()
	d.Apply(Chain("filter", "blur(4px)"), Chain("filter", lg), Chain("filter", "grayscale(100%)"))
	assert.Equal(t, "blur(4px) "+lg+" grayscale(100%)", d.Text("filter"))

	d.Apply(Chain("filter", lg))
	assert.Equal(t, "blur(4px) "+lg+" grayscale(100%)", d.Text("filter"), "re-applying keeps one copy of each layer")

	d.Apply(Chain("filter", sm))
	assert.Equal(t, "blur(4px) "+sm+" grayscale(100%)", d.Text("filter"))
}

func TestDocumentDefault(t *testing.T) {
	d := NewDocument()
	d.Apply(Default("display", Text("flex")))
	assert.Equal(t, "flex", d.Text("display"))

	d = NewDocument()
	d.Apply(Set("display", Text("none")), Default("display", Text("flex")))
	assert.Equal(t, "none", d.Text("display"), "an earlier value wins over an implied one")

	d.Apply(Set("display", Text("grid")))
	assert.Equal(t, "grid", d.Text("display"))
}

func TestDocumentCloneAndEqual(t *testing.T) {
	d := NewDocument()
	d.Apply(Set("paddingTop", Num(8)), Prop("mask-type", Text("alpha")))

	c := d.Clone()
	require.True(t, d.Equal(c))

	c.Set("paddingTop", Num(4))
	assert.False(t, d.Equal(c))
	assert.Equal(t, "8", d.Text("paddingTop"))
}

func TestDocumentMarshalJSON(t *testing.T) {
	d := NewDocument()
	d.Set("gap", Num(16))
	d.Set("display", Text("flex"))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"spacing":{"gap":16},"flexboxGrid":{"display":"flex"}}`, string(b))
}

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		kebab string
		camel string
	}{
		{"background-color", "backgroundColor"},
		{"border-top-left-radius", "borderTopLeftRadius"},
		{"gap", "gap"},
	}

	for _, tt := range tests {
		t.Run(tt.kebab, func(t *testing.T) {
			assert.Equal(t, tt.camel, CamelCase(tt.kebab))
			assert.Equal(t, tt.kebab, KebabCase(tt.camel))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "16", FormatNumber(16))
	assert.Equal(t, "0.5", FormatNumber(0.5))
	assert.Equal(t, "-2.25", FormatNumber(-2.25))
	assert.Equal(t, "0", FormatNumber(-0.00001))
}
