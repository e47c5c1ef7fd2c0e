package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
	"github.com/easylogic/cssma/internal/utility"
)

func newTestAggregator(cfg Config) *Aggregator {
	r := theme.NewResolver(theme.Default(), theme.Options{})
	return New(utility.NewRegistry(r, utility.Options{}), cfg, nil)
}

func TestFlexLayoutScenario(t *testing.T) {
	res := newTestAggregator(DefaultConfig()).Aggregate("flex-col items-center justify-between gap-4")
	require.Empty(t, res.Diagnostics)

	assert.Equal(t, map[string]style.Value{
		"display":        style.Text("flex"),
		"flexDirection":  style.Text("column"),
		"alignItems":     style.Text("center"),
		"justifyContent": style.Text("space-between"),
	}, res.Base.Category(style.FlexboxGrid))
	assert.Equal(t, map[string]style.Value{"gap": style.Num(16)}, res.Base.Category(style.Spacing))
}

func TestLastWinsPerSide(t *testing.T) {
	tests := []struct {
		name    string
		classes string
		want    map[string]style.Value
		cat     style.Category
	}{
		{
			name:    "padding side overrides shorthand",
			classes: "p-4 pt-2",
			cat:     style.Spacing,
			want: map[string]style.Value{
				"paddingTop": style.Num(8), "paddingRight": style.Num(16),
				"paddingBottom": style.Num(16), "paddingLeft": style.Num(16),
			},
		},
		{
			name:    "shorthand after side overrides everything",
			classes: "pt-2 p-4",
			cat:     style.Spacing,
			want: map[string]style.Value{
				"paddingTop": style.Num(16), "paddingRight": style.Num(16),
				"paddingBottom": style.Num(16), "paddingLeft": style.Num(16),
			},
		},
		{
			name:    "axis only touches its pair",
			classes: "m-2 mx-auto",
			cat:     style.Spacing,
			want: map[string]style.Value{
				"marginTop": style.Num(8), "marginBottom": style.Num(8),
				"marginLeft": style.Text("auto"), "marginRight": style.Text("auto"),
			},
		},
		{
			name:    "border width",
			classes: "border border-t-4",
			cat:     style.Borders,
			want: map[string]style.Value{
				"borderTopWidth": style.Num(4), "borderRightWidth": style.Num(1),
				"borderBottomWidth": style.Num(1), "borderLeftWidth": style.Num(1),
			},
		},
		{
			name:    "corner radius",
			classes: "rounded-lg rounded-tl-none",
			cat:     style.Borders,
			want: map[string]style.Value{
				"borderTopLeftRadius": style.Num(0), "borderTopRightRadius": style.Num(8),
				"borderBottomRightRadius": style.Num(8), "borderBottomLeftRadius": style.Num(8),
			},
		},
	}

	a := newTestAggregator(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Aggregate(tt.classes)
			assert.Equal(t, tt.want, res.Base.Category(tt.cat))
		})
	}
}

func TestUnknownClassIsNoOp(t *testing.T) {
	a := newTestAggregator(DefaultConfig())

	withBogus := a.AggregateTokens([]string{"totally-bogus-class", "flex"})
	alone := a.AggregateTokens([]string{"flex"})

	assert.True(t, withBogus.Base.Equal(alone.Base))
	require.Len(t, withBogus.Diagnostics, 1)
	assert.Equal(t, "totally-bogus-class", withBogus.Diagnostics[0].Class)
	assert.Equal(t, ReasonUnrecognized, withBogus.Diagnostics[0].Reason)
}

func TestUnknownModifierSkipsWholeClass(t *testing.T) {
	res := newTestAggregator(DefaultConfig()).Aggregate("wat:p-4 m-2")

	assert.False(t, res.Base.Has("paddingTop"))
	assert.Empty(t, res.Variants)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, ReasonUnknownModifier, res.Diagnostics[0].Reason)
}

func TestIdempotent(t *testing.T) {
	a := newTestAggregator(DefaultConfig())
	classes := "p-4 pt-2 bg-blue-500 hover:bg-blue-600 blur-sm brightness-150 md:w-1/2"

	first := a.Aggregate(classes)
	second := a.Aggregate(classes)

	assert.True(t, first.Base.Equal(second.Base))
	assert.Equal(t, first.VariantKeys(), second.VariantKeys())
	for _, key := range first.VariantKeys() {
		assert.True(t, first.Variants[key].Document.Equal(second.Variants[key].Document), key)
	}
}

func TestArbitraryColorBypassesPalette(t *testing.T) {
	res := newTestAggregator(DefaultConfig()).Aggregate("bg-[#112233]")
	assert.Equal(t, "#112233", res.Base.Text("backgroundColor"))
}

func TestFilterChainAccumulates(t *testing.T) {
	res := newTestAggregator(DefaultConfig()).Aggregate("blur-sm brightness-150 blur-lg")
	assert.Equal(t, "blur(16px) brightness(1.5)", res.Base.Text("filter"))
}

func TestVariantBuckets(t *testing.T) {
	res := newTestAggregator(DefaultConfig()).Aggregate("rounded hover:md:rounded-lg md:hover:p-2 dark:text-white")

	assert.Equal(t, []string{"md:hover", "dark"}, res.VariantKeys())
	doc, ok := res.Document("md:hover")
	require.True(t, ok)
	assert.Equal(t, style.Num(8), mustGet(t, doc, "borderTopLeftRadius"))
	assert.Equal(t, style.Num(8), mustGet(t, doc, "paddingTop"))
	assert.Equal(t, style.Num(4), mustGet(t, res.Base, "borderTopLeftRadius"))

	_, ok = res.Document("print")
	assert.False(t, ok)
}

func TestFeatureGates(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		class  string
		reason Reason
	}{
		{"arbitrary value", Config{EnableStateModifiers: true, EnableResponsiveModifiers: true}, "p-[3px]", ReasonArbitraryValue},
		{"arbitrary property", Config{EnableStateModifiers: true, EnableResponsiveModifiers: true}, "[mask-type:alpha]", ReasonArbitraryValue},
		{"arbitrary selector", Config{EnableStateModifiers: true, EnableResponsiveModifiers: true}, "[&>*]:p-2", ReasonArbitraryValue},
		{"state", Config{EnableArbitraryValues: true, EnableResponsiveModifiers: true}, "hover:p-2", ReasonStateModifier},
		{"responsive", Config{EnableArbitraryValues: true, EnableStateModifiers: true}, "md:p-2", ReasonResponsiveModifier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestAggregator(tt.cfg).Aggregate(tt.class)
			require.Len(t, res.Diagnostics, 1)
			assert.Equal(t, tt.reason, res.Diagnostics[0].Reason)
			assert.Empty(t, res.Applied)
		})
	}

	// Environment variants stay available when state modifiers are off.
	res := newTestAggregator(Config{}).Aggregate("dark:p-2")
	assert.Empty(t, res.Diagnostics)
	assert.Len(t, res.Applied, 1)
}

func TestAppliedKeepsOutputs(t *testing.T) {
	res := newTestAggregator(DefaultConfig()).Aggregate("md:p-4 bogus")
	require.Len(t, res.Applied, 1)
	ap := res.Applied[0]
	assert.Equal(t, "md", ap.Variant)
	assert.Equal(t, "md:p-4", ap.Class.Original)
	assert.Equal(t, []utility.Declaration{{Property: "padding", Value: "1rem"}}, ap.Output.Decls)
}

func TestMerge(t *testing.T) {
	a := newTestAggregator(DefaultConfig())
	merged := Merge(a.Aggregate("p-4 hover:bg-red-500"), a.Aggregate("pt-2 hover:bg-blue-500 [--x:1]"))

	assert.Equal(t, style.Num(8), mustGet(t, merged.Base, "paddingTop"))
	assert.Equal(t, style.Num(16), mustGet(t, merged.Base, "paddingLeft"))
	assert.Equal(t, "1", merged.Base.Text("--x"))
	doc, ok := merged.Document("hover")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", doc.Text("backgroundColor"))
	assert.Len(t, merged.Applied, 5)
}

func mustGet(t *testing.T, d *style.Document, key string) style.Value {
	t.Helper()
	v, ok := d.Get(key)
	require.True(t, ok, key)
	return v
}
