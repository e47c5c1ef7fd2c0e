package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		want  []string
	}{
		{name: "plain", input: "md:hover:p-4", sep: ":", want: []string{"md", "hover", "p-4"}},
		{name: "colon inside brackets", input: "hover:bg-[url(http://x.png)]", sep: ":", want: []string{"hover", "bg-[url(http://x.png)]"}},
		{name: "arbitrary property", input: "[mask-type:luminance]", sep: ":", want: []string{"[mask-type:luminance]"}},
		{name: "arbitrary variant", input: "[&:nth-child(3)]:underline", sep: ":", want: []string{"[&:nth-child(3)]", "underline"}},
		{name: "custom separator", input: "md__p-4", sep: "__", want: []string{"md", "p-4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitTopLevel(tt.input, tt.sep))
		})
	}
}

func TestBracketed(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"[16px]", "16px", true},
		{"[calc(100%-1rem)]", "calc(100%-1rem)", true},
		{"[]", "", false},
		{"[16px", "", false},
		{"[a(b]", "", false},
		{"16px", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Bracketed(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomProperty(t *testing.T) {
	got, ok := CustomProperty("(--brand)")
	require.True(t, ok)
	assert.Equal(t, "--brand", got)

	_, ok = CustomProperty("(brand)")
	assert.False(t, ok)
	_, ok = CustomProperty("(--)")
	assert.False(t, ok)
}

func TestDecodeEncode(t *testing.T) {
	tests := []struct {
		encoded string
		decoded string
	}{
		{"1fr_auto", "1fr auto"},
		{`a\_b`, "a_b"},
		{"url(/my_img.png)", "url(/my_img.png)"},
		{"0_1px_2px_rgb(0,0,0)", "0 1px 2px rgb(0,0,0)"},
	}

	for _, tt := range tests {
		t.Run(tt.encoded, func(t *testing.T) {
			assert.Equal(t, tt.decoded, Decode(tt.encoded))
		})
	}

	assert.Equal(t, "1fr_auto", Encode("1fr auto"))
	assert.Equal(t, `a\_b`, Encode("a_b"))
}

func TestWellFormed(t *testing.T) {
	assert.True(t, WellFormed("16px"))
	assert.True(t, WellFormed("calc(100% - 1rem)"))
	assert.True(t, WellFormed("#112233"))
	assert.False(t, WellFormed("calc(100%"))
	assert.False(t, WellFormed("a)"))
	assert.False(t, WellFormed(""))
}

func TestLastTopLevel(t *testing.T) {
	assert.Equal(t, 11, LastTopLevel("bg-blue-500/50", '/'))
	assert.Equal(t, -1, LastTopLevel("w-[calc(1/2)]", '/'))
	assert.Equal(t, 3, LastTopLevel("w-1/2", '/'))
}
