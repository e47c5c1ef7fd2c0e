package cssma

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/easylogic/cssma/internal/utility"
)

func TestSectionOf(t *testing.T) {
	tests := []struct {
		property string
		want     Section
	}{
		{"display", SectionLayout},
		{"padding", SectionSpacing},
		{"padding-inline-start", SectionSpacing},
		{"gap", SectionSpacing},
		{"font-size", SectionTypography},
		{"text-decoration-thickness", SectionTypography},
		{"background-color", SectionVisual},
		{"border-top-color", SectionVisual},
		{"box-shadow", SectionVisual},
		{"transition-duration", SectionEffects},
		{"cursor", SectionInteractivity},
		{"--tw-ring-color", SectionVariables},
		{"-webkit-line-clamp", SectionVendor},
		{"grid-template-columns", SectionLayout},
		{"not-a-property", SectionLayout},
	}
	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.want, SectionOf(tt.property))
		})
	}
}

func TestGroupDeclarations(t *testing.T) {
	got := groupDeclarations([]utility.Declaration{
		{Property: "padding-top", Value: "1rem"},
		{Property: "color", Value: "var(--color-red-500, #ef4444)"},
		{Property: "padding-bottom", Value: "1rem"},
		{Property: "--tw-shadow", Value: "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
	})

	assert.Equal(t, map[Section][]SectionedDeclaration{
		SectionSpacing: {
			{Property: "padding-bottom", Value: "1rem", Section: SectionSpacing},
			{Property: "padding-top", Value: "1rem", Section: SectionSpacing},
		},
		SectionVisual: {
			{Property: "color", Value: "var(--color-red-500, #ef4444)", Section: SectionVisual, IsToken: true},
		},
		SectionVariables: {
			{Property: "--tw-shadow", Value: "0 1px 2px 0 rgb(0 0 0 / 0.05)", Section: SectionVariables},
		},
	}, got)
}
