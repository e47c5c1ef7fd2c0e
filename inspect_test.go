package cssma

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easylogic/cssma/internal/aggregate"
)

func TestInspect(t *testing.T) {
	e := newTestEngine(t)
	insp := e.Inspect("md:hover:flex-grow")

	assert.Equal(t, "md:hover:grow", insp.Normalized)
	require.Len(t, insp.Modifiers, 2)
	assert.Equal(t, "md", insp.Modifiers[0].Raw)
	assert.True(t, insp.Modifiers[0].Wrapper)
	assert.Equal(t, "hover", insp.Modifiers[1].Raw)
	assert.False(t, insp.Modifiers[1].Wrapper)
	require.NotNil(t, insp.Utility)
	assert.Equal(t, "grow", insp.Utility.Root)
	assert.Nil(t, insp.Diagnostic)
	assert.NotEmpty(t, insp.Entries)
	assert.Contains(t, insp.Rule, "@media (min-width: 768px)")
}

func TestInspectSpacing(t *testing.T) {
	e := newTestEngine(t)
	insp := e.Inspect("px-2")

	assert.Equal(t, map[string]string{"paddingLeft": "8", "paddingRight": "8"}, insp.Entries)
	assert.Equal(t, []SectionedDeclaration{
		{Property: "padding-left", Value: "0.5rem", Section: SectionSpacing},
		{Property: "padding-right", Value: "0.5rem", Section: SectionSpacing},
	}, insp.Sections[SectionSpacing])
}

func TestInspectSkipped(t *testing.T) {
	e := newTestEngine(t)
	insp := e.Inspect("wat:p-4")

	require.NotNil(t, insp.Diagnostic)
	assert.Equal(t, aggregate.ReasonUnknownModifier, insp.Diagnostic.Reason)
	assert.Empty(t, insp.Rule)

	var buf bytes.Buffer
	WriteInspection(&buf, insp, false)
	assert.Contains(t, buf.String(), `skipped: unknown modifier "wat"`)
}

func TestWriteInspection(t *testing.T) {
	e := newTestEngine(t)
	var buf bytes.Buffer
	WriteInspection(&buf, e.Inspect("p-[13px]"), false)
	out := buf.String()

	assert.Contains(t, out, "p-[13px]\n")
	assert.Contains(t, out, "  parser:    spacing\n")
	assert.Contains(t, out, "  value:     13px (arbitrary)\n")
	assert.Contains(t, out, "\n  SPACING\n    padding: 13px\n")
	assert.Contains(t, out, "  .p-\\[13px\\] {\n")
}
