package cssma

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"index.html": "<div class=\"p-4 bogus\">\n<p class=\"p-4 md:m-2\">",
	})
	out := filepath.Join(dir, "dist", "css", "app.css")

	e := newTestEngine(t)
	res, err := e.Generate(GenerateConfig{
		ScanPaths: []string{filepath.Join(dir, "*.html")},
		Safelist:  []string{"hidden"},
		Output:    out,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.FilesScanned)
	assert.Equal(t, 2, res.ReferencesFound)
	assert.Equal(t, 4, res.ClassesFound)
	assert.Equal(t, 3, res.RulesGenerated)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "bogus", res.Diagnostics[0].Class)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, res.CSS, written)

	css := string(written)
	assert.Contains(t, css, ".hidden {\n  display: none;\n}")
	assert.Contains(t, css, ".p-4 {\n  padding: 1rem;\n}")
	assert.Contains(t, css, "@media (min-width: 768px)")
	assert.Less(t, strings.Index(css, ".hidden"), strings.Index(css, ".p-4"), "safelist comes first")
}

func TestGenerateFromReferencesWithoutOutput(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.Minify = true })
	refs := ScanText("app.tsx", `<a className="p-4 p-4 m-2">`)

	res, err := e.GenerateFromReferences(refs, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.ClassesFound)
	assert.Equal(t, 2, res.RulesGenerated)
	assert.Contains(t, string(res.CSS), ".p-4{padding:1rem}")
}
