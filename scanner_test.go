package cssma

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClassesFromLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantValues []string
		wantCols   []int
	}{
		{
			name:       "class attribute",
			line:       `<div class="flex p-4">`,
			wantValues: []string{"flex p-4"},
			wantCols:   []int{13},
		},
		{
			name:       "single quotes with indentation",
			line:       `    <span class='text-sm'>`,
			wantValues: []string{"text-sm"},
			wantCols:   []int{18},
		},
		{
			name:       "jsx expression",
			line:       `<div className={"gap-2 grid"}>`,
			wantValues: []string{"gap-2 grid"},
			wantCols:   []int{18},
		},
		{
			name:       "template literal",
			line:       "<a className={`underline`}>",
			wantValues: []string{"underline"},
			wantCols:   []int{16},
		},
		{
			name:       "two attributes on one line",
			line:       `<b class="a"></b><i class="b"></i>`,
			wantValues: []string{"a", "b"},
			wantCols:   []int{11, 28},
		},
		{
			name:       "templ.Classes arguments",
			line:       `<div class={ templ.Classes("p-2", "m-1") }>`,
			wantValues: []string{"p-2", "m-1"},
			wantCols:   []int{29, 36},
		},
		{
			name:       "templ.KV only takes its first argument",
			line:       `templ.KV("bg-red-500", "yes")`,
			wantValues: []string{"bg-red-500"},
			wantCols:   []int{11},
		},
		{
			name:       "clsx skips expressions",
			line:       `clsx("a", cond && "b", 'c d')`,
			wantValues: []string{"a", "c d"},
			wantCols:   []int{7, 25},
		},
		{
			name:       "apply rule",
			line:       `  @apply font-bold py-2;`,
			wantValues: []string{"font-bold py-2"},
			wantCols:   []int{10},
		},
		{
			name: "comment line",
			line: `// <div class="p-4">`,
		},
		{
			name: "no classes",
			line: `func main() {}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractClassesFromLine(tt.line, 3, "page.html")
			var values []string
			var cols []int
			for _, r := range refs {
				values = append(values, r.Value)
				cols = append(cols, r.Location.Column)
				assert.Equal(t, 3, r.Location.Line)
				assert.Equal(t, tt.line, r.Location.Text)
			}
			assert.ElementsMatch(t, tt.wantValues, values)
			assert.ElementsMatch(t, tt.wantCols, cols)
		})
	}
}

func TestClassReferenceTokens(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []ClassToken
	}{
		{
			name:  "single spaces",
			value: "flex p-4",
			want:  []ClassToken{{"flex", 13}, {"p-4", 18}},
		},
		{
			name:  "extra whitespace",
			value: "  md:p-4\tm-2 ",
			want:  []ClassToken{{"md:p-4", 15}, {"m-2", 22}},
		},
		{
			name:  "interpolation is skipped",
			value: "p-4 ${active} m-2 {{.Extra}}",
			want:  []ClassToken{{"p-4", 13}, {"m-2", 27}},
		},
		{
			name:  "empty",
			value: "   ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := ClassReference{Value: tt.value, Location: FileLocation{Column: 13}}
			assert.Equal(t, tt.want, ref.Tokens())
		})
	}
}

func TestScanText(t *testing.T) {
	refs := ScanText("app.tsx", "import x from 'y'\r\n<div className=\"p-4\">\r\n  <p class=\"m-2\"/>\r\n")
	require.Len(t, refs, 2)
	assert.Equal(t, "p-4", refs[0].Value)
	assert.Equal(t, 2, refs[0].Location.Line)
	assert.Equal(t, "app.tsx", refs[0].Location.File)
	assert.Equal(t, "m-2", refs[1].Value)
	assert.Equal(t, 3, refs[1].Location.Line)
	assert.Equal(t, `<p class="m-2"/>`, refs[1].LineContent)
}

func TestIsTemplGenerated(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "standard templ generated (_templ.go)",
			path:     "internal/web/features/sidebar_templ.go",
			expected: true,
		},
		{
			name:     "alternate templ generated (.templ.go)",
			path:     "internal/web/features/sidebar.templ.go",
			expected: true,
		},
		{
			name:     "regular go file",
			path:     "internal/api/handlers.go",
			expected: false,
		},
		{
			name:     "templ source file",
			path:     "internal/web/features/sidebar.templ",
			expected: false,
		},
		{
			name:     "file with templ in name but not generated",
			path:     "internal/templates/handler.go",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isTemplGenerated(tt.path)
			require.Equal(t, tt.expected, got, "isTemplGenerated(%q)", tt.path)
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "skip templ generated",
			path:     "internal/web/sidebar_templ.go",
			expected: true,
		},
		{
			name:     "skip minified bundle",
			path:     "static/app.min.js",
			expected: true,
		},
		{
			name:     "skip minified stylesheet",
			path:     "static/app.min.css",
			expected: true,
		},
		{
			name:     "scan templ source",
			path:     "internal/web/sidebar.templ",
			expected: false,
		},
		{
			name:     "scan jsx",
			path:     "web/src/App.tsx",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestScanFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"page.templ":        `<div class="flex gap-2">`,
		"page_templ.go":     `templ.Classes("flex gap-2")`,
		"sub/view.html":     "<p class=\"m-2\">\n<p class=\"m-2\">",
		"static/app.min.js": `className:"p-4"`,
	})

	refs, stats, err := ScanFiles([]string{
		filepath.Join(dir, "**", "*"),
		filepath.Join(dir, "*.templ"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, ScanStats{FilesDiscovered: 4, FilesScanned: 2, FilesSkipped: 2}, stats)
	require.Len(t, refs, 3)
	var values []string
	for _, r := range refs {
		values = append(values, r.Value)
	}
	assert.ElementsMatch(t, []string{"flex gap-2", "m-2", "m-2"}, values)
}

func TestScanFilesBadPattern(t *testing.T) {
	_, _, err := ScanFiles([]string{"web/[.html"}, nil)
	assert.ErrorContains(t, err, "glob pattern")
}

func TestGetRelativePath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("dist", "app.css"), GetRelativePath(filepath.Join(cwd, "dist", "app.css")))
	assert.Equal(t, "dist/app.css", GetRelativePath("dist/app.css"), "relative paths are returned unchanged")
}
