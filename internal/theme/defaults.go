package theme

import (
	"strconv"
	"strings"
)

// DefaultRemBase is the root font size used to convert rem to px.
const DefaultRemBase = 16

// SpacingUnit is the pixel size of one spacing step (p-1 = 4px).
const SpacingUnit = 4

var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

// palette lists the default color families, shades 50 through 950.
var palette = []struct {
	family string
	hex    [11]string
}{
	{"slate", [11]string{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"}},
	{"gray", [11]string{"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"}},
	{"zinc", [11]string{"#fafafa", "#f4f4f5", "#e4e4e7", "#d4d4d8", "#a1a1aa", "#71717a", "#52525b", "#3f3f46", "#27272a", "#18181b", "#09090b"}},
	{"neutral", [11]string{"#fafafa", "#f5f5f5", "#e5e5e5", "#d4d4d4", "#a3a3a3", "#737373", "#525252", "#404040", "#262626", "#171717", "#0a0a0a"}},
	{"stone", [11]string{"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e", "#78716c", "#57534e", "#44403c", "#292524", "#1c1917", "#0c0a09"}},
	{"red", [11]string{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"}},
	{"orange", [11]string{"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"}},
	{"amber", [11]string{"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"}},
	{"yellow", [11]string{"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"}},
	{"lime", [11]string{"#f7fee7", "#ecfccb", "#d9f99d", "#bef264", "#a3e635", "#84cc16", "#65a30d", "#4d7c0f", "#3f6212", "#365314", "#1a2e05"}},
	{"green", [11]string{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"}},
	{"emerald", [11]string{"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"}},
	{"teal", [11]string{"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"}},
	{"cyan", [11]string{"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"}},
	{"sky", [11]string{"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49"}},
	{"blue", [11]string{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"}},
	{"indigo", [11]string{"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"}},
	{"violet", [11]string{"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"}},
	{"purple", [11]string{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"}},
	{"fuchsia", [11]string{"#fdf4ff", "#fae8ff", "#f5d0fe", "#f0abfc", "#e879f9", "#d946ef", "#c026d3", "#a21caf", "#86198f", "#701a75", "#4a044e"}},
	{"pink", [11]string{"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"}},
	{"rose", [11]string{"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"}},
}

// FamilyOrder returns the default palette's family names in declaration
// order. Reverse lookups walk families in this order so ties are stable.
func FamilyOrder() []string {
	out := make([]string, len(palette))
	for i, p := range palette {
		out[i] = p.family
	}
	return out
}

var spacingKeys = []string{
	"0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	"14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56", "60", "64", "72", "80", "96",
}

// Default returns a fresh copy of the built-in preset.
func Default() *Preset {
	p := &Preset{
		Name:    "default",
		Colors:  make(map[string]map[string]string, len(palette)),
		Spacing: map[string]string{"0": "0px", "px": "1px"},
		FontSize: map[string]FontSize{
			"xs":   {"0.75rem", "1rem"},
			"sm":   {"0.875rem", "1.25rem"},
			"base": {"1rem", "1.5rem"},
			"lg":   {"1.125rem", "1.75rem"},
			"xl":   {"1.25rem", "1.75rem"},
			"2xl":  {"1.5rem", "2rem"},
			"3xl":  {"1.875rem", "2.25rem"},
			"4xl":  {"2.25rem", "2.5rem"},
			"5xl":  {"3rem", "1"},
			"6xl":  {"3.75rem", "1"},
			"7xl":  {"4.5rem", "1"},
			"8xl":  {"6rem", "1"},
			"9xl":  {"8rem", "1"},
		},
		FontWeight: map[string]string{
			"thin": "100", "extralight": "200", "light": "300", "normal": "400", "medium": "500",
			"semibold": "600", "bold": "700", "extrabold": "800", "black": "900",
		},
		FontFamily: map[string]string{
			"sans":  `ui-sans-serif, system-ui, sans-serif, "Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol", "Noto Color Emoji"`,
			"serif": `ui-serif, Georgia, Cambria, "Times New Roman", Times, serif`,
			"mono":  `ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, "Liberation Mono", "Courier New", monospace`,
		},
		LineHeight: map[string]string{
			"none": "1", "tight": "1.25", "snug": "1.375", "normal": "1.5", "relaxed": "1.625", "loose": "2",
			"3": "0.75rem", "4": "1rem", "5": "1.25rem", "6": "1.5rem", "7": "1.75rem",
			"8": "2rem", "9": "2.25rem", "10": "2.5rem",
		},
		LetterSpacing: map[string]string{
			"tighter": "-0.05em", "tight": "-0.025em", "normal": "0em",
			"wide": "0.025em", "wider": "0.05em", "widest": "0.1em",
		},
		BorderRadius: map[string]string{
			"none": "0px", "sm": "0.125rem", "DEFAULT": "0.25rem", "md": "0.375rem", "lg": "0.5rem",
			"xl": "0.75rem", "2xl": "1rem", "3xl": "1.5rem", "full": "9999px",
		},
		BorderWidth: map[string]string{
			"DEFAULT": "1px", "0": "0px", "2": "2px", "4": "4px", "8": "8px",
		},
		Shadows: map[string]Shadow{
			"sm": {
				CSS:    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
				Effect: ShadowEffect{OffsetY: 1, Radius: 2},
			},
			"DEFAULT": {
				CSS:    "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
				Effect: ShadowEffect{OffsetY: 1, Radius: 3},
			},
			"md": {
				CSS:    "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
				Effect: ShadowEffect{OffsetY: 4, Radius: 6, Spread: -1},
			},
			"lg": {
				CSS:    "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
				Effect: ShadowEffect{OffsetY: 10, Radius: 10, Spread: -3},
			},
			"xl": {
				CSS:    "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
				Effect: ShadowEffect{OffsetY: 20, Radius: 25, Spread: -5},
			},
			"2xl": {
				CSS:    "0 25px 50px -12px rgb(0 0 0 / 0.25)",
				Effect: ShadowEffect{OffsetY: 25, Radius: 50, Spread: -12},
			},
			"inner": {
				CSS:    "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
				Effect: ShadowEffect{OffsetY: 2, Radius: 4, Inset: true},
			},
			"none": {CSS: "0 0 #0000"},
		},
		// Comma-separated layers each become one drop-shadow() function.
		DropShadow: map[string]string{
			"sm":      "0 1px 1px rgb(0 0 0 / 0.05)",
			"DEFAULT": "0 1px 2px rgb(0 0 0 / 0.1), 0 1px 1px rgb(0 0 0 / 0.06)",
			"md":      "0 4px 3px rgb(0 0 0 / 0.07), 0 2px 2px rgb(0 0 0 / 0.06)",
			"lg":      "0 10px 8px rgb(0 0 0 / 0.04), 0 4px 3px rgb(0 0 0 / 0.1)",
			"xl":      "0 20px 13px rgb(0 0 0 / 0.03), 0 8px 5px rgb(0 0 0 / 0.08)",
			"2xl":     "0 25px 25px rgb(0 0 0 / 0.15)",
			"none":    "0 0 #0000",
		},
		Blur: map[string]string{
			"none": "0", "sm": "4px", "DEFAULT": "8px", "md": "12px", "lg": "16px",
			"xl": "24px", "2xl": "40px", "3xl": "64px",
		},
		Opacity: map[string]string{},
		Screens: map[string]string{
			"sm": "640px", "md": "768px", "lg": "1024px", "xl": "1280px", "2xl": "1536px",
		},
		Containers: map[string]string{
			"3xs": "16rem", "2xs": "18rem", "xs": "20rem", "sm": "24rem", "md": "28rem", "lg": "32rem",
			"xl": "36rem", "2xl": "42rem", "3xl": "48rem", "4xl": "56rem", "5xl": "64rem",
			"6xl": "72rem", "7xl": "80rem",
		},
		MaxWidth: map[string]string{
			"none": "none", "xs": "20rem", "sm": "24rem", "md": "28rem", "lg": "32rem", "xl": "36rem",
			"2xl": "42rem", "3xl": "48rem", "4xl": "56rem", "5xl": "64rem", "6xl": "72rem", "7xl": "80rem",
			"prose": "65ch",
		},
		Animation: map[string]string{
			"none":   "none",
			"spin":   "spin 1s linear infinite",
			"ping":   "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
			"pulse":  "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
			"bounce": "bounce 1s infinite",
		},
		Keyframes: map[string]string{
			"spin":   "to { transform: rotate(360deg); }",
			"ping":   "75%, 100% { transform: scale(2); opacity: 0; }",
			"pulse":  "50% { opacity: .5; }",
			"bounce": "0%, 100% { transform: translateY(-25%); animation-timing-function: cubic-bezier(0.8, 0, 1, 1); } 50% { transform: none; animation-timing-function: cubic-bezier(0, 0, 0.2, 1); }",
		},
		Ease: map[string]string{
			"linear": "linear",
			"in":     "cubic-bezier(0.4, 0, 1, 1)",
			"out":    "cubic-bezier(0, 0, 0.2, 1)",
			"in-out": "cubic-bezier(0.4, 0, 0.2, 1)",
		},
	}
	for _, fam := range palette {
		m := make(map[string]string, len(shades))
		for i, s := range shades {
			m[s] = fam.hex[i]
		}
		p.Colors[fam.family] = m
	}
	for _, k := range spacingKeys {
		f, _ := strconv.ParseFloat(k, 64)
		p.Spacing[k] = formatRem(f / 4)
	}
	for i := 0; i <= 100; i += 5 {
		p.Opacity[strconv.Itoa(i)] = formatFloat(float64(i) / 100)
	}
	return p
}

func formatRem(rem float64) string {
	return formatFloat(rem) + "rem"
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
