package cssma

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/aggregate"
	"github.com/easylogic/cssma/internal/cssgen"
	"github.com/easylogic/cssma/internal/props"
	"github.com/easylogic/cssma/internal/reverse"
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/theme"
	"github.com/easylogic/cssma/internal/utility"
)

// Config holds engine configuration. It is read once by New; change it by
// building a new Engine.
type Config struct {
	Prefix    string // required class prefix, e.g. "tw-"
	Separator string // modifier separator, ":" by default
	Important bool   // mark every declaration !important

	EnableArbitraryValues     bool
	EnableStateModifiers      bool
	EnableResponsiveModifiers bool

	ColorFormat        string // hex, rgb or oklch
	OutputCSSVariables bool   // palette colors as var(--color-x, value)
	UseOKLCH           bool   // keep oklch() preset values as stored
	RemBase            float64

	ColorMatch       string  // reverse color matching: exact or nearest
	MaxColorDistance float64 // CIEDE2000 bound for nearest matching, 0 for none

	DarkMode          string // media or class
	DefaultFontFamily string // family that needs no class, "Inter" when empty
	Minify            bool

	PresetFile string // YAML or JSON preset laid over the default preset
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Separator:                 ":",
		EnableArbitraryValues:     true,
		EnableStateModifiers:      true,
		EnableResponsiveModifiers: true,
		ColorFormat:               string(theme.FormatHex),
		RemBase:                   theme.DefaultRemBase,
		ColorMatch:                string(reverse.MatchExact),
		DarkMode:                  string(cssgen.DarkMedia),
		DefaultFontFamily:         "Inter",
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var err error
	switch theme.ColorFormat(c.ColorFormat) {
	case "", theme.FormatHex, theme.FormatRGB, theme.FormatOKLCH:
	default:
		err = multierr.Append(err, fmt.Errorf("invalid color format %q (want hex, rgb or oklch)", c.ColorFormat))
	}
	switch reverse.ColorMatch(c.ColorMatch) {
	case "", reverse.MatchExact, reverse.MatchNearest:
	default:
		err = multierr.Append(err, fmt.Errorf("invalid color match %q (want exact or nearest)", c.ColorMatch))
	}
	switch cssgen.DarkStrategy(c.DarkMode) {
	case "", cssgen.DarkMedia, cssgen.DarkClass:
	default:
		err = multierr.Append(err, fmt.Errorf("invalid dark mode %q (want media or class)", c.DarkMode))
	}
	if c.RemBase < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid rem base %v", c.RemBase))
	}
	if c.MaxColorDistance < 0 {
		err = multierr.Append(err, fmt.Errorf("invalid max color distance %v", c.MaxColorDistance))
	}
	if strings.ContainsAny(c.Separator, " \t[]") {
		err = multierr.Append(err, fmt.Errorf("invalid separator %q", c.Separator))
	}
	return err
}

// Shared types of the engine's inputs and outputs.
type (
	Result     = aggregate.Result
	Diagnostic = aggregate.Diagnostic
	Class      = utility.Class
	Document   = style.Document
	Properties = props.Properties
	NodeKind   = props.NodeKind
	Preset     = theme.Preset
	Stylesheet = cssgen.Stylesheet
)

// Node kinds for Properties and Reverse.
const (
	FrameNode  = props.FrameNode
	TextNode   = props.TextNode
	VectorNode = props.VectorNode
)

// DefaultPreset returns a fresh copy of the built-in preset.
func DefaultPreset() *Preset {
	return theme.Default()
}

// LoadPreset reads a YAML or JSON preset file and lays it over the default
// preset.
func LoadPreset(path string) (*Preset, error) {
	return theme.LoadFile(path)
}

// Option customizes New.
type Option func(*options)

type options struct {
	log    *zap.Logger
	preset *theme.Preset
}

// WithLogger sets the logger. Engines log at debug level only.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithPreset replaces the default preset. Config.PresetFile is ignored when
// a preset is given.
func WithPreset(p *Preset) Option {
	return func(o *options) { o.preset = p }
}

// Engine parses, aggregates and emits utility classes. It holds no
// per-call state and is safe for concurrent use.
type Engine struct {
	cfg      Config
	preset   *theme.Preset
	resolver *theme.Resolver
	reg      *utility.Registry
	agg      *aggregate.Aggregator
	gen      *cssgen.Generator
	conv     *props.Converter
	rev      *reverse.Emitter
	log      *zap.Logger
}

// New builds an engine. The preset comes from WithPreset, then
// Config.PresetFile, then the default preset.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	preset := o.preset
	switch {
	case preset != nil:
	case cfg.PresetFile != "":
		p, err := theme.LoadFile(cfg.PresetFile)
		if err != nil {
			return nil, err
		}
		preset = p
	default:
		preset = theme.Default()
	}

	log := o.log.Named("cssma")
	r := theme.NewResolver(preset, theme.Options{
		Format:       theme.ColorFormat(cfg.ColorFormat),
		CSSVariables: cfg.OutputCSSVariables,
		UseOKLCH:     cfg.UseOKLCH,
		RemBase:      cfg.RemBase,
	})
	reg := utility.NewRegistry(r, utility.Options{Prefix: cfg.Prefix, Separator: cfg.Separator})

	border := "#e5e7eb"
	if css, ok := r.Color("gray-200"); ok {
		border = css
	}
	const ring = "rgb(59 130 246 / 0.5)"

	e := &Engine{
		cfg:      cfg,
		preset:   preset,
		resolver: r,
		reg:      reg,
		agg: aggregate.New(reg, aggregate.Config{
			EnableArbitraryValues:     cfg.EnableArbitraryValues,
			EnableStateModifiers:      cfg.EnableStateModifiers,
			EnableResponsiveModifiers: cfg.EnableResponsiveModifiers,
		}, log),
		gen: cssgen.New(preset, cssgen.Options{
			Prefix:    cfg.Prefix,
			Important: cfg.Important,
			DarkMode:  cssgen.DarkStrategy(cfg.DarkMode),
			Minify:    cfg.Minify,
		}, log),
		conv: props.New(r, props.Options{
			DefaultFontFamily:  cfg.DefaultFontFamily,
			DefaultBorderColor: border,
			DefaultRingColor:   ring,
		}, log),
		rev: reverse.New(r, reverse.Options{
			ColorMatch:         reverse.ColorMatch(cfg.ColorMatch),
			MaxDistance:        cfg.MaxColorDistance,
			DefaultFontFamily:  cfg.DefaultFontFamily,
			DefaultRingColor:   ring,
			DefaultBorderColor: border,
		}, log),
		log: log,
	}
	log.Debug("engine ready",
		zap.String("preset", preset.Name),
		zap.String("prefix", cfg.Prefix),
		zap.Int("parsers", len(reg.Parsers())))
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Preset returns the active preset. Do not modify it.
func (e *Engine) Preset() *Preset { return e.preset }

// ParseClass splits one class token into modifiers and a utility. The
// utility is nil when no category parser accepts the base class.
func (e *Engine) ParseClass(token string) Class {
	return e.reg.ParseClass(token)
}

// ParseClasses parses every whitespace-separated token of classes.
func (e *Engine) ParseClasses(classes string) []Class {
	fields := strings.Fields(classes)
	out := make([]Class, len(fields))
	for i, f := range fields {
		out[i] = e.reg.ParseClass(f)
	}
	return out
}

// Compile aggregates a class string. Later classes win per style key.
func (e *Engine) Compile(classes string) *Result {
	return e.agg.Aggregate(classes)
}

// CompileTokens aggregates already split class tokens.
func (e *Engine) CompileTokens(tokens []string) *Result {
	return e.agg.AggregateTokens(tokens)
}

// Stylesheet builds one stylesheet holding a rule for every applied class
// of the results, duplicates removed.
func (e *Engine) Stylesheet(results ...*Result) *Stylesheet {
	s := e.gen.NewStylesheet()
	for _, res := range results {
		for _, a := range res.Applied {
			s.Add(a.Class, a.Output)
		}
	}
	return s
}

// CSS renders the stylesheet of the results, minified when Config.Minify
// is set.
func (e *Engine) CSS(results ...*Result) ([]byte, error) {
	return e.Stylesheet(results...).Bytes()
}

// Rule renders the CSS rule of a single class token. It returns false for
// classes that would be skipped by Compile.
func (e *Engine) Rule(token string) (string, bool) {
	res := e.agg.AggregateTokens([]string{token})
	if len(res.Applied) == 0 {
		return "", false
	}
	a := res.Applied[0]
	r := e.gen.Rule(a.Class, a.Output)
	if r.Empty() {
		return "", false
	}
	return r.String(), true
}

// Properties converts the unconditioned document of res into the property
// schema of a node of the given kind.
func (e *Engine) Properties(res *Result, kind NodeKind) *Properties {
	if res == nil {
		return e.conv.Convert(nil, kind)
	}
	return e.conv.Convert(res.Base, kind)
}

// VariantProperties converts the document of one variant key ("hover",
// "md:dark").
func (e *Engine) VariantProperties(res *Result, key string, kind NodeKind) (*Properties, bool) {
	doc, ok := res.Document(key)
	if !ok {
		return nil, false
	}
	return e.conv.Convert(doc, kind), true
}

// Reverse derives the classes that reproduce p on a node of the given
// kind, joined with spaces.
func (e *Engine) Reverse(p *Properties, kind NodeKind) string {
	return e.rev.String(p, kind)
}

// ReverseClasses is Reverse without the join.
func (e *Engine) ReverseClasses(p *Properties, kind NodeKind) []string {
	return e.rev.Classes(p, kind)
}

// Normalize rewrites a class token into its canonical spelling: modifiers
// are kept in source order, the important marker moves to the front,
// legacy aliases are replaced and explicit default values are dropped
// ("flex-shrink-1" becomes "shrink"). Unrecognized tokens are returned
// unchanged.
func (e *Engine) Normalize(token string) string {
	c := e.reg.ParseClass(token)
	if !c.Recognized() {
		return token
	}
	sep := e.reg.Tokenizer().Separator()
	var b strings.Builder
	for _, m := range c.Modifiers {
		b.WriteString(m.Raw())
		b.WriteString(sep)
	}
	_, base := e.reg.Tokenizer().Split(token)
	b.WriteString(e.canonicalBase(base))
	return b.String()
}

// canonicalBase normalizes a recognized base class and restores the
// configured prefix.
func (e *Engine) canonicalBase(base string) string {
	n := e.reg.Normalize(base)
	if e.cfg.Prefix == "" {
		return n
	}
	n, important := strings.CutPrefix(n, "!")
	n, negative := strings.CutPrefix(n, "-")
	n = e.cfg.Prefix + n
	if negative {
		n = "-" + n
	}
	if important {
		n = "!" + n
	}
	return n
}
