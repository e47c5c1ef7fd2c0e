// Package aggregate merges the utilities of an ordered class list into one
// style document per variant.
package aggregate

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/easylogic/cssma/internal/modifier"
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/utility"
)

// Config gates which class forms take part in aggregation.
type Config struct {
	EnableArbitraryValues     bool
	EnableStateModifiers      bool
	EnableResponsiveModifiers bool
}

// DefaultConfig enables everything.
func DefaultConfig() Config {
	return Config{
		EnableArbitraryValues:     true,
		EnableStateModifiers:      true,
		EnableResponsiveModifiers: true,
	}
}

// Reason classifies why a class did not contribute.
type Reason string

// Skip reasons.
const (
	ReasonUnrecognized       Reason = "unrecognized"
	ReasonUnknownModifier    Reason = "unknown-modifier"
	ReasonArbitraryValue     Reason = "arbitrary-disabled"
	ReasonStateModifier      Reason = "state-disabled"
	ReasonResponsiveModifier Reason = "responsive-disabled"
)

// Diagnostic reports one class that was skipped.
type Diagnostic struct {
	Class   string `json:"class"`
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Class, d.Message)
}

// Variant is the document for one canonical modifier combination.
type Variant struct {
	Key       string              `json:"key"`
	Modifiers []modifier.Modifier `json:"-"`
	Document  *style.Document     `json:"style"`
}

// Applied is a class that contributed, with the output it resolved to.
type Applied struct {
	Class  utility.Class
	Output utility.Output
	// Variant is the canonical modifier key, empty for unconditioned classes.
	Variant string
}

// Result is the outcome of aggregating one class list.
type Result struct {
	Base        *style.Document
	Variants    map[string]*Variant
	Applied     []Applied
	Diagnostics []Diagnostic
	order       []string
}

// VariantKeys returns variant keys in first-seen order.
func (r *Result) VariantKeys() []string {
	return append([]string(nil), r.order...)
}

// Document returns the document for a variant key; "" is the base.
func (r *Result) Document(key string) (*style.Document, bool) {
	if key == "" {
		return r.Base, true
	}
	v, ok := r.Variants[key]
	if !ok {
		return nil, false
	}
	return v.Document, true
}

// Aggregator applies classes in source order. It holds no per-call state
// and may be shared.
type Aggregator struct {
	reg *utility.Registry
	cfg Config
	log *zap.Logger
}

// New returns an aggregator over reg. A nil logger discards output.
func New(reg *utility.Registry, cfg Config, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{reg: reg, cfg: cfg, log: log.Named("aggregate")}
}

// Aggregate splits a class attribute value on whitespace and aggregates it.
func (a *Aggregator) Aggregate(classes string) *Result {
	return a.AggregateTokens(strings.Fields(classes))
}

// AggregateTokens aggregates class tokens in order. Later classes override
// earlier ones per document key; keys a class does not write keep their
// earlier value.
func (a *Aggregator) AggregateTokens(tokens []string) *Result {
	res := &Result{
		Base:     style.NewDocument(),
		Variants: make(map[string]*Variant),
	}
	for _, tok := range tokens {
		c := a.reg.ParseClass(tok)
		if d, skip := a.check(c); skip {
			a.log.Debug("skip class", zap.String("class", tok), zap.String("reason", string(d.Reason)))
			res.Diagnostics = append(res.Diagnostics, d)
			continue
		}
		out := a.reg.Resolve(c.Utility)
		key := modifier.Key(c.Modifiers)
		doc := res.Base
		if key != "" {
			v, ok := res.Variants[key]
			if !ok {
				v = &Variant{Key: key, Modifiers: c.Modifiers, Document: style.NewDocument()}
				res.Variants[key] = v
				res.order = append(res.order, key)
			}
			doc = v.Document
		}
		doc.Apply(out.Entries...)
		res.Applied = append(res.Applied, Applied{Class: c, Output: out, Variant: key})
		a.log.Debug("apply class",
			zap.String("class", tok),
			zap.String("parser", c.Utility.Type),
			zap.String("variant", key),
			zap.Int("entries", len(out.Entries)))
	}
	return res
}

// check decides whether c may be applied.
func (a *Aggregator) check(c utility.Class) (Diagnostic, bool) {
	d := Diagnostic{Class: c.Original}
	if !c.Recognized() {
		d.Reason, d.Message = ReasonUnrecognized, c.Reason
		return d, true
	}
	if u, ok := modifier.HasUnknown(c.Modifiers); ok {
		d.Reason, d.Message = ReasonUnknownModifier, fmt.Sprintf("unknown modifier %q", u.Raw())
		return d, true
	}
	if !a.cfg.EnableArbitraryValues && isArbitrary(c) {
		d.Reason, d.Message = ReasonArbitraryValue, "arbitrary values are disabled"
		return d, true
	}
	for _, m := range c.Modifiers {
		switch modifier.FamilyOf(m) {
		case modifier.FamilyState:
			if !a.cfg.EnableStateModifiers {
				d.Reason, d.Message = ReasonStateModifier, fmt.Sprintf("state modifier %q is disabled", m.Raw())
				return d, true
			}
		case modifier.FamilyResponsive:
			if !a.cfg.EnableResponsiveModifiers {
				d.Reason, d.Message = ReasonResponsiveModifier, fmt.Sprintf("responsive modifier %q is disabled", m.Raw())
				return d, true
			}
		}
	}
	return d, false
}

func isArbitrary(c utility.Class) bool {
	u := c.Utility
	if u.Arbitrary || u.CustomProperty || u.Type == utility.ArbitraryType {
		return true
	}
	for _, m := range c.Modifiers {
		switch v := m.(type) {
		case modifier.Arbitrary, modifier.Breakpoint:
			return true
		case modifier.Container:
			if v.Width != "" {
				return true
			}
		}
	}
	return false
}

// Merge folds the base documents of several results into one, later results
// winning. Variants are merged key by key.
func Merge(results ...*Result) *Result {
	out := &Result{Base: style.NewDocument(), Variants: make(map[string]*Variant)}
	for _, r := range results {
		mergeInto(out.Base, r.Base)
		for _, key := range r.order {
			src := r.Variants[key]
			v, ok := out.Variants[key]
			if !ok {
				v = &Variant{Key: key, Modifiers: src.Modifiers, Document: style.NewDocument()}
				out.Variants[key] = v
				out.order = append(out.order, key)
			}
			mergeInto(v.Document, src.Document)
		}
		out.Applied = append(out.Applied, r.Applied...)
		out.Diagnostics = append(out.Diagnostics, r.Diagnostics...)
	}
	return out
}

func mergeInto(dst, src *style.Document) {
	src.Each(func(cat style.Category, key string, v style.Value) {
		if cat == style.Arbitrary {
			dst.SetProperty(key, v)
			return
		}
		dst.Set(key, v)
	})
}
