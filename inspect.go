package cssma

import (
	"fmt"
	"io"
	"strings"

	"github.com/easylogic/cssma/internal/modifier"
	"github.com/easylogic/cssma/internal/style"
	"github.com/easylogic/cssma/internal/utility"
)

// InspectedModifier is one modifier of an inspected class.
type InspectedModifier struct {
	Raw     string `json:"raw"`
	Kind    string `json:"kind"`
	Wrapper bool   `json:"wrapper"` // becomes an at-rule rather than part of the selector
}

// Inspection describes how the engine reads one class token.
type Inspection struct {
	Class      string                             `json:"class"`
	Normalized string                             `json:"normalized"`
	Modifiers  []InspectedModifier                `json:"modifiers,omitempty"`
	Variant    string                             `json:"variant,omitempty"`
	Utility    *utility.Utility                   `json:"utility,omitempty"`
	Entries    map[string]string                  `json:"entries,omitempty"` // style document keys written
	Sections   map[Section][]SectionedDeclaration `json:"declarations,omitempty"`
	Rule       string                             `json:"rule,omitempty"`
	Diagnostic *Diagnostic                        `json:"diagnostic,omitempty"`
}

// Inspect parses, resolves and renders a single class token.
func (e *Engine) Inspect(token string) Inspection {
	c := e.reg.ParseClass(token)
	insp := Inspection{
		Class:      token,
		Normalized: e.Normalize(token),
		Utility:    c.Utility,
		Variant:    modifier.Key(c.Modifiers),
	}
	for _, m := range c.Modifiers {
		insp.Modifiers = append(insp.Modifiers, InspectedModifier{
			Raw:     m.Raw(),
			Kind:    string(m.Kind()),
			Wrapper: modifier.IsWrapper(m),
		})
	}

	res := e.agg.AggregateTokens([]string{token})
	if len(res.Diagnostics) > 0 {
		d := res.Diagnostics[0]
		insp.Diagnostic = &d
		return insp
	}
	a := res.Applied[0]
	insp.Entries = make(map[string]string)
	doc, _ := res.Document(a.Variant)
	doc.Each(func(_ style.Category, key string, v style.Value) {
		insp.Entries[key] = v.String()
	})
	insp.Sections = groupDeclarations(a.Output.Decls)
	if r := e.gen.Rule(a.Class, a.Output); !r.Empty() {
		insp.Rule = r.String()
	}
	return insp
}

// WriteInspection prints an inspection as a terminal report.
func WriteInspection(w io.Writer, insp Inspection, useColors bool) {
	fmt.Fprintln(w, RenderStyle(StyleCyan, insp.Class, useColors))
	if insp.Normalized != insp.Class {
		fmt.Fprintf(w, "  canonical: %s\n", insp.Normalized)
	}
	for _, m := range insp.Modifiers {
		role := "selector"
		if m.Wrapper {
			role = "wrapper"
		}
		fmt.Fprintf(w, "  modifier:  %s %s\n", m.Raw, RenderStyle(StyleGray, "("+m.Kind+", "+role+")", useColors))
	}
	if insp.Diagnostic != nil {
		fmt.Fprintf(w, "  %s %s\n", RenderStyle(StyleRed, "skipped:", useColors), insp.Diagnostic.Message)
		return
	}
	if u := insp.Utility; u != nil {
		fmt.Fprintf(w, "  parser:    %s\n", u.Type)
		fmt.Fprintf(w, "  property:  %s\n", u.Property)
		if u.Value != "" {
			kind := "preset"
			switch {
			case u.Arbitrary:
				kind = "arbitrary"
			case u.CustomProperty:
				kind = "custom property"
			case u.Preset == "":
				kind = "literal"
			}
			fmt.Fprintf(w, "  value:     %s %s\n", u.Value, RenderStyle(StyleGray, "("+kind+")", useColors))
		}
	}
	for _, s := range Sections {
		decls := insp.Sections[s]
		if len(decls) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n  %s\n", RenderStyle(StyleGreen, strings.ToUpper(string(s)), useColors))
		for _, d := range decls {
			fmt.Fprintf(w, "    %s: %s\n", d.Property, d.Value)
		}
	}
	if insp.Rule != "" {
		fmt.Fprintln(w)
		for _, line := range strings.Split(strings.TrimRight(insp.Rule, "\n"), "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}
