package cssgen

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/easylogic/cssma/internal/utility"
)

// ParsedRule is one style rule read back from CSS text.
type ParsedRule struct {
	AtRules      []string // enclosing at-rule preludes, outermost first
	Selector     string
	Declarations []utility.Declaration
}

// Get returns the value of the first declaration of prop.
func (r ParsedRule) Get(prop string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == prop {
			return d.Value, true
		}
	}
	return "", false
}

// ParseStylesheet reads CSS text into its style rules. It is used to check
// generated output; rules nested in @keyframes are returned like any other.
func ParseStylesheet(content string) ([]ParsedRule, error) {
	p := css.NewParser(parse.NewInputString(content), false)

	var (
		rules    []ParsedRule
		atRules  []string
		current  *ParsedRule
		selector []string
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return rules, fmt.Errorf("parse css: %w", err)
			}
			return rules, nil
		case css.BeginAtRuleGrammar:
			atRules = append(atRules, strings.TrimSpace(string(data)+" "+join(p.Values())))
		case css.EndAtRuleGrammar:
			if len(atRules) > 0 {
				atRules = atRules[:len(atRules)-1]
			}
		case css.QualifiedRuleGrammar:
			selector = append(selector, join(p.Values()))
		case css.BeginRulesetGrammar:
			selector = append(selector, join(p.Values()))
			current = &ParsedRule{
				AtRules:  append([]string(nil), atRules...),
				Selector: strings.Join(selector, ", "),
			}
			selector = selector[:0]
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if current == nil {
				continue
			}
			current.Declarations = append(current.Declarations, utility.Declaration{
				Property: string(data),
				Value:    join(p.Values()),
			})
		case css.EndRulesetGrammar:
			if current != nil {
				rules = append(rules, *current)
				current = nil
			}
		}
	}
}

func join(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
