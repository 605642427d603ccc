// Package css parses the small CSS subset dialog scripts use to style
// their boxes: rule blocks from <style> elements and inline style
// attributes.
package css

import (
	"errors"
	"io"
	"strings"
)

// Parser represents a CSS parser
type Parser struct{}

// Rule represents a CSS rule
type Rule struct {
	Selectors    []string
	Declarations []*Declaration
}

// Declaration represents a CSS declaration (property-value pair)
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Stylesheet represents a parsed CSS stylesheet
type Stylesheet struct {
	Rules []*Rule
}

// NewParser creates a new CSS parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses CSS from a string
func (p *Parser) ParseString(content string) (*Stylesheet, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses CSS from an io.Reader. Malformed rules are skipped.
func (p *Parser) Parse(r io.Reader) (*Stylesheet, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	sheet := &Stylesheet{}
	for _, ruleStr := range splitRules(removeComments(string(content))) {
		rule, err := parseRule(ruleStr)
		if err != nil {
			continue
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet, nil
}

// ParseDeclarations parses the body of a rule or an inline style attribute.
func ParseDeclarations(body string) []*Declaration {
	parts := strings.Split(removeComments(body), ";")
	result := make([]*Declaration, 0, len(parts))

	for _, part := range parts {
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if property == "" || value == "" {
			continue
		}

		important := false
		if v, found := strings.CutSuffix(value, "!important"); found {
			important = true
			value = strings.TrimSpace(v)
		}

		result = append(result, &Declaration{
			Property:  property,
			Value:     value,
			Important: important,
		})
	}
	return result
}

// Matching returns the declarations of every rule with a selector in
// selectors, in source order.
func (s *Stylesheet) Matching(selectors ...string) []*Declaration {
	if s == nil {
		return nil
	}
	var out []*Declaration
	for _, rule := range s.Rules {
		if rule.matches(selectors) {
			out = append(out, rule.Declarations...)
		}
	}
	return out
}

func (r *Rule) matches(selectors []string) bool {
	for _, have := range r.Selectors {
		for _, want := range selectors {
			if want != "" && strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// parseRule parses a single CSS rule
func parseRule(ruleStr string) (*Rule, error) {
	selectorStr, body, ok := strings.Cut(ruleStr, "{")
	if !ok {
		return nil, errors.New("invalid rule format")
	}

	var selectors []string
	for _, sel := range strings.Split(selectorStr, ",") {
		if sel = strings.TrimSpace(sel); sel != "" {
			selectors = append(selectors, sel)
		}
	}
	if len(selectors) == 0 {
		return nil, errors.New("no selectors found")
	}

	return &Rule{
		Selectors:    selectors,
		Declarations: ParseDeclarations(strings.TrimSuffix(strings.TrimSpace(body), "}")),
	}, nil
}

// removeComments removes CSS comments
func removeComments(content string) string {
	var result strings.Builder
	for {
		start := strings.Index(content, "/*")
		if start == -1 {
			result.WriteString(content)
			break
		}
		result.WriteString(content[:start])
		end := strings.Index(content[start+2:], "*/")
		if end == -1 {
			break
		}
		content = content[start+2+end+2:]
	}
	return result.String()
}

// splitRules splits CSS content into individual rules
func splitRules(content string) []string {
	var rules []string
	var current strings.Builder
	depth := 0

	for i := 0; i < len(content); i++ {
		c := content[i]
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				current.WriteByte(c)
				rules = append(rules, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
		}
		current.WriteByte(c)
	}
	return rules
}
