package style

import (
	"image/color"

	"github.com/gompdf/gomdialog/internal/parser/css"
)

// Source represents the source of a style property
type Source int

const (
	SourceDefault Source = iota
	SourceAuthor
	SourceInline
)

// Property is a resolved declaration and where it came from.
type Property struct {
	Name      string
	Value     string
	Important bool
	Source    Source
}

// Computed maps property names to their winning declaration.
type Computed map[string]Property

// Engine resolves dialog styles from author stylesheets and inline
// declarations on top of a base style.
type Engine struct {
	base         Style
	authorStyles []*css.Stylesheet
}

// NewEngine creates a new style engine over base.
func NewEngine(base Style) *Engine {
	return &Engine{base: base}
}

// AddStylesheet adds an author stylesheet to the style engine
func (e *Engine) AddStylesheet(stylesheet *css.Stylesheet) {
	if stylesheet != nil {
		e.authorStyles = append(e.authorStyles, stylesheet)
	}
}

// Compute resolves the style of the dialog with the given id and inline
// style attribute. Rules for "*", "dialog" and "#id" apply in source order,
// then the inline declarations. Values that fail to parse are ignored.
func (e *Engine) Compute(id, inline string) Style {
	computed := e.Declarations(id, inline)
	s := e.base

	if p, ok := computed["background-color"]; ok {
		setColor(&s.Fill, p.Value)
	} else if p, ok := computed["background"]; ok {
		setColor(&s.Fill, p.Value)
	}
	if p, ok := computed["border-color"]; ok {
		setColor(&s.Border, p.Value)
	}
	if p, ok := computed["color"]; ok {
		setColor(&s.Text, p.Value)
	}
	if p, ok := computed["indicator-color"]; ok {
		setColor(&s.Indicator, p.Value)
	}
	if p, ok := computed["border-width"]; ok {
		if w, err := ParseLength(p.Value); err == nil {
			s.BorderWidth = w
		}
	}
	return s
}

// Declarations returns the winning declaration per property.
func (e *Engine) Declarations(id, inline string) Computed {
	computed := make(Computed)
	selectors := []string{"*", "dialog"}
	if id != "" {
		selectors = append(selectors, "#"+id, "dialog#"+id)
	}

	for _, sheet := range e.authorStyles {
		apply(computed, sheet.Matching(selectors...), SourceAuthor)
	}
	if inline != "" {
		apply(computed, css.ParseDeclarations(inline), SourceInline)
	}
	return computed
}

// apply merges declarations. A later declaration wins unless the existing
// one is !important and the new one is not.
func apply(computed Computed, declarations []*css.Declaration, source Source) {
	for _, decl := range declarations {
		existing, exists := computed[decl.Property]
		if exists && existing.Important && !decl.Important {
			continue
		}
		computed[decl.Property] = Property{
			Name:      decl.Property,
			Value:     decl.Value,
			Important: decl.Important,
			Source:    source,
		}
	}
}

func setColor(dst *color.NRGBA, value string) {
	if c, err := ParseColor(value); err == nil {
		*dst = c
	}
}
