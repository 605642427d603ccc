// Package html reads dialog scripts: HTML documents in which every
// <dialog> element holds the text of one dialog box.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parser represents a dialog script parser
type Parser struct{}

// Dialog is one dialog box worth of text.
type Dialog struct {
	ID      string
	Speaker string
	Text    string
	// Style is the raw inline style attribute.
	Style string
}

// Script represents a parsed dialog script
type Script struct {
	Title string
	// StyleLinks are the hrefs of <link rel="stylesheet"> elements.
	StyleLinks []string
	Styles     []string
	Dialogs    []Dialog
}

// NewParser creates a new script parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses a script from a string
func (p *Parser) ParseString(content string) (*Script, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses a script from an io.Reader
func (p *Parser) Parse(r io.Reader) (*Script, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	script := &Script{}
	walk(doc, script)
	return script, nil
}

// walk collects the title, style blocks and dialogs in document order.
func walk(n *html.Node, script *Script) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Title:
			if script.Title == "" {
				script.Title = strings.TrimSpace(collapse(textOf(n)))
			}
			return
		case atom.Link:
			if href := attr(n, "href"); href != "" && isStylesheet(attr(n, "rel")) {
				script.StyleLinks = append(script.StyleLinks, href)
			}
			return
		case atom.Style:
			if css := textOf(n); strings.TrimSpace(css) != "" {
				script.Styles = append(script.Styles, css)
			}
			return
		case atom.Dialog:
			script.Dialogs = append(script.Dialogs, Dialog{
				ID:      attr(n, "id"),
				Speaker: attr(n, "data-speaker"),
				Text:    dialogText(n),
				Style:   attr(n, "style"),
			})
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, script)
	}
}

// dialogText flattens the content of a dialog element. Whitespace runs
// collapse to one space, <br> and paragraph boundaries become newlines and
// blank lines are dropped.
func dialogText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(collapse(n.Data))
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Br:
				b.WriteByte('\n')
				return
			case atom.Script, atom.Style:
				return
			case atom.P, atom.Div:
				b.WriteByte('\n')
				defer b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// textOf returns the concatenated text of n's descendants.
func textOf(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		} else {
			b.WriteString(textOf(c))
		}
	}
	return b.String()
}

// collapse replaces each whitespace run with a single space.
func collapse(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if isSpace(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

func isStylesheet(rel string) bool {
	for _, r := range strings.Fields(rel) {
		if strings.EqualFold(r, "stylesheet") {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
