package pagination

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Paginate word-wraps text into lines of at most maxCharsPerLine cells and
// groups the lines into pages of at most maxLinesPerPage lines. Each page is
// returned as its lines joined with "\n".
//
// An explicit newline ends both the current line and the current page.
// Words are never split: a word wider than maxCharsPerLine sits alone on an
// overflowing line. Budgets below 1 are treated as 1. Empty or
// whitespace-only text yields no pages.
func Paginate(text string, maxCharsPerLine, maxLinesPerPage int) []string {
	if maxCharsPerLine < 1 {
		maxCharsPerLine = 1
	}
	if maxLinesPerPage < 1 {
		maxLinesPerPage = 1
	}

	p := &pager{
		maxChars: maxCharsPerLine,
		maxLines: maxLinesPerPage,
	}

	runes := []rune(norm.NFC.String(text))

	var word strings.Builder
	for i, r := range runes {
		isNewLine := r == '\n'
		isLastChar := i == len(runes)-1

		if !isNewLine {
			word.WriteRune(r)
		}

		if !unicode.IsSpace(r) && !isLastChar {
			continue
		}

		p.place(word.String())
		word.Reset()

		if isNewLine || isLastChar {
			p.flushLine()
			p.closePage()
		}
	}

	return p.pages
}

// Lines splits a page produced by Paginate back into its lines.
func Lines(page string) []string {
	if page == "" {
		return nil
	}
	return strings.Split(page, "\n")
}

// pager accumulates lines and pages for Paginate.
type pager struct {
	maxChars int
	maxLines int

	line      strings.Builder
	lineWidth int
	pageLines []string
	pages     []string
}

// place appends word to the current line, flushing the line first when the
// word's visible part would overflow it. Trailing whitespace of a word
// hangs past the budget and is trimmed on flush.
func (p *pager) place(word string) {
	if word == "" {
		return
	}

	visible := cells(strings.TrimRightFunc(word, unicode.IsSpace))
	if visible > 0 && p.lineWidth+visible > p.maxChars && p.hasText() {
		p.flushLine()
	}

	p.line.WriteString(word)
	p.lineWidth += cells(word)
}

// cells returns the monospaced width of s. Whitespace, tabs included,
// takes at least one cell.
func cells(s string) int {
	n := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w < 1 && unicode.IsSpace(r) {
			w = 1
		}
		n += w
	}
	return n
}

// hasText reports whether the live line holds anything but whitespace.
func (p *pager) hasText() bool {
	return strings.TrimSpace(p.line.String()) != ""
}

// flushLine moves the live line into the page buffer. Blank lines are
// dropped, so consecutive newlines never produce blank pages.
func (p *pager) flushLine() {
	line := strings.TrimRightFunc(p.line.String(), unicode.IsSpace)
	p.line.Reset()
	p.lineWidth = 0

	if line == "" {
		return
	}

	p.pageLines = append(p.pageLines, line)
	if len(p.pageLines) >= p.maxLines {
		p.closePage()
	}
}

// closePage emits the buffered lines as a page.
func (p *pager) closePage() {
	if len(p.pageLines) == 0 {
		return
	}
	p.pages = append(p.pages, strings.Join(p.pageLines, "\n"))
	p.pageLines = p.pageLines[:0]
}
