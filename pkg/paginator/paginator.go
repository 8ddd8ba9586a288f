// Package paginator accumulates lines of text and splits them into pages
// that never exceed a configured size. Sizes are counted in runes, which is
// how Discord measures message and embed limits.
package paginator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxSize is the Discord message content limit.
const DefaultMaxSize = 2000

// ErrLineTooLong is returned by AddLine when a single line cannot fit on an
// empty page.
var ErrLineTooLong = errors.New("line too long for a page")

// Paginator splits lines into bounded pages. The zero value is not usable;
// call New.
type Paginator struct {
	prefix  string
	suffix  string
	linesep string
	maxSize int

	current []string
	count   int
	pages   []string
}

// Option configures a Paginator.
type Option func(*Paginator)

// WithPrefix sets the text every page starts with, e.g. "```".
func WithPrefix(prefix string) Option {
	return func(p *Paginator) { p.prefix = prefix }
}

// WithSuffix sets the text every page ends with.
func WithSuffix(suffix string) Option {
	return func(p *Paginator) { p.suffix = suffix }
}

// WithMaxSize sets the maximum page size in runes.
func WithMaxSize(n int) Option {
	return func(p *Paginator) {
		if n > 0 {
			p.maxSize = n
		}
	}
}

// WithLinesep sets the separator placed between lines.
func WithLinesep(sep string) Option {
	return func(p *Paginator) { p.linesep = sep }
}

// New returns an empty paginator. Without options pages have no prefix or
// suffix, lines are joined with "\n" and pages hold DefaultMaxSize runes.
func New(opts ...Option) *Paginator {
	p := &Paginator{
		linesep: "\n",
		maxSize: DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.reset()
	return p
}

// MaxSize returns the configured page size.
func (p *Paginator) MaxSize() int { return p.maxSize }

// MaxLineSize returns the longest line AddLine accepts. It leaves room for
// the prefix and suffix, the separators around them and the blank line
// AddLine appends when asked to.
func (p *Paginator) MaxLineSize() int {
	seps := 1
	if p.prefix != "" {
		seps++
	}
	if p.suffix != "" {
		seps++
	}
	return p.maxSize - runes(p.prefix) - runes(p.suffix) - seps*runes(p.linesep)
}

// AddLine appends a line, closing the current page first when the line would
// not fit. With empty set a blank line follows it. A line longer than
// MaxLineSize is rejected with ErrLineTooLong and nothing is added.
func (p *Paginator) AddLine(line string, empty bool) error {
	n := runes(line)
	if max := p.MaxLineSize(); n > max {
		return fmt.Errorf("%w: %d > %d runes", ErrLineTooLong, n, max)
	}

	sep := runes(p.linesep)
	need := n + sep
	if empty {
		need += sep
	}
	if p.count+need > p.maxSize-runes(p.suffix) && p.hasLines() {
		p.ClosePage()
	}

	p.current = append(p.current, line)
	p.count += n + sep
	if empty {
		p.current = append(p.current, "")
		p.count += sep
	}
	return nil
}

// ClosePage finishes the current page even if it has room left.
func (p *Paginator) ClosePage() {
	page := p.current
	if p.suffix != "" {
		page = append(page, p.suffix)
	}
	p.pages = append(p.pages, strings.Join(page, p.linesep))
	p.reset()
}

// Pages returns every finished page followed by the current one, if it has
// any lines. The paginator is left untouched.
func (p *Paginator) Pages() []string {
	out := make([]string, len(p.pages), len(p.pages)+1)
	copy(out, p.pages)
	if p.hasLines() {
		page := append([]string(nil), p.current...)
		if p.suffix != "" {
			page = append(page, p.suffix)
		}
		out = append(out, strings.Join(page, p.linesep))
	}
	return out
}

// Clear drops all pages and lines.
func (p *Paginator) Clear() {
	p.pages = nil
	p.reset()
}

func (p *Paginator) reset() {
	p.current = p.current[:0]
	p.count = 0
	if p.prefix != "" {
		p.current = append(p.current, p.prefix)
		p.count = runes(p.prefix) + runes(p.linesep)
	}
}

func (p *Paginator) hasLines() bool {
	if p.prefix != "" {
		return len(p.current) > 1
	}
	return len(p.current) > 0
}

// Split cuts line into chunks of at most size runes. It prefers to cut after
// whitespace and falls back to a hard cut inside words that are longer than
// size.
func Split(line string, size int) []string {
	if size <= 0 || runes(line) <= size {
		return []string{line}
	}

	var chunks []string
	rs := []rune(line)
	for len(rs) > size {
		cut := size
		for i := size; i > 0; i-- {
			if unicode.IsSpace(rs[i-1]) {
				cut = i
				break
			}
		}
		chunks = append(chunks, strings.TrimRightFunc(string(rs[:cut]), unicode.IsSpace))
		rs = rs[cut:]
	}
	if len(rs) > 0 {
		chunks = append(chunks, string(rs))
	}
	return chunks
}

func runes(s string) int { return utf8.RuneCountInString(s) }
