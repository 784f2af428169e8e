// Package chunker splits raw SQL text into an ordered chunk.String of
// tagged, positioned chunks.
//
// The split is purely lexical: runs of whitespace, comments, string
// literals, quoted identifiers, numbers, words, and symbols. No grammar is
// applied; keyword tagging is a dictionary lookup against the active
// dialect. Line-final whitespace is tagged distinctly so layout rules can
// stay pure functions of a single chunk.
package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlint/pkg/chunk"
	"github.com/leapstack-labs/sqlint/pkg/dialect"
)

// Splitter turns raw input into chunk strings for one dialect.
type Splitter struct {
	dialect *dialect.Dialect
}

// New creates a splitter for the given dialect. A nil dialect disables
// keyword tagging and quoted-identifier recognition beyond double quotes.
func New(d *dialect.Dialect) *Splitter {
	return &Splitter{dialect: d}
}

// Split scans input into an ordered, fully covering chunk string:
// concatenating the chunk contents reproduces the input exactly.
func (s *Splitter) Split(input string) chunk.String {
	sc := &scanner{input: input, line: 1, col: 1, splitter: s}
	var chunks []chunk.Positioned
	for {
		c, ok := sc.next()
		if !ok {
			break
		}
		chunks = append(chunks, c)
	}
	retagTrailingWhitespace(chunks)
	return chunk.NewString(chunks...)
}

// retagTrailingWhitespace marks whitespace runs that end a line (or the
// input) so layout rules can detect them without lookahead.
func retagTrailingWhitespace(chunks []chunk.Positioned) {
	for i := range chunks {
		if chunks[i].Tag != chunk.TagWhitespace {
			continue
		}
		if i == len(chunks)-1 || chunks[i+1].Tag == chunk.TagNewline {
			chunks[i].Tag = chunk.TagTrailingWhitespace
		}
	}
}

type scanner struct {
	input    string
	pos      int
	line     int
	col      int
	splitter *Splitter
}

// next returns the chunk starting at the current position.
func (sc *scanner) next() (chunk.Positioned, bool) {
	if sc.pos >= len(sc.input) {
		return chunk.Positioned{}, false
	}

	line, col := sc.line, sc.col
	start := sc.pos
	ch := sc.input[sc.pos]

	var tag string
	switch {
	case ch == '\n':
		sc.advance(1)
		tag = chunk.TagNewline
	case ch == '\r':
		if sc.peekAt(1) == '\n' {
			sc.advance(2)
		} else {
			sc.advance(1)
		}
		tag = chunk.TagNewline
	case ch == ' ' || ch == '\t':
		sc.consumeWhile(func(b byte) bool { return b == ' ' || b == '\t' })
		tag = chunk.TagWhitespace
	case ch == '-' && sc.peekAt(1) == '-':
		sc.consumeWhile(func(b byte) bool { return b != '\n' })
		tag = chunk.TagComment
	case ch == '/' && sc.peekAt(1) == '*':
		sc.consumeBlockComment()
		tag = chunk.TagComment
	case ch == '\'':
		sc.consumeQuoted('\'', "''")
		tag = chunk.TagString
	case sc.isIdentifierQuote(ch):
		_, close, escape := sc.identifierQuotes()
		sc.consumeQuoted(close, escape)
		tag = chunk.TagQuotedIdentifier
	case ch >= '0' && ch <= '9':
		sc.consumeWhile(isNumberByte)
		tag = chunk.TagNumber
	case sc.startsWord():
		sc.consumeWord()
		tag = sc.wordTag(sc.input[start:sc.pos])
	case strings.IndexByte("(),;.", ch) >= 0:
		sc.advance(1)
		tag = chunk.TagPunctuation
	default:
		sc.advance(1)
		tag = chunk.TagOperator
	}

	return chunk.New(sc.input[start:sc.pos], line, col, tag), true
}

func (sc *scanner) wordTag(word string) string {
	if sc.splitter.dialect != nil && sc.splitter.dialect.IsKeyword(word) {
		return chunk.TagKeyword
	}
	return chunk.TagWord
}

func (sc *scanner) isIdentifierQuote(ch byte) bool {
	open, _, _ := sc.identifierQuotes()
	return ch == open
}

func (sc *scanner) identifierQuotes() (open, close byte, escape string) {
	open, close = '"', '"'
	escape = `""`
	if sc.splitter.dialect != nil {
		ids := sc.splitter.dialect.Identifiers
		if ids.Quote != "" {
			open = ids.Quote[0]
		}
		if ids.QuoteEnd != "" {
			close = ids.QuoteEnd[0]
		}
		escape = ids.Escape
	}
	return open, close, escape
}

// consumeQuoted consumes an open quote through its matching close quote,
// honoring the dialect's escape sequence. An unterminated literal runs
// to EOF.
func (sc *scanner) consumeQuoted(close byte, escape string) {
	sc.advance(1) // opening quote
	for sc.pos < len(sc.input) {
		if escape != "" && strings.HasPrefix(sc.input[sc.pos:], escape) {
			sc.advance(len(escape))
			continue
		}
		if sc.input[sc.pos] == close {
			sc.advance(1)
			return
		}
		sc.advance(1)
	}
}

func (sc *scanner) consumeBlockComment() {
	sc.advance(2) // "/*"
	for sc.pos < len(sc.input) {
		if sc.input[sc.pos] == '*' && sc.peekAt(1) == '/' {
			sc.advance(2)
			return
		}
		sc.advance(1)
	}
}

func (sc *scanner) consumeWhile(keep func(byte) bool) {
	for sc.pos < len(sc.input) && keep(sc.input[sc.pos]) {
		sc.advance(1)
	}
}

func (sc *scanner) peekAt(offset int) byte {
	if sc.pos+offset >= len(sc.input) {
		return 0
	}
	return sc.input[sc.pos+offset]
}

// advance moves n bytes forward rune by rune, tracking line and column.
// Columns count runes, not bytes.
func (sc *scanner) advance(n int) {
	end := sc.pos + n
	for sc.pos < end && sc.pos < len(sc.input) {
		r, size := utf8.DecodeRuneInString(sc.input[sc.pos:])
		if r == '\n' {
			sc.line++
			sc.col = 1
		} else {
			sc.col++
		}
		sc.pos += size
	}
}

func (sc *scanner) startsWord() bool {
	r, _ := utf8.DecodeRuneInString(sc.input[sc.pos:])
	return r == '_' || unicode.IsLetter(r)
}

// consumeWord consumes a run of word runes. Decoding runes rather than
// bytes keeps non-ASCII identifiers in one chunk.
func (sc *scanner) consumeWord() {
	for sc.pos < len(sc.input) {
		r, size := utf8.DecodeRuneInString(sc.input[sc.pos:])
		if r != '_' && r != '$' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return
		}
		sc.advance(size)
	}
}

func isNumberByte(ch byte) bool {
	return ch >= '0' && ch <= '9' || ch == '.' || ch == 'e' || ch == 'E'
}
