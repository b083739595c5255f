package lexer

import (
	"strings"

	"github.com/klambda-lang/klambda/internal/errs"
)

// ASCII classification tables, built once at init the way the
// teacher's lexer pre-computes single-character token lookups instead
// of branching on every rune.
var (
	isWhitespace [128]bool
	isDigit      [128]bool
	isInitial    [128]bool // legal first character of a symbol
)

// specialInitials holds every non-alphanumeric character the grammar
// allows to start (and continue) a symbol: " = - * / + _ ? $ ! @ ~ .
// > < & % ' # ` ; : { }
const specialInitials = `"=-*/+_?$!@~.><&%'#` + "`" + `;:{}`

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
		isDigit[i] = ch >= '0' && ch <= '9'
	}
	for i := 'a'; i <= 'z'; i++ {
		isInitial[i] = true
	}
	for i := 'A'; i <= 'Z'; i++ {
		isInitial[i] = true
	}
	for _, c := range specialInitials {
		isInitial[c] = true
	}
}

// Lexer tokenises KLambda source text per §4.1's grammar.
type Lexer struct {
	src    string
	pos    int
	line   int
	col    int
}

func New(src string) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1, col: 1}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && int(l.peek()) < 128 && isWhitespace[l.peek()] {
		l.advance()
	}
}

// Next returns the next token, or an ILLEGAL token with an error
// describing the offending offset when the input is malformed
// (unterminated string, stray character) — read errors are fatal
// per §4.1.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Line: l.line, Column: l.col, Offset: l.pos}, nil
	}

	startLine, startCol, startOff := l.line, l.col, l.pos
	ch := l.peek()

	switch {
	case ch == '(':
		l.advance()
		return Token{Type: LPAREN, Value: "(", Line: startLine, Column: startCol, Offset: startOff}, nil
	case ch == ')':
		l.advance()
		return Token{Type: RPAREN, Value: ")", Line: startLine, Column: startCol, Offset: startOff}, nil
	case ch == '"':
		return l.readString(startLine, startCol, startOff)
	case isNumberStart(l):
		return l.readNumber(startLine, startCol, startOff), nil
	case int(ch) < 128 && isInitial[ch]:
		return l.readSymbol(startLine, startCol, startOff), nil
	default:
		l.advance()
		return Token{Type: ILLEGAL, Value: string(ch), Line: startLine, Column: startCol, Offset: startOff},
			errs.NewAt(errs.Read, errs.Position{Line: startLine, Column: startCol, Offset: startOff},
				"unexpected character %q", ch)
	}
}

// isNumberStart reports whether the lexer is positioned at a number:
// an optional sign immediately followed by a digit. A bare sign not
// followed by a digit (e.g. the `-` or `+` symbols themselves) is a
// symbol, not a number.
func isNumberStart(l *Lexer) bool {
	ch := l.peek()
	if int(ch) < 128 && isDigit[ch] {
		return true
	}
	if ch == '-' || ch == '+' {
		next := l.peekAt(1)
		return int(next) < 128 && isDigit[next]
	}
	return false
}

func (l *Lexer) readNumber(line, col, off int) Token {
	var b strings.Builder
	if l.peek() == '-' || l.peek() == '+' {
		b.WriteByte(l.advance())
	}
	for l.pos < len(l.src) && int(l.peek()) < 128 && isDigit[l.peek()] {
		b.WriteByte(l.advance())
	}
	typ := INT
	if l.peek() == '.' && int(l.peekAt(1)) < 128 && isDigit[l.peekAt(1)] {
		typ = FLOAT
		b.WriteByte(l.advance()) // '.'
		for l.pos < len(l.src) && int(l.peek()) < 128 && isDigit[l.peek()] {
			b.WriteByte(l.advance())
		}
	}
	return Token{Type: typ, Value: b.String(), Line: line, Column: col, Offset: off}
}

func (l *Lexer) readSymbol(line, col, off int) Token {
	var b strings.Builder
	for l.pos < len(l.src) {
		ch := l.peek()
		if int(ch) >= 128 {
			break
		}
		if isInitial[ch] || isDigit[ch] {
			b.WriteByte(l.advance())
			continue
		}
		break
	}
	return Token{Type: SYMBOL, Value: b.String(), Line: line, Column: col, Offset: off}
}

func (l *Lexer) readString(line, col, off int) (Token, error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return Token{Type: ILLEGAL, Line: line, Column: col, Offset: off},
				errs.NewAt(errs.Read, errs.Position{Line: line, Column: col, Offset: off},
					"unterminated string literal")
		}
		ch := l.peek()
		if ch == '"' {
			l.advance()
			break
		}
		if ch == '\\' {
			l.advance()
			esc := l.peek()
			switch esc {
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			case '\\':
				b.WriteByte('\\')
			default:
				return Token{Type: ILLEGAL, Line: line, Column: col, Offset: off},
					errs.NewAt(errs.Read, errs.Position{Line: l.line, Column: l.col, Offset: l.pos},
						"invalid escape sequence \\%c", esc)
			}
			l.advance()
			continue
		}
		b.WriteByte(l.advance())
	}
	return Token{Type: STRING, Value: b.String(), Line: line, Column: col, Offset: off}, nil
}

// TokenizeAll drains the lexer to a slice, stopping at the first
// error (reader failures are fatal per §4.1).
func TokenizeAll(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}
