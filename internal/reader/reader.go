// Package reader implements §4.1: tokenising and parsing KLambda text
// into a tree of values.Value forms (symbol, int, float, string, and
// cons), with symbol sanitisation and top-level string dropping.
package reader

import (
	"strconv"

	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/lexer"
	"github.com/klambda-lang/klambda/internal/values"
)

type parser struct {
	toks []lexer.Token
	pos  int
	sani *Sanitizer
}

func (p *parser) cur() lexer.Token { return p.toks[p.pos] }

func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) readForm() (values.Value, error) {
	tok := p.cur()
	switch tok.Type {
	case lexer.LPAREN:
		p.advance()
		var elems []values.Value
		for p.cur().Type != lexer.RPAREN {
			if p.cur().Type == lexer.EOF {
				return values.Value{}, errs.NewAt(errs.Read,
					errs.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset},
					"unbalanced parenthesis: '(' opened here is never closed")
			}
			v, err := p.readForm()
			if err != nil {
				return values.Value{}, err
			}
			elems = append(elems, v)
		}
		p.advance() // consume ')'
		return values.ConsSeq(elems...), nil

	case lexer.RPAREN:
		return values.Value{}, errs.NewAt(errs.Read,
			errs.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset},
			"unexpected ')'")

	case lexer.SYMBOL:
		p.advance()
		return values.Sym(p.sani.Rename(tok.Value)), nil

	case lexer.STRING:
		p.advance()
		return values.Str(tok.Value), nil

	case lexer.INT:
		p.advance()
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return values.Value{}, errs.NewAt(errs.Read,
				errs.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset},
				"integer literal %q out of range", tok.Value)
		}
		return values.Int(n), nil

	case lexer.FLOAT:
		p.advance()
		f, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return values.Value{}, errs.NewAt(errs.Read,
				errs.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset},
				"malformed float literal %q", tok.Value)
		}
		return values.Float(f), nil

	default: // EOF or ILLEGAL
		return values.Value{}, errs.NewAt(errs.Read,
			errs.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Offset},
			"unexpected end of input")
	}
}

// ReadAll tokenises and parses the full source text into its
// top-level forms, dropping top-level strings (§4.1: "comments from
// the bootstrap sources"), using a fresh Sanitizer. It returns the
// Sanitizer used, so callers can later Unrename symbols for printing
// (`str`).
func ReadAll(src string) ([]values.Value, *Sanitizer, error) {
	return ReadAllWith(src, NewSanitizer())
}

// ReadAllWith is ReadAll but accumulates renames into sani instead of
// a fresh Sanitizer, so a driver reading many files into one Context
// keeps a single consistent rename table for `str`/Unrename (§4.1).
func ReadAllWith(src string, sani *Sanitizer) ([]values.Value, *Sanitizer, error) {
	toks, err := lexer.TokenizeAll(src)
	if err != nil {
		return nil, nil, err
	}
	p := &parser{toks: toks, sani: sani}

	var forms []values.Value
	for p.cur().Type != lexer.EOF {
		if p.cur().Type == lexer.STRING {
			p.advance()
			continue
		}
		v, err := p.readForm()
		if err != nil {
			return nil, nil, err
		}
		forms = append(forms, v)
	}
	return forms, p.sani, nil
}
