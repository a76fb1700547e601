package smtlib2

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnexpectedEOF is returned when the character stream ends while more
// input is required, e.g. inside an unterminated list or pipe-quoted atom.
var ErrUnexpectedEOF = errors.New("smtlib2: unexpected end of solver output")

// SExpr is a node in a generic s-expression tree.
type SExpr interface {
	fmt.Stringer
	sexprNode()
}

func (Atom) sexprNode() {}
func (List) sexprNode() {}

// Atom is a single token. Pipe-quoted tokens are stored without the pipes.
type Atom string

// String returns the atom's text.
func (a Atom) String() string { return string(a) }

// List is an ordered sequence of sub-expressions.
type List []SExpr

// String returns the parenthesized form of the list.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Parser reads generic s-expressions from a character stream, used to parse
// arbitrary solver output such as model terms. The parser owns the stream
// for its lifetime and never consumes past the expression it was asked for.
type Parser struct {
	r *bufio.Reader
}

// NewParser returns a parser over r.
func NewParser(r io.Reader) *Parser {
	return &Parser{r: bufio.NewReader(r)}
}

// Parse consumes one s-expression from the stream. It returns
// ErrUnexpectedEOF if the stream ends where more input is required.
func (p *Parser) Parse() (SExpr, error) {
	if err := p.skipSpace(); err != nil {
		return nil, err
	}

	c, err := p.peek()
	if err == io.EOF {
		return nil, ErrUnexpectedEOF
	} else if err != nil {
		return nil, err
	}

	if c != '(' {
		return p.parseAtom()
	}
	p.r.ReadByte() // consume '('

	var list List
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		c, err := p.peek()
		if err == io.EOF {
			return nil, ErrUnexpectedEOF // unterminated list
		} else if err != nil {
			return nil, err
		}
		if c == ')' {
			p.r.ReadByte()
			return list, nil
		}

		sub, err := p.Parse()
		if err != nil {
			return nil, err
		}
		list = append(list, sub)
	}
}

// parseAtom reads one token. A leading pipe quotes the token up to the next
// pipe, with no escape processing; otherwise the token runs until
// whitespace, a parenthesis, or a comment.
func (p *Parser) parseAtom() (SExpr, error) {
	c, err := p.r.ReadByte()
	if err == io.EOF {
		return nil, ErrUnexpectedEOF
	} else if err != nil {
		return nil, err
	}

	var sb strings.Builder
	if c == '|' {
		for {
			c, err := p.r.ReadByte()
			if err == io.EOF {
				return nil, ErrUnexpectedEOF // unterminated quoted atom
			} else if err != nil {
				return nil, err
			}
			if c == '|' {
				return Atom(sb.String()), nil
			}
			sb.WriteByte(c)
		}
	}

	sb.WriteByte(c)
	for {
		c, err := p.peek()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if isSpace(c) || c == '(' || c == ')' || c == ';' {
			break
		}
		p.r.ReadByte()
		sb.WriteByte(c)
	}
	return Atom(sb.String()), nil
}

// skipSpace advances past whitespace and ";" line comments. Reaching end of
// stream here is not an error; the caller decides whether more input was
// required.
func (p *Parser) skipSpace() error {
	for {
		c, err := p.peek()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if c == ';' {
			for c != '\n' {
				p.r.ReadByte()
				if c, err = p.peek(); err == io.EOF {
					return nil
				} else if err != nil {
					return err
				}
			}
			continue
		}
		if !isSpace(c) {
			return nil
		}
		p.r.ReadByte()
	}
}

// peek returns the next character without consuming it.
func (p *Parser) peek() (byte, error) {
	b, err := p.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
