package gameparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saddlekit/zerosum/field"
)

// tokKind enumerates lexical token classes.
type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokLBracket // [
	tokRBracket // ]
	tokLParen   // (
	tokRParen   // )
	tokComma    // ,
	tokPlus     // +
	tokMinus    // -
	tokStar     // *
	tokSlash    // /
	tokCaret    // ^
	tokEquals   // =
)

// token is a lexeme with its source location.
type token struct {
	kind   tokKind
	text   string
	offset int
	line   int
	col    int
}

// describe names a token for error messages.
func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return fmt.Sprintf("number %q", t.text)
	case tokIdent:
		return fmt.Sprintf("identifier %q", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

// lex splits input into tokens, tracking 1-based line/column positions.
// It stops at the first unexpected character.
func lex(input string) ([]token, *ParseError) {
	var toks []token
	line, col := 1, 1
	i := 0
	for i < len(input) {
		c := input[i]

		// Whitespace: advance position bookkeeping only.
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			if c == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			i++

			continue
		}

		start, startLine, startCol := i, line, col

		switch {
		case c >= '0' && c <= '9':
			// digits ['.' digits] [('e'|'E') ['+'|'-'] digits]
			for i < len(input) && input[i] >= '0' && input[i] <= '9' {
				i++
			}
			if i < len(input) && input[i] == '.' {
				i++
				for i < len(input) && input[i] >= '0' && input[i] <= '9' {
					i++
				}
			}
			// Exponent only when followed by a digit (with optional sign),
			// otherwise the 'e' starts an identifier.
			if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
				j := i + 1
				if j < len(input) && (input[j] == '+' || input[j] == '-') {
					j++
				}
				if j < len(input) && input[j] >= '0' && input[j] <= '9' {
					i = j
					for i < len(input) && input[i] >= '0' && input[i] <= '9' {
						i++
					}
				}
			}
			toks = append(toks, token{tokNumber, input[start:i], start, startLine, startCol})
			col += i - start

		case isIdentStart(c):
			for i < len(input) && isIdentPart(input[i]) {
				i++
			}
			toks = append(toks, token{tokIdent, input[start:i], start, startLine, startCol})
			col += i - start

		default:
			var k tokKind
			switch c {
			case '[':
				k = tokLBracket
			case ']':
				k = tokRBracket
			case '(':
				k = tokLParen
			case ')':
				k = tokRParen
			case ',':
				k = tokComma
			case '+':
				k = tokPlus
			case '-':
				k = tokMinus
			case '*':
				k = tokStar
			case '/':
				k = tokSlash
			case '^':
				k = tokCaret
			case '=':
				k = tokEquals
			default:
				return nil, &ParseError{
					Offset: start, Line: startLine, Col: startCol,
					Msg: fmt.Sprintf("unexpected character %q", string(c)),
				}
			}
			toks = append(toks, token{k, input[i : i+1], start, startLine, startCol})
			i++
			col++
		}
	}
	toks = append(toks, token{tokEOF, "", len(input), line, col})

	return toks, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// parser is the recursive-descent state: a token stream plus the
// variable names once a continuous declaration head has been read.
type parser[T field.Elem[T]] struct {
	toks       []token
	pos        int
	xvar, yvar string
}

func (p *parser[T]) cur() token { return p.toks[p.pos] }

func (p *parser[T]) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

// errAt builds a located ParseError for tok.
func errAt(tok token, msg string, cause error) *ParseError {
	return &ParseError{Offset: tok.offset, Line: tok.line, Col: tok.col, Msg: msg, Err: cause}
}

// expect consumes a token of kind k or fails with "expected ... found ...".
func (p *parser[T]) expect(k tokKind, what string) (token, *ParseError) {
	t := p.cur()
	if t.kind != k {
		return t, errAt(t, fmt.Sprintf("expected %s, found %s", what, t.describe()), nil)
	}
	p.advance()

	return t, nil
}

// Parse reads a complete game specification: a matrix literal or a
// continuous declaration (see package documentation for the grammar).
// The error, when non-nil, is always a *ParseError.
func Parse[T field.Elem[T]](input string) (*Spec[T], error) {
	toks, perr := lex(input)
	if perr != nil {
		return nil, perr
	}
	p := &parser[T]{toks: toks}

	var spec *Spec[T]
	switch p.cur().kind {
	case tokLBracket:
		rows, err := p.matrix()
		if err != nil {
			return nil, err
		}
		spec = &Spec[T]{Kind: KindMatrix, Rows: rows}
	case tokIdent:
		c, err := p.continuous()
		if err != nil {
			return nil, err
		}
		spec = &Spec[T]{Kind: KindContinuous, Continuous: c}
	default:
		return nil, errAt(p.cur(), fmt.Sprintf("expected a matrix literal or a function declaration, found %s", p.cur().describe()), nil)
	}

	if t := p.cur(); t.kind != tokEOF {
		return nil, errAt(t, fmt.Sprintf("unexpected trailing input: %s", t.describe()), nil)
	}

	return spec, nil
}

// ParseMatrix reads a matrix-game literal, rejecting continuous input.
func ParseMatrix[T field.Elem[T]](input string) ([][]T, error) {
	spec, err := Parse[T](input)
	if err != nil {
		return nil, err
	}
	if spec.Kind != KindMatrix {
		return nil, &ParseError{Line: 1, Col: 1, Msg: "expected a matrix literal, found a continuous declaration"}
	}

	return spec.Rows, nil
}

// ParseContinuous reads a continuous-game declaration, rejecting matrix
// input.
func ParseContinuous[T field.Elem[T]](input string) (*Continuous[T], error) {
	spec, err := Parse[T](input)
	if err != nil {
		return nil, err
	}
	if spec.Kind != KindContinuous {
		return nil, &ParseError{Line: 1, Col: 1, Msg: "expected a continuous declaration, found a matrix literal"}
	}

	return spec.Continuous, nil
}

// matrix := '[' row (',' row)* ']'
func (p *parser[T]) matrix() ([][]T, *ParseError) {
	if _, err := p.expect(tokLBracket, "'['"); err != nil {
		return nil, err
	}

	var rows [][]T
	for {
		row, err := p.row()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		if p.cur().kind != tokComma {
			break
		}
		p.advance()
	}

	if _, err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}

	return rows, nil
}

// row := '[' rational (',' rational)* ']'
func (p *parser[T]) row() ([]T, *ParseError) {
	if _, err := p.expect(tokLBracket, "'['"); err != nil {
		return nil, err
	}

	var row []T
	for {
		v, err := p.rational()
		if err != nil {
			return nil, err
		}
		row = append(row, v)
		if p.cur().kind != tokComma {
			break
		}
		p.advance()
	}

	if _, err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}

	return row, nil
}

// rational := ['+'|'-'] number ['/' number]
//
// The fraction form exists so that exact rational matrices re-serialized
// by FormatMatrix (entries like "1/3") parse back losslessly.
func (p *parser[T]) rational() (T, *ParseError) {
	var zero T

	negated := false
	switch p.cur().kind {
	case tokMinus:
		negated = true
		p.advance()
	case tokPlus:
		p.advance()
	}

	numTok, err := p.expect(tokNumber, "a number")
	if err != nil {
		return zero, err
	}
	v, perr := zero.Parse(numTok.text)
	if perr != nil {
		return zero, errAt(numTok, fmt.Sprintf("malformed numeric literal %q", numTok.text), perr)
	}

	// Optional denominator; dividing here keeps the fraction form valid
	// under both instantiations and exact under rationals.
	if p.cur().kind == tokSlash {
		p.advance()
		denTok, err := p.expect(tokNumber, "a denominator")
		if err != nil {
			return zero, err
		}
		den, perr := zero.Parse(denTok.text)
		if perr != nil {
			return zero, errAt(denTok, fmt.Sprintf("malformed numeric literal %q", denTok.text), perr)
		}
		if v, perr = v.Div(den); perr != nil {
			return zero, errAt(denTok, "zero denominator", perr)
		}
	}

	if negated {
		v = v.Neg()
	}

	return v, nil
}

// continuous := ident '(' ident ',' ident ')' '=' expr
//
//	',' ident 'in' interval ',' ident 'in' interval
func (p *parser[T]) continuous() (*Continuous[T], *ParseError) {
	nameTok, err := p.expect(tokIdent, "a function name")
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	xTok, err := p.expect(tokIdent, "a variable name")
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(tokComma, "','"); err != nil {
		return nil, err
	}
	yTok, err := p.expect(tokIdent, "a variable name")
	if err != nil {
		return nil, err
	}
	if yTok.text == xTok.text {
		return nil, errAt(yTok, fmt.Sprintf("variables must be distinct, %q declared twice", yTok.text), nil)
	}
	if _, err = p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	if _, err = p.expect(tokEquals, "'='"); err != nil {
		return nil, err
	}

	p.xvar, p.yvar = xTok.text, yTok.text

	payoff, err := p.expr()
	if err != nil {
		return nil, err
	}

	c := &Continuous[T]{
		Name:   nameTok.text,
		XVar:   xTok.text,
		YVar:   yTok.text,
		Payoff: payoff,
	}

	// Two interval declarations, one per variable, in either order.
	seen := map[string]bool{}
	for range [2]struct{}{} {
		if _, err = p.expect(tokComma, "','"); err != nil {
			return nil, err
		}
		varTok, err := p.expect(tokIdent, "a variable name")
		if err != nil {
			return nil, err
		}
		if varTok.text != c.XVar && varTok.text != c.YVar {
			return nil, errAt(varTok, fmt.Sprintf("unknown variable %q in interval declaration", varTok.text), nil)
		}
		if seen[varTok.text] {
			return nil, errAt(varTok, fmt.Sprintf("duplicate interval declaration for %q", varTok.text), nil)
		}
		seen[varTok.text] = true

		inTok, err := p.expect(tokIdent, "'in'")
		if err != nil {
			return nil, err
		}
		if inTok.text != "in" {
			return nil, errAt(inTok, fmt.Sprintf("expected 'in', found %s", inTok.describe()), nil)
		}

		iv, err := p.interval()
		if err != nil {
			return nil, err
		}
		if varTok.text == c.XVar {
			c.X = iv
		} else {
			c.Y = iv
		}
	}

	return c, nil
}

// interval := '[' rational ',' rational ']' with lo ≤ hi.
func (p *parser[T]) interval() (Interval[T], *ParseError) {
	var iv Interval[T]

	open, err := p.expect(tokLBracket, "'['")
	if err != nil {
		return iv, err
	}
	if iv.Lo, err = p.rational(); err != nil {
		return iv, err
	}
	if _, err = p.expect(tokComma, "','"); err != nil {
		return iv, err
	}
	if iv.Hi, err = p.rational(); err != nil {
		return iv, err
	}
	if _, err = p.expect(tokRBracket, "']'"); err != nil {
		return iv, err
	}
	if iv.Lo.Cmp(iv.Hi) > 0 {
		return iv, errAt(open, fmt.Sprintf("interval lower bound %s exceeds upper bound %s", iv.Lo, iv.Hi), nil)
	}

	return iv, nil
}

// expr := term (('+' | '-') term)*
func (p *parser[T]) expr() (Expr[T], *ParseError) {
	e, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().kind {
		case tokPlus:
			p.advance()
			rhs, err := p.term()
			if err != nil {
				return nil, err
			}
			e = add[T]{u: e, w: rhs}
		case tokMinus:
			p.advance()
			rhs, err := p.term()
			if err != nil {
				return nil, err
			}
			e = sub[T]{u: e, w: rhs}
		default:
			return e, nil
		}
	}
}

// term := factor (('*' | '/')? factor)*
//
// Juxtaposition multiplies, so "2x" and "x y" read as products — the
// usual mathematical notation for kernels like 2xy.
func (p *parser[T]) term() (Expr[T], *ParseError) {
	e, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().kind {
		case tokStar:
			p.advance()
			rhs, err := p.factor()
			if err != nil {
				return nil, err
			}
			e = mul[T]{u: e, w: rhs}
		case tokSlash:
			p.advance()
			rhs, err := p.factor()
			if err != nil {
				return nil, err
			}
			e = div[T]{u: e, w: rhs}
		case tokNumber, tokIdent, tokLParen:
			rhs, err := p.factor()
			if err != nil {
				return nil, err
			}
			e = mul[T]{u: e, w: rhs}
		default:
			return e, nil
		}
	}
}

// factor := ('-' | '+') factor | primary ('^' integer)?
func (p *parser[T]) factor() (Expr[T], *ParseError) {
	switch p.cur().kind {
	case tokMinus:
		p.advance()
		inner, err := p.factor()
		if err != nil {
			return nil, err
		}

		return neg[T]{u: inner}, nil
	case tokPlus:
		p.advance()

		return p.factor()
	}

	prim, err := p.primary()
	if err != nil {
		return nil, err
	}

	if p.cur().kind == tokCaret {
		p.advance()
		expTok, err := p.expect(tokNumber, "an exponent")
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.Atoi(expTok.text)
		if convErr != nil || n < 0 {
			return nil, errAt(expTok, fmt.Sprintf("exponent must be a non-negative integer, found %q", expTok.text), nil)
		}

		return pow[T]{base: prim, n: n}, nil
	}

	return prim, nil
}

// primary := number | ident | '(' expr ')'
func (p *parser[T]) primary() (Expr[T], *ParseError) {
	var zero T
	t := p.cur()
	switch t.kind {
	case tokNumber:
		p.advance()
		v, perr := zero.Parse(t.text)
		if perr != nil {
			return nil, errAt(t, fmt.Sprintf("malformed numeric literal %q", t.text), perr)
		}

		return num[T]{v: v}, nil

	case tokIdent:
		p.advance()
		switch t.text {
		case p.xvar:
			return vr[T]{v: VarX, name: t.text}, nil
		case p.yvar:
			return vr[T]{v: VarY, name: t.text}, nil
		default:
			return nil, errAt(t, fmt.Sprintf("unknown variable %q", t.text), nil)
		}

	case tokLParen:
		p.advance()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return e, nil

	default:
		return nil, errAt(t, fmt.Sprintf("expected a number, a variable or '(', found %s", t.describe()), nil)
	}
}

// FormatMatrix re-serializes payoff rows into the textual matrix-literal
// shape accepted by Parse. Formatting then re-parsing yields rows equal
// entry-for-entry to the input (round-trip guarantee).
func FormatMatrix[T field.Elem[T]](rows [][]T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range rows {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(v.String())
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}
