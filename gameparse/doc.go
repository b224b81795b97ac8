// Package gameparse turns a textual game specification into a canonical
// in-memory representation: either the rows of a finite zero-sum payoff
// matrix or a continuous convex-concave game given by a payoff expression
// over two named variables and two closed intervals.
//
// Grammar (hand-written recursive descent, no error recovery):
//
//	game       := matrix | continuous
//	matrix     := '[' row (',' row)* ']'
//	row        := '[' rational (',' rational)* ']'
//	rational   := ['+'|'-'] number ['/' number]     // fractions: 1/3, -2/3
//	continuous := ident '(' ident ',' ident ')' '=' expr
//	              ',' ident 'in' interval ',' ident 'in' interval
//	interval   := '[' rational ',' rational ']'
//	expr       := term (('+' | '-') term)*
//	term       := factor (('*' | '/')? factor)*     // juxtaposition multiplies: 2x, x y
//	factor     := ('-' | '+') factor | primary ('^' integer)?
//	primary    := number | ident | '(' expr ')'
//	number     := digits ['.' digits] [('e'|'E') ['+'|'-'] digits]
//
// Examples of the two accepted shapes:
//
//	[[1,-1],[-1,1]]
//	f(x,y) = x^2 - y^2, x in [-1,1], y in [-1,1]
//
// Behavior:
//
//   - Numeric literals are lowered into the caller-chosen field scalar at
//     parse time via field.Elem.Parse, so exact decimals stay exact under
//     rational arithmetic.
//   - Parsing stops at the first syntax violation and returns a
//     *ParseError carrying the byte offset, 1-based line and column, and
//     a human-readable message.
//   - A parsed matrix re-serialized with FormatMatrix parses back
//     entry-for-entry equal (round-trip guarantee).
//   - The payoff expression is kept as an AST supporting Eval and exact
//     symbolic partial differentiation (Diff), which the continuous
//     solver uses for subgradients.
//
// Semantic checks performed after a syntactically valid parse:
//
//   - the two declared variables must be distinct;
//   - the expression may reference only the declared variables;
//   - each interval must satisfy lo ≤ hi;
//   - exactly one interval must be declared per variable.
//
// Example usage:
//
//	spec, err := gameparse.Parse[field.Rat]("[[1,-1],[-1,1]]")
//	if err != nil {
//	    var perr *gameparse.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Printf("line %d, col %d: %s\n", perr.Line, perr.Col, perr.Msg)
//	    }
//	    return
//	}
//	g, err := matrixgame.New(spec.Rows)
package gameparse
