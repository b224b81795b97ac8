package gameparse_test

import (
	"testing"

	"github.com/saddlekit/zerosum/field"
	"github.com/saddlekit/zerosum/gameparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_MatrixBasic verifies the canonical matrix-literal shape.
func TestParse_MatrixBasic(t *testing.T) {
	spec, err := gameparse.Parse[field.Float]("[[1,-1],[-1,1]]")
	require.NoError(t, err)
	require.Equal(t, gameparse.KindMatrix, spec.Kind)
	assert.Equal(t, [][]field.Float{{1, -1}, {-1, 1}}, spec.Rows)
	assert.Nil(t, spec.Continuous)
}

// TestParse_MatrixWhitespaceAndSigns verifies tolerance for interior
// whitespace, explicit '+' signs and exponent notation.
func TestParse_MatrixWhitespaceAndSigns(t *testing.T) {
	rows, err := gameparse.ParseMatrix[field.Float]("[ [ +1 , -2.5 ] ,\n [ 3e2 , 0 ] ]")
	require.NoError(t, err)
	assert.Equal(t, [][]field.Float{{1, -2.5}, {300, 0}}, rows)
}

// TestParse_MatrixRational verifies fraction entries under exact
// arithmetic.
func TestParse_MatrixRational(t *testing.T) {
	rows, err := gameparse.ParseMatrix[field.Rat]("[[1/3,-2/3]]")
	require.NoError(t, err)
	third, err2 := field.RatFromFrac(1, 3)
	require.NoError(t, err2)
	assert.Equal(t, 0, rows[0][0].Cmp(third))
	assert.Equal(t, 0, rows[0][1].Cmp(third.Mul(field.RatFromInt(-2))))
}

// TestFormatMatrix_RoundTrip verifies parse → format → parse equality
// for both field instantiations.
func TestFormatMatrix_RoundTrip(t *testing.T) {
	const text = "[[1,-1,0.5],[-1,1,2]]"

	rows, err := gameparse.ParseMatrix[field.Float](text)
	require.NoError(t, err)
	again, err := gameparse.ParseMatrix[field.Float](gameparse.FormatMatrix(rows))
	require.NoError(t, err)
	assert.Equal(t, rows, again, "float matrices must round-trip")

	rrows, err := gameparse.ParseMatrix[field.Rat]("[[1/3,2],[-5/7,0]]")
	require.NoError(t, err)
	ragain, err := gameparse.ParseMatrix[field.Rat](gameparse.FormatMatrix(rrows))
	require.NoError(t, err)
	for i := range rrows {
		for j := range rrows[i] {
			assert.Equal(t, 0, rrows[i][j].Cmp(ragain[i][j]), "entry (%d,%d)", i, j)
		}
	}
}

// TestParse_ErrorLocations verifies that the first violation is reported
// with its line and column.
func TestParse_ErrorLocations(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		line  int
		col   int
	}{
		{"double comma", "[[1,,2]]", 1, 5},
		{"missing closing bracket", "[[1,2]", 1, 7},
		{"garbage", "[[1,2],{3}]", 1, 8},
		{"second line", "[[1,2],\n[3,]]", 2, 4},
		{"empty input", "", 1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gameparse.Parse[field.Float](tc.input)
			require.Error(t, err)

			var perr *gameparse.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.line, perr.Line, "line")
			assert.Equal(t, tc.col, perr.Col, "column")
			assert.NotEmpty(t, perr.Msg)
		})
	}
}

// TestParse_ContinuousBasic verifies the continuous declaration shape
// and expression evaluation.
func TestParse_ContinuousBasic(t *testing.T) {
	spec, err := gameparse.Parse[field.Float]("f(x,y) = x^2 - y^2, x in [-1,1], y in [-1,1]")
	require.NoError(t, err)
	require.Equal(t, gameparse.KindContinuous, spec.Kind)

	c := spec.Continuous
	require.NotNil(t, c)
	assert.Equal(t, "f", c.Name)
	assert.Equal(t, "x", c.XVar)
	assert.Equal(t, "y", c.YVar)
	assert.Equal(t, field.Float(-1), c.X.Lo)
	assert.Equal(t, field.Float(1), c.Y.Hi)

	v, err := c.Payoff.Eval(3, 2)
	require.NoError(t, err)
	assert.Equal(t, field.Float(5), v, "3²-2²")
}

// TestParse_ContinuousIntervalOrder verifies that interval declarations
// may appear in either variable order.
func TestParse_ContinuousIntervalOrder(t *testing.T) {
	c, err := gameparse.ParseContinuous[field.Float]("g(u,v) = u*v, v in [0,2], u in [-3,-1]")
	require.NoError(t, err)
	assert.Equal(t, field.Float(-3), c.X.Lo, "u interval goes to X")
	assert.Equal(t, field.Float(2), c.Y.Hi, "v interval goes to Y")
}

// TestParse_ImplicitMultiplication verifies juxtaposition products like
// the quadratic-kernel notation 2xy.
func TestParse_ImplicitMultiplication(t *testing.T) {
	c, err := gameparse.ParseContinuous[field.Float]("h(x,y) = 2x y + 3x, x in [0,1], y in [0,1]")
	require.NoError(t, err)

	v, err := c.Payoff.Eval(2, 5)
	require.NoError(t, err)
	assert.Equal(t, field.Float(26), v, "2·2·5 + 3·2")
}

// TestParse_ContinuousErrors verifies semantic rejections.
func TestParse_ContinuousErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"unknown variable", "f(x,y) = x + z, x in [0,1], y in [0,1]"},
		{"duplicate variable", "f(x,x) = x, x in [0,1], x in [0,1]"},
		{"duplicate interval", "f(x,y) = x, x in [0,1], x in [0,1]"},
		{"unknown interval variable", "f(x,y) = x, x in [0,1], z in [0,1]"},
		{"inverted interval", "f(x,y) = x, x in [1,0], y in [0,1]"},
		{"missing interval", "f(x,y) = x, x in [0,1]"},
		{"negative exponent", "f(x,y) = x^-2, x in [0,1], y in [0,1]"},
		{"fractional exponent", "f(x,y) = x^2.5, x in [0,1], y in [0,1]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gameparse.Parse[field.Float](tc.input)
			var perr *gameparse.ParseError
			require.ErrorAs(t, err, &perr, "input %q", tc.input)
		})
	}
}

// TestExpr_Diff verifies exact symbolic partial derivatives.
func TestExpr_Diff(t *testing.T) {
	c, err := gameparse.ParseContinuous[field.Float]("f(x,y) = x^2 - y^2 + 3x y, x in [-1,1], y in [-1,1]")
	require.NoError(t, err)

	// ∂f/∂x = 2x + 3y
	dx := c.Payoff.Diff(gameparse.VarX)
	v, err := dx.Eval(2, 1)
	require.NoError(t, err)
	assert.Equal(t, field.Float(7), v)

	// ∂f/∂y = -2y + 3x
	dy := c.Payoff.Diff(gameparse.VarY)
	v, err = dy.Eval(2, 1)
	require.NoError(t, err)
	assert.Equal(t, field.Float(4), v)
}

// TestExpr_DiffQuotient verifies the quotient rule.
func TestExpr_DiffQuotient(t *testing.T) {
	c, err := gameparse.ParseContinuous[field.Rat]("f(x,y) = x/(y + 2), x in [0,1], y in [0,1]")
	require.NoError(t, err)

	// ∂f/∂y = -x/(y+2)²; at (1, 0) this is -1/4.
	dy := c.Payoff.Diff(gameparse.VarY)
	var zero field.Rat
	v, err := dy.Eval(zero.One(), zero)
	require.NoError(t, err)
	want, err2 := field.RatFromFrac(-1, 4)
	require.NoError(t, err2)
	assert.Equal(t, 0, v.Cmp(want))
}

// TestExpr_DivisionByZero verifies that evaluation surfaces the field's
// checked-division error.
func TestExpr_DivisionByZero(t *testing.T) {
	c, err := gameparse.ParseContinuous[field.Float]("f(x,y) = 1/(x - x), x in [0,1], y in [0,1]")
	require.NoError(t, err)

	_, err = c.Payoff.Eval(1, 1)
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}

// TestContinuous_StringRoundTrip verifies that the re-serialized
// declaration parses to an expression with identical values.
func TestContinuous_StringRoundTrip(t *testing.T) {
	c, err := gameparse.ParseContinuous[field.Float]("f(x,y) = x^2 - y^2 + 2x y - (x + 1)/(y + 3), x in [-1,1], y in [-2,2]")
	require.NoError(t, err)

	again, err := gameparse.ParseContinuous[field.Float](c.String())
	require.NoError(t, err, "re-serialized form: %s", c.String())

	for _, pt := range [][2]field.Float{{0, 0}, {1, -1}, {0.5, 2}, {-1, 0.25}} {
		want, err := c.Payoff.Eval(pt[0], pt[1])
		require.NoError(t, err)
		got, err := again.Payoff.Eval(pt[0], pt[1])
		require.NoError(t, err)
		assert.InDelta(t, want.Float64(), got.Float64(), 1e-12, "at %v", pt)
	}
	assert.Equal(t, c.X, again.X)
	assert.Equal(t, c.Y, again.Y)
}

// TestParse_TrailingInput verifies the no-recovery contract.
func TestParse_TrailingInput(t *testing.T) {
	_, err := gameparse.Parse[field.Float]("[[1]] extra")
	var perr *gameparse.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Msg, "trailing")
}
