// Package field_test provides runnable examples for the scalar field
// instantiations. Each example runs via "go test -run Example" and shows
// both code and expected output.
package field_test

import (
	"fmt"

	"github.com/saddlekit/zerosum/field"
)

// ExampleRat demonstrates exact rational arithmetic: 2/3 + 1/6 is
// exactly 5/6, with the denominator reduced automatically.
func ExampleRat() {
	// 1) Build two rationals from integer fractions.
	a, err := field.RatFromFrac(2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	b, err := field.RatFromFrac(1, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Sum them; the result is exact, no rounding ever happens.
	sum := a.Add(b)

	// 3) Whole numbers print without a denominator.
	fmt.Println(sum)
	fmt.Println(sum.Add(b))
	// Output:
	// 5/6
	// 1
}

// ExampleFloat demonstrates the floating instantiation: fast, approximate,
// with division by zero reported as an error instead of an IEEE infinity.
func ExampleFloat() {
	// 1) Parse a decimal literal.
	var zero field.Float
	v, err := zero.Parse("0.25")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Ordinary arithmetic works directly on the value.
	fmt.Println(v.Mul(4))

	// 3) Division by zero is a checked failure.
	_, err = v.Div(0)
	fmt.Println(err)
	// Output:
	// 1
	// field: division by zero
}
