package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEvalString() {
	r, err := calc.EvalString("2 + 3 * 4")
	fmt.Println(r, err)
	_, err = calc.EvalString("1/0")
	fmt.Println(err)

	// Output:
	// 14 <nil>
	// 2: division by zero
}

func ExampleParse() {
	a, _ := calc.ParseString("-2^2 + sin(PI/2)")
	r, _ := a.Eval()
	fmt.Println(a, "=", r)

	// Output:
	// ([(-[2]) ^ (2)] + [sin([PI] / [2])]) = 5
}

func ExampleKindOf() {
	_, err := calc.EvalString("asin(2)")
	switch calc.KindOf(err) {
	case calc.DomainError:
		fmt.Println("domain error:", err)
	case 0:
		fmt.Println("no error")
	}

	// Output:
	// domain error: 1: 2 outside domain of asin
}

func ExampleFormat() {
	r, _ := calc.EvalString("10^21 + 0.5")
	fmt.Println(r)
	fmt.Println(calc.Format(r))

	// Output:
	// 1e+21
	// 1000000000000000000000
}
