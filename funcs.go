package calc

import (
	"math"
)

// funcKind selects an entry of the function table.
type funcKind int8

const (
	funcNone funcKind = iota
	funcSin
	funcCos
	funcTan
	funcAsin
	funcAcos
	funcAtan
	funcLog
	funcSqrt
	funcAbs
	funcExp
	funcCeil
	funcFloor
	funcRound
)

type mathFunc struct {
	name string
	f    func(float64) float64
	// domain reports whether f is defined at x.
	domain func(x float64) bool
}

// functable holds the functions callable from expressions. Trigonometric
// functions work in radians, log is the natural logarithm, and round rounds
// half to even.
var functable = [...]mathFunc{
	funcNone:  {},
	funcSin:   {"sin", math.Sin, reals},
	funcCos:   {"cos", math.Cos, reals},
	funcTan:   {"tan", math.Tan, reals},
	funcAsin:  {"asin", math.Asin, unit},
	funcAcos:  {"acos", math.Acos, unit},
	funcAtan:  {"atan", math.Atan, reals},
	funcLog:   {"log", math.Log, positive},
	funcSqrt:  {"sqrt", math.Sqrt, nonnegative},
	funcAbs:   {"abs", math.Abs, reals},
	funcExp:   {"exp", math.Exp, reals},
	funcCeil:  {"ceil", math.Ceil, reals},
	funcFloor: {"floor", math.Floor, reals},
	funcRound: {"round", math.RoundToEven, reals},
}

// funcnames maps function names to their table entries.
var funcnames = func() map[string]funcKind {
	m := make(map[string]funcKind, len(functable))
	for k, f := range functable {
		if f.name != "" {
			m[f.name] = funcKind(k)
		}
	}
	return m
}()

// constants maps constant names to their values.
var constants = map[string]float64{
	"PI": math.Pi,
	"π":  math.Pi,
	"E":  math.E,
}

func reals(x float64) bool       { return !math.IsNaN(x) }
func unit(x float64) bool        { return -1 <= x && x <= 1 }
func positive(x float64) bool    { return x > 0 }
func nonnegative(x float64) bool { return x >= 0 }

// call applies the function to x. The result is an error if x is outside the
// function's domain or the result is not finite.
func (k funcKind) call(x float64, pos int) (float64, error) {
	f := &functable[k]
	if f.f == nil {
		panic("calc: call of invalid function kind")
	}
	if !f.domain(x) {
		return 0, &Error{Kind: DomainError, Col: pos, Text: f.name, X: x}
	}
	r := f.f(x)
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, &Error{Kind: DomainError, Col: pos, Text: f.name, X: x, Range: true}
	}
	return r, nil
}
