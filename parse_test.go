package calc

import (
	"errors"
	"strings"
	"testing"
)

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		if b := binop(string(r)); b.op == nodeNone {
			t.Errorf("no operator for %c", r)
		}
	}
}

func TestPrecedenceOrder(t *testing.T) {
	add, mul, pow := binop("+"), binop("*"), binop("^")
	if !mul.moreBinding(add) || add.moreBinding(mul) {
		t.Error("* should bind more than +")
	}
	if !pow.moreBinding(mul) || mul.moreBinding(pow) {
		t.Error("^ should bind more than *")
	}
	if add.moreBinding(add) || mul.moreBinding(mul) {
		t.Error("+ and * should be left-associative")
	}
	if !pow.moreBinding(pow) {
		t.Error("^ should be right-associative")
	}
	for _, r := range Operators {
		if !binop(string(r)).moreBinding(exprprec) {
			t.Errorf("%c doesn't bind more than a whole expression", r)
		}
	}
	if binop("%") != (operator{mul.prec, false, nodeMod}) || binop("/").prec != mul.prec {
		t.Error("* / % should have equal precedence")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"frac", "0.25", "(0.25)"},
		{"spaces", " 2 * ( 3 + 4 ) ", "([2] * [(3) + (4)])"},
		{"const", "PI", "(PI)"},
		{"pi", "π", "(π)"},
		{"e", "E", "(E)"},
		{"precedence", "2+3*4", "([2] + [(3) * (4)])"},
		{"parens", "(2+3)*4", "([(2) + (3)] * [4])"},
		{"nested-parens", "((1))", "(1)"},
		{"left-add", "1-2-3", "([(1) - (2)] - [3])"},
		{"left-mixed-add", "1+2-3", "([(1) + (2)] - [3])"},
		{"left-mul", "10%3*2", "([(10) % (3)] * [2])"},
		{"right-pow", "2^3^2", "([2] ^ [(3) ^ (2)])"},
		{"neg", "-3", "(-[3])"},
		{"neg-neg", "--3", "(-[-(3)])"},
		{"neg-pow", "-2^2", "([-(2)] ^ [2])"},
		{"pow-neg", "2^-1", "([2] ^ [-(1)])"},
		{"sub-neg", "2--3", "([2] - [-(3)])"},
		{"neg-parens", "-(2+2)", "(-[(2) + (2)])"},
		{"call", "sin(0)", "(sin[0])"},
		{"call-space", "sin (0)", "(sin[0])"},
		{"neg-call", "-sin(PI/2)", "(-[sin([PI] / [2])])"},
		{"call-in-expr", "1+log(E)", "([1] + [log(E)])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := a.String(); got != c.want {
				t.Errorf("%q parsed wrong: want %s, got %s", c.src, c.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind ErrorKind
		col  int
	}{
		{"empty", "", EmptyExpression, 1},
		{"blank", "   ", EmptyExpression, 4},
		{"trailing-op", "2+", UnexpectedEndOfInput, 3},
		{"lone-neg", "-", UnexpectedEndOfInput, 2},
		{"juxtaposed", "2 3", UnexpectedToken, 3},
		{"juxtaposed-const", "2 PI", UnexpectedToken, 3},
		{"juxtaposed-parens", "2(3)", UnexpectedToken, 2},
		{"const-call", "PI(2)", UnexpectedToken, 3},
		{"leading-op", "*2", UnexpectedToken, 1},
		{"unary-plus", "+3", UnexpectedToken, 1},
		{"double-op", "2*/3", UnexpectedToken, 3},
		{"unclosed", "(2+3", UnmatchedParenthesis, 1},
		{"unclosed-inner", "((2)+3", UnmatchedParenthesis, 1},
		{"unopened", "2+3)", UnmatchedParenthesis, 4},
		{"lone-close", ")", UnmatchedParenthesis, 1},
		{"close-for-operand", "2*)", UnmatchedParenthesis, 3},
		{"empty-parens", "()", UnexpectedToken, 2},
		{"op-before-close", "(2+)", UnexpectedToken, 4},
		{"func-no-args", "sin", MissingFunctionArgument, 1},
		{"func-bare-arg", "sin 3", MissingFunctionArgument, 1},
		{"func-unclosed", "sin(", UnexpectedEndOfInput, 5},
		{"func-unclosed-arg", "sin(1", UnmatchedParenthesis, 4},
		{"func-empty", "sin()", UnexpectedToken, 5},
		{"unknown", "foo(1)", UnknownIdentifier, 1},
		{"case-sensitive-const", "pi", UnknownIdentifier, 1},
		{"case-sensitive-func", "1+SIN(0)", UnknownIdentifier, 3},
		{"bad-char", "2$", InvalidCharacter, 2},
		{"bad-number", "1.2.3", MalformedNumber, 1},
		{"huge-number", "1" + strings.Repeat("0", 400), MalformedNumber, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v with no error", c.src, a)
			}
			if a != nil {
				t.Errorf("%q gave non-nil expression %v with error", c.src, a)
			}
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("%q gave %#v, not *Error", c.src, err)
			}
			if e.Kind != c.kind {
				t.Errorf("%q gave wrong error kind: want %v, got %v (%v)", c.src, c.kind, e.Kind, err)
			}
			if e.Pos() != c.col {
				t.Errorf("%q gave wrong error position: want %d, got %d (%v)", c.src, c.col, e.Pos(), err)
			}
		})
	}
}

func TestParseBasic(t *testing.T) {
	ok := []string{"1", "(1+2)*3/4-5", "-(2.5)", "--1"}
	for _, src := range ok {
		if _, err := ParseString(src, Basic()); err != nil {
			t.Errorf("%q failed to parse as basic: %v", src, err)
		}
	}
	bad := []struct {
		src  string
		kind ErrorKind
		col  int
	}{
		{"2^3", UnexpectedToken, 2},
		{"10%3", UnexpectedToken, 3},
		{"PI", UnknownIdentifier, 1},
		{"1+sin(0)", UnknownIdentifier, 3},
	}
	for _, c := range bad {
		_, err := ParseString(c.src, Basic())
		e, _ := err.(*Error)
		if e == nil || e.Kind != c.kind || e.Col != c.col {
			t.Errorf("%q as basic: want %v at %d, got %v", c.src, c.kind, c.col, err)
		}
		// The same expressions are fine without the option.
		if _, err := ParseString(c.src); err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
		}
	}
}

type failingScanner struct{ err error }

func (f failingScanner) ReadRune() (rune, int, error) { return 0, 0, f.err }
func (f failingScanner) UnreadRune() error            { return f.err }

func TestParseReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Parse(failingScanner{boom})
	if !errors.Is(err, boom) {
		t.Errorf("want read error, got %v", err)
	}
	if k := KindOf(err); k != 0 {
		t.Errorf("read error has kind %v", k)
	}
}
