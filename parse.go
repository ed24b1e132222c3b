package calc

import (
	"io"
	"strconv"
	"strings"
)

// Expr = Term { ('+' | '-') Term }
// Term = Power { ('*' | '/' | '%') Power }
// Power = Unary [ '^' Power ]
// Unary = '-' Unary | Atom
// Atom = num | constname | funcname '(' Expr ')' | '(' Expr ')'
//
// Unary minus is parsed before any binary operator is considered, so -2^2 is
// (-2)^2 and 2^-1^2 is 2^((-1)^2).

// Expr is a parsed expression. An Expr is immutable and safe to evaluate
// concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression so it can be evaluated. The given options are
// applied in order. Parse consumes src to EOF.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenEOF {
		return nil, &Error{Kind: EmptyExpression, Col: tok.pos}
	}
	scan.push(tok)
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &Error{Kind: UnmatchedParenthesis, Col: tok.pos, Text: tok.text}
	default:
		panic("calc: parseterm ended on " + tok.String())
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parseterm parses operands joined by binary operators more binding than
// until. If there is no error, then parseterm pushes the last token it scans,
// which is always a close bracket or EOF.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	n, err := parseunary(scan, p)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				panic("calc: no binary operator for " + strconv.Quote(tok.text))
			}
			if p.basic && (prec.op == nodeMod || prec.op == nodePow) {
				return nil, &Error{Kind: UnexpectedToken, Col: tok.pos, Text: tok.text}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, pos: tok.pos, name: tok.text, left: n, right: rhs}
		case tokenNum, tokenIdent, tokenOpen:
			// An operand following an operand: 2 3, 2(3), PI(2).
			return nil, &Error{Kind: UnexpectedToken, Col: tok.pos, Text: tok.text}
		case tokenClose, tokenEOF:
			scan.push(tok)
			return n, nil
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// parseunary parses a single operand with any number of leading unary minus
// signs.
func parseunary(scan *lexer, p *parsectx) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		x, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			// The lexer only produces valid syntax, so this is a range error.
			return nil, &Error{Kind: MalformedNumber, Col: tok.pos, Text: tok.text}
		}
		return &node{kind: nodeNum, pos: tok.pos, name: tok.text, num: x}, nil
	case tokenIdent:
		return parseident(scan, p, tok)
	case tokenOp:
		if tok.text != "-" {
			return nil, &Error{Kind: UnexpectedToken, Col: tok.pos, Text: tok.text}
		}
		rhs, err := parseunary(scan, p)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, pos: tok.pos, name: tok.text, left: rhs}, nil
	case tokenOpen:
		return parsegroup(scan, p, tok)
	case tokenClose:
		if p.depth == 0 {
			return nil, &Error{Kind: UnmatchedParenthesis, Col: tok.pos, Text: tok.text}
		}
		// Empty parentheses or an operator right before the close.
		return nil, &Error{Kind: UnexpectedToken, Col: tok.pos, Text: tok.text}
	case tokenEOF:
		return nil, &Error{Kind: UnexpectedEndOfInput, Col: tok.pos}
	default:
		panic("calc: unknown token: " + tok.String())
	}
}

// parseident parses a constant or a function call starting with tok.
func parseident(scan *lexer, p *parsectx, tok lexToken) (*node, error) {
	if p.basic {
		return nil, &Error{Kind: UnknownIdentifier, Col: tok.pos, Text: tok.text}
	}
	if x, ok := constants[tok.text]; ok {
		return &node{kind: nodeConst, pos: tok.pos, name: tok.text, num: x}, nil
	}
	fn := funcnames[tok.text]
	if fn == funcNone {
		return nil, &Error{Kind: UnknownIdentifier, Col: tok.pos, Text: tok.text}
	}
	open, err := scan.next()
	if err != nil {
		return nil, err
	}
	if open.kind != tokenOpen {
		return nil, &Error{Kind: MissingFunctionArgument, Col: tok.pos, Text: tok.text}
	}
	arg, err := parsegroup(scan, p, open)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, pos: tok.pos, name: tok.text, fn: fn, left: arg}, nil
}

// parsegroup parses a parenthesized expression after its open bracket.
func parsegroup(scan *lexer, p *parsectx, open lexToken) (*node, error) {
	p.depth++
	n, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	p.depth--
	end := scan.must()
	if end.kind != tokenClose {
		return nil, &Error{Kind: UnmatchedParenthesis, Col: open.pos, Text: open.text}
	}
	return n, nil
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "%":
		return operator{5, false, nodeMod}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
