package calc

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind
	// pos is the column of the token that produced the node.
	pos int

	name string
	num  float64
	fn   funcKind

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // num
	nodeConst // num, looked up from name at parse time
	nodeCall  // call fn on left

	nodeNeg // negate left
	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodeMod // left % right
	nodePow // left ^ right
)

//go:generate stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum, nodeConst:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b, !square)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.name)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
