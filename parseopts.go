package calc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type basicopt struct{}

// parsectx holds general data for parsing.
type parsectx struct {
	// basic restricts input to numbers, parentheses, and + - * /.
	basic bool
	// depth is the number of open parentheses enclosing the current term.
	depth int
}

// Basic restricts parsing to a four-function calculator: numbers,
// parentheses, and the operators + - * /. Function and constant names are
// parsed as unknown identifiers, and % and ^ are unexpected tokens.
func Basic() ParseOption {
	return basicopt{}
}

func (basicopt) parseOption(p parsectx) parsectx {
	p.basic = true
	return p
}
