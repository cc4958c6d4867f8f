package jalali

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/jalali/date"
)

// Operator is a binary comparison over dates, described the way an
// operator class would install it: with commutator and negator links.
type Operator struct {
	Symbol     string
	Commutator string
	Negator    string
	Matches    func(cmp int) bool
}

func operators() []Operator {
	return []Operator{
		{Symbol: "<", Commutator: ">", Negator: ">=", Matches: func(c int) bool { return c < 0 }},
		{Symbol: "<=", Commutator: ">=", Negator: ">", Matches: func(c int) bool { return c <= 0 }},
		{Symbol: "=", Commutator: "=", Negator: "<>", Matches: func(c int) bool { return c == 0 }},
		{Symbol: "<>", Commutator: "<>", Negator: "=", Matches: func(c int) bool { return c != 0 }},
		{Symbol: ">=", Commutator: "<=", Negator: "<", Matches: func(c int) bool { return c >= 0 }},
		{Symbol: ">", Commutator: "<", Negator: "<=", Matches: func(c int) bool { return c > 0 }},
	}
}

// Operator returns the operator registered for symbol.
func (r *Registry) Operator(symbol string) (Operator, bool) {
	op, ok := r.ops[symbol]
	return op, ok
}

// Evaluate applies the operator registered for symbol to (a, b).
func (r *Registry) Evaluate(symbol string, a, b date.Date) (bool, error) {
	op, ok := r.ops[symbol]
	if !ok {
		return false, errors.Errorf("operator %q is not registered", symbol)
	}
	return op.Matches(a.Compare(b)), nil
}
