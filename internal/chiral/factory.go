package chiral

import "fmt"

// UnknownOperatorError reports a factory request for an operator name this
// build does not provide. It is a distinguishable failure: the factory
// never substitutes a default operator for an unrecognized name.
type UnknownOperatorError struct {
	Name string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q (known: %v)", e.Name, OperatorNames())
}

// OperatorNames lists the operator names the factory recognizes,
// case-sensitive, in registration order.
func OperatorNames() []string {
	return []string{"identity", "M1"}
}

// New constructs the operator registered under name. The name match is
// case-sensitive.
func New(name string) (Operator, error) {
	switch name {
	case "identity":
		return IdentityOperator{}, nil
	case "M1":
		return M1Operator{}, nil
	}
	return nil, &UnknownOperatorError{Name: name}
}
