package chiral

import "fmt"

// Order is a chiral-EFT power-counting order, totally ordered by
// perturbative power. Full is the sentinel requesting the sum of every
// implemented order.
type Order int

const (
	LO Order = iota
	NLO
	N2LO
	N3LO
	N4LO
	Full
)

// String returns the lowercase order name used in filenames and configs.
func (o Order) String() string {
	switch o {
	case LO:
		return "lo"
	case NLO:
		return "nlo"
	case N2LO:
		return "n2lo"
	case N3LO:
		return "n3lo"
	case N4LO:
		return "n4lo"
	case Full:
		return "full"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// OrderName pairs an order with its canonical name.
type OrderName struct {
	Name  string
	Order Order
}

// orderSequence is the canonical cumulative iteration sequence, an
// explicit statically defined list owned by this package.
var orderSequence = []OrderName{
	{"lo", LO},
	{"nlo", NLO},
	{"n2lo", N2LO},
	{"n3lo", N3LO},
	{"n4lo", N4LO},
}

// Orders returns the physical orders in cumulative iteration sequence
// (Full is a request sentinel, not an iteration step). The returned slice
// is a copy.
func Orders() []OrderName {
	out := make([]OrderName, len(orderSequence))
	copy(out, orderSequence)
	return out
}

// ParseOrder resolves an order name ("lo" ... "n4lo", "full").
func ParseOrder(name string) (Order, error) {
	for _, on := range orderSequence {
		if on.Name == name {
			return on.Order, nil
		}
	}
	if name == "full" {
		return Full, nil
	}
	return 0, fmt.Errorf("unknown chiral order %q", name)
}
