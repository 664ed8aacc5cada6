package am

import "math"

// lnfct returns ln(n!). Working in logarithms keeps the Racah sums free of
// factorial overflow, so the symbols accept any truncation the basis can
// produce.
func lnfct(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}

const eps = 1e-9

func isInt(x float64) bool { return math.Abs(x-math.Round(x)) < eps }

// iround converts an expression known to be integer-valued to int.
func iround(x float64) int { return int(math.Round(x)) }

// phase returns (-1)^n.
func phase(n int) float64 {
	if ((n%2)+2)%2 == 1 {
		return -1
	}
	return 1
}

// Hat returns sqrt(2j+1).
func Hat(j float64) float64 { return math.Sqrt(2*j + 1) }

// triadOK reports whether (a, b, c) satisfies the triangle rule with an
// integer perimeter.
func triadOK(a, b, c float64) bool {
	if !isInt(a + b + c) {
		return false
	}
	return c >= math.Abs(a-b)-eps && c <= a+b+eps
}

func lnTriangleCoeff(a, b, c float64) float64 {
	return 0.5 * (lnfct(iround(a+b-c)) + lnfct(iround(a-b+c)) +
		lnfct(iround(-a+b+c)) - lnfct(iround(a+b+c)+1))
}

// Wigner3J evaluates the Wigner 3-j symbol by the Racah sum formula.
// Arguments may be half-integral. Returns 0 for any violated selection rule.
func Wigner3J(j1, j2, j3, m1, m2, m3 float64) float64 {
	if math.Abs(m1+m2+m3) > eps {
		return 0
	}
	if !triadOK(j1, j2, j3) {
		return 0
	}
	if math.Abs(m1) > j1+eps || math.Abs(m2) > j2+eps || math.Abs(m3) > j3+eps {
		return 0
	}
	if !isInt(j1-m1) || !isInt(j2-m2) || !isInt(j3-m3) {
		return 0
	}

	kmin := 0
	if v := iround(j2 - j3 - m1); v > kmin {
		kmin = v
	}
	if v := iround(j1 - j3 + m2); v > kmin {
		kmin = v
	}
	kmax := iround(j1 + j2 - j3)
	if v := iround(j1 - m1); v < kmax {
		kmax = v
	}
	if v := iround(j2 + m2); v < kmax {
		kmax = v
	}
	if kmax < kmin {
		return 0
	}

	lnPref := lnTriangleCoeff(j1, j2, j3) + 0.5*(lnfct(iround(j1+m1))+lnfct(iround(j1-m1))+
		lnfct(iround(j2+m2))+lnfct(iround(j2-m2))+
		lnfct(iround(j3+m3))+lnfct(iround(j3-m3)))

	sum := 0.0
	for k := kmin; k <= kmax; k++ {
		lnDen := lnfct(k) +
			lnfct(iround(j1+j2-j3)-k) +
			lnfct(iround(j1-m1)-k) +
			lnfct(iround(j2+m2)-k) +
			lnfct(iround(j3-j2+m1)+k) +
			lnfct(iround(j3-j1-m2)+k)
		sum += phase(k) * math.Exp(lnPref-lnDen)
	}
	return phase(iround(j1-j2-m3)) * sum
}

// ClebschGordan evaluates <j1 m1; j2 m2 | j m>.
func ClebschGordan(j1, m1, j2, m2, j, m float64) float64 {
	return phase(iround(j1-j2+m)) * Hat(j) * Wigner3J(j1, j2, j, m1, m2, -m)
}

// Wigner6J evaluates the Wigner 6-j symbol by the Racah sum formula.
func Wigner6J(j1, j2, j3, j4, j5, j6 float64) float64 {
	if !triadOK(j1, j2, j3) || !triadOK(j1, j5, j6) ||
		!triadOK(j4, j2, j6) || !triadOK(j4, j5, j3) {
		return 0
	}

	t1 := iround(j1 + j2 + j3)
	t2 := iround(j1 + j5 + j6)
	t3 := iround(j4 + j2 + j6)
	t4 := iround(j4 + j5 + j3)
	q1 := iround(j1 + j2 + j4 + j5)
	q2 := iround(j2 + j3 + j5 + j6)
	q3 := iround(j3 + j1 + j6 + j4)

	kmin := t1
	for _, t := range []int{t2, t3, t4} {
		if t > kmin {
			kmin = t
		}
	}
	kmax := q1
	for _, q := range []int{q2, q3} {
		if q < kmax {
			kmax = q
		}
	}

	lnPref := lnTriangleCoeff(j1, j2, j3) + lnTriangleCoeff(j1, j5, j6) +
		lnTriangleCoeff(j4, j2, j6) + lnTriangleCoeff(j4, j5, j3)

	sum := 0.0
	for k := kmin; k <= kmax; k++ {
		lnDen := lnfct(k-t1) + lnfct(k-t2) + lnfct(k-t3) + lnfct(k-t4) +
			lnfct(q1-k) + lnfct(q2-k) + lnfct(q3-k)
		sum += phase(k) * math.Exp(lnPref+lnfct(k+1)-lnDen)
	}
	return sum
}

// Wigner9J evaluates the Wigner 9-j symbol as a sum over products of three
// 6-j symbols.
func Wigner9J(j1, j2, j3, j4, j5, j6, j7, j8, j9 float64) float64 {
	if !triadOK(j1, j2, j3) || !triadOK(j4, j5, j6) || !triadOK(j7, j8, j9) {
		return 0
	}
	if !triadOK(j1, j4, j7) || !triadOK(j2, j5, j8) || !triadOK(j3, j6, j9) {
		return 0
	}

	xmin := math.Abs(j1 - j9)
	if v := math.Abs(j4 - j8); v > xmin {
		xmin = v
	}
	if v := math.Abs(j2 - j6); v > xmin {
		xmin = v
	}
	xmax := j1 + j9
	if v := j4 + j8; v < xmax {
		xmax = v
	}
	if v := j2 + j6; v < xmax {
		xmax = v
	}

	sum := 0.0
	for x := xmin; x <= xmax+eps; x++ {
		sum += phase(iround(2*x)) * (2*x + 1) *
			Wigner6J(j1, j4, j7, j8, j9, x) *
			Wigner6J(j2, j5, j8, j4, x, j6) *
			Wigner6J(j3, j6, j9, x, j1, j2)
	}
	return sum
}
