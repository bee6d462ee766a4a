package ticks

import (
	"fmt"
	"math"
)

// mantissas is the numeric ladder. Each decade holds the steps 1, 2 and 5.
var mantissas = [...]int{1, 2, 5}

const niceEpsilon = 1e-9

// niceStep is the step mantissa x 10^exp.
type niceStep struct {
	mantissa int
	exp      int
}

// roundUpStep gives the smallest ladder step not smaller than raw.
func roundUpStep(raw float64) niceStep {
	if raw <= 0 || !isFinite(raw) {
		return niceStep{mantissa: 1}
	}
	var (
		exp = int(math.Floor(math.Log10(raw)))
		man = raw / pow10(exp)
	)
	if man >= 10 {
		man /= 10
		exp++
	} else if man < 1 {
		man *= 10
		exp--
	}
	for _, m := range mantissas {
		if man <= float64(m)*(1+niceEpsilon) {
			return niceStep{mantissa: m, exp: exp}
		}
	}
	return niceStep{mantissa: 1, exp: exp + 1}
}

func pow10(exp int) float64 {
	if exp < 0 {
		return 1 / math.Pow10(-exp)
	}
	return math.Pow10(exp)
}

func (n niceStep) Value() float64 {
	if n.exp < 0 {
		return float64(n.mantissa) / math.Pow10(-n.exp)
	}
	return float64(n.mantissa) * math.Pow10(n.exp)
}

// next gives the following step of the ladder, carrying into the next
// decade after 5.
func (n niceStep) next() niceStep {
	switch n.mantissa {
	case 1:
		n.mantissa = 2
	case 2:
		n.mantissa = 5
	default:
		n.mantissa = 1
		n.exp++
	}
	return n
}

// decimals gives the number of fraction digits needed to print multiples
// of the step.
func (n niceStep) decimals() int {
	if n.exp < 0 {
		return -n.exp
	}
	return 0
}

func (n niceStep) String() string {
	return fmt.Sprintf("%de%d", n.mantissa, n.exp)
}
