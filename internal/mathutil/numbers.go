package mathutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Abs returns |n|.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GCD returns the greatest common divisor of |a| and |b|.
func GCD(a, b int) int {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|, 0 if either is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a / GCD(a, b) * b)
}

// PrimeFactors decomposes n into ascending prime factors. A negative n gets
// a leading -1 factor; 0 and 1 have no factors.
func PrimeFactors(n int) []int {
	var factors []int
	if n < 0 {
		factors = append(factors, -1)
		n = -n
	}
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			return false
		}
	}
	return true
}

func IsPerfectSquare(n int) bool {
	if n < 0 {
		return false
	}
	root := 0
	for root*root < n {
		root++
	}
	return root*root == n
}

// Primes lists the primes of iv in ascending order.
func Primes(iv Interval) []int {
	var out []int
	for n := max(iv.Min, 2); n <= iv.Max; n++ {
		if IsPrime(n) {
			out = append(out, n)
		}
	}
	return out
}

// PerfectSquares lists the perfect squares of iv in ascending order.
func PerfectSquares(iv Interval) []int {
	var out []int
	for root := 0; root*root <= iv.Max; root++ {
		if sq := root * root; sq >= iv.Min {
			out = append(out, sq)
		}
	}
	return out
}

// PythagoreanTriples lists every (a, b, c) with a < b < c, a²+b²=c² and all
// three sides inside iv.
func PythagoreanTriples(iv Interval) [][3]int {
	var out [][3]int
	lo := max(iv.Min, 1)
	for a := lo; a <= iv.Max; a++ {
		for b := a + 1; b <= iv.Max; b++ {
			for c := b + 1; c <= iv.Max; c++ {
				if a*a+b*b == c*c {
					out = append(out, [3]int{a, b, c})
				}
			}
		}
	}
	return out
}

// FormatDecimal renders mantissa × 10^exp exactly, without trailing zeros
// after the decimal point.
func FormatDecimal(mantissa int64, exp int) string {
	if mantissa == 0 {
		return "0"
	}
	sign := ""
	if mantissa < 0 {
		sign = "-"
		mantissa = -mantissa
	}
	for exp < 0 && mantissa%10 == 0 {
		mantissa /= 10
		exp++
	}
	digits := strconv.FormatInt(mantissa, 10)
	if exp >= 0 {
		return sign + digits + strings.Repeat("0", exp)
	}
	point := len(digits) + exp
	if point > 0 {
		return fmt.Sprintf("%s%s.%s", sign, digits[:point], digits[point:])
	}
	return sign + "0." + strings.Repeat("0", -point) + digits
}
