// Package notation renders math either as plain Unicode text or as LaTeX
// meant to be wrapped in $...$ by the front end.
package notation

import (
	"strconv"
	"strings"
)

// Notation selects between plain text and LaTeX rendering.
type Notation struct {
	latex bool
}

var (
	Plain = Notation{}
	LaTeX = Notation{latex: true}
)

// For returns LaTeX when latex is set, Plain otherwise.
func For(latex bool) Notation {
	if latex {
		return LaTeX
	}
	return Plain
}

func (n Notation) IsLaTeX() bool { return n.latex }

func (n Notation) String() string {
	if n.latex {
		return "latex"
	}
	return "plain"
}

// Delim is the math delimiter substituted for {l} in sentences.
func (n Notation) Delim() string {
	if n.latex {
		return "$"
	}
	return ""
}

// Wrap puts s between math delimiters.
func (n Notation) Wrap(s string) string {
	return n.Delim() + s + n.Delim()
}

func (n Notation) Pi() string {
	if n.latex {
		return `\pi`
	}
	return "π"
}

func (n Notation) Sqrt(s string) string {
	if n.latex {
		return `\sqrt{` + s + `}`
	}
	return "√(" + s + ")"
}

func (n Notation) Frac(num, den string) string {
	if n.latex {
		return `\frac{` + num + `}{` + den + `}`
	}
	return num + "/" + den
}

func (n Notation) Times() string {
	if n.latex {
		return `\times`
	}
	return "×"
}

func (n Notation) Delta() string {
	if n.latex {
		return `\Delta`
	}
	return "Δ"
}

func (n Notation) Cos() string {
	if n.latex {
		return `\cos`
	}
	return "cos"
}

func (n Notation) Sin() string {
	if n.latex {
		return `\sin`
	}
	return "sin"
}

// InIntegers completes "k ..." to say that k is an integer.
func (n Notation) InIntegers() string {
	if n.latex {
		return `\in \mathbb{Z}`
	}
	return "un entier"
}

func (n Notation) DegreeSuffix() string {
	if n.latex {
		return `^\circ`
	}
	return "°"
}

// Text renders words inside a math span.
func (n Notation) Text(s string) string {
	if n.latex {
		return `\text{` + s + `}`
	}
	return s
}

var superscripts = strings.NewReplacer(
	"0", "⁰", "1", "¹", "2", "²", "3", "³", "4", "⁴",
	"5", "⁵", "6", "⁶", "7", "⁷", "8", "⁸", "9", "⁹", "-", "⁻",
)

// Power renders base raised to exp.
func (n Notation) Power(base string, exp int) string {
	digits := strconv.Itoa(exp)
	if !n.latex {
		return base + superscripts.Replace(digits)
	}
	if len(digits) > 1 {
		return base + "^{" + digits + "}"
	}
	return base + "^" + digits
}
