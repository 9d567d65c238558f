package calq

import (
	"math"
	"strconv"
)

// Func is a function from reals to reals. The calculator's functions all take
// exactly one argument, in radians where that matters.
type Func func(x float64) (float64, error)

// functions is the set of names that parse as function calls. ln and log are
// both the natural logarithm.
var functions = map[string]Func{
	"abs":  func(x float64) (float64, error) { return math.Abs(x), nil },
	"exp":  func(x float64) (float64, error) { return math.Exp(x), nil },
	"ln":   logarithm("ln"),
	"log":  logarithm("log"),
	"sqrt": domain("sqrt", func(x float64) bool { return x >= 0 }, math.Sqrt),

	"sin": func(x float64) (float64, error) { return math.Sin(x), nil },
	"cos": func(x float64) (float64, error) { return math.Cos(x), nil },
	"tan": func(x float64) (float64, error) { return math.Tan(x), nil },

	"asin": domain("asin", func(x float64) bool { return -1 <= x && x <= 1 }, math.Asin),
	"acos": domain("acos", func(x float64) bool { return -1 <= x && x <= 1 }, math.Acos),
	"atan": func(x float64) (float64, error) { return math.Atan(x), nil },

	"sinh": func(x float64) (float64, error) { return math.Sinh(x), nil },
	"cosh": func(x float64) (float64, error) { return math.Cosh(x), nil },
	"tanh": func(x float64) (float64, error) { return math.Tanh(x), nil },

	"asinh": func(x float64) (float64, error) { return math.Asinh(x), nil },
	"acosh": domain("acosh", func(x float64) bool { return x >= 1 }, math.Acosh),
	"atanh": domain("atanh", func(x float64) bool { return -1 < x && x < 1 }, math.Atanh),
}

// logarithm implements the natural logarithm under a given name. Non-positive
// arguments are a domain error rather than -Inf or NaN.
func logarithm(name string) Func {
	return domain(name, func(x float64) bool { return x > 0 }, math.Log)
}

// domain wraps a math function with a check of its argument. Arguments for
// which ok is false produce a DomainError.
func domain(name string, ok func(float64) bool, f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		if !ok(x) {
			return 0, &DomainError{X: x, Func: name}
		}
		return f(x), nil
	}
}

// Functions returns the names of the calculator's functions. The slice is not
// sorted.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for k := range functions {
		names = append(names, k)
	}
	return names
}

// DomainError is an error returned when a function is called on an argument
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}
