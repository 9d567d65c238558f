package calq

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Env is the variable environment for evaluating expressions. It is created
// once per session and mutated in place by successful assignments. It is not
// safe to use an Env concurrently.
type Env struct {
	vars map[string]float64
}

// constants are the read-only names every environment starts with.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// NewEnv creates an environment seeded with the constants pi and e.
func NewEnv() *Env {
	vars := make(map[string]float64, len(constants))
	for k, v := range constants {
		vars[k] = v
	}
	return &Env{vars: vars}
}

// Set sets the value of a variable. Assigning to pi or e is an error and
// leaves the environment unchanged.
func (env *Env) Set(name string, value float64) error {
	if _, ok := constants[name]; ok {
		return &ConstantError{Name: name}
	}
	env.vars[name] = value
	return nil
}

// Lookup returns the value of a variable and whether it is defined.
func (env *Env) Lookup(name string) (float64, bool) {
	v, ok := env.vars[name]
	return v, ok
}

// Names returns the sorted names defined in the environment, including the
// constants.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.vars))
	for k := range env.vars {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Eval evaluates an expression and returns the result. Evaluation has no
// effect on env unless the expression is an assignment and its right side
// evaluates without error.
func (e *Expr) Eval(env *Env) (float64, error) {
	return e.n.eval(env)
}

func (n *node) eval(env *Env) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		v, ok := env.Lookup(n.name)
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeCall:
		x, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		return n.fn(x)
	case nodeNeg:
		x, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeNop:
		return n.left.eval(env)
	case nodeAdd:
		l, r, err := n.eval2(env)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case nodeSub:
		l, r, err := n.eval2(env)
		if err != nil {
			return 0, err
		}
		return l - r, nil
	case nodeMul:
		l, r, err := n.eval2(env)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case nodeDiv:
		l, r, err := n.eval2(env)
		if err != nil {
			return 0, err
		}
		if r == 0 {
			return 0, &DivisionError{X: l}
		}
		return l / r, nil
	case nodePow:
		l, r, err := n.eval2(env)
		if err != nil {
			return 0, err
		}
		return math.Pow(l, r), nil
	case nodeAssign:
		v, err := n.right.eval(env)
		if err != nil {
			return 0, err
		}
		if err := env.Set(n.name, v); err != nil {
			return 0, err
		}
		return v, nil
	default:
		panic("calq: invalid AST node " + n.kind.String())
	}
}

// eval2 evaluates both operands of a binary node, left first.
func (n *node) eval2(env *Env) (l, r float64, err error) {
	l, err = n.left.eval(env)
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval(env)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Eval is a shortcut to parse a line and evaluate it against an environment.
func Eval(src io.RuneScanner, env *Env) (float64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval(env)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, env *Env) (float64, error) {
	return Eval(strings.NewReader(src), env)
}

// NameError is an error from a lookup for a variable that is missing from the
// environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// ConstantError is an error from assigning to a read-only constant.
type ConstantError struct {
	// Name is the constant's name.
	Name string
}

func (err *ConstantError) Error() string {
	return "cannot assign to constant " + err.Name
}

// DivisionError is an error from dividing by exactly zero.
type DivisionError struct {
	// X is the dividend.
	X float64
}

func (err *DivisionError) Error() string {
	return "division of " + strconv.FormatFloat(err.X, 'g', -1, 64) + " by zero"
}
