package calq_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calq/calq"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"num", "1", 1},
		{"decimal", "2.5", 2.5},
		{"small", "0.1", 0.1},
		{"neg", "-5", -5},
		{"plus", "+5", 5},
		{"add", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"powright", "2^3^2", 512},
		{"prec", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"negpow", "-2^2", -4},
		{"pownegexp", "2^-1", 0.5},
		{"pi", "pi", math.Pi},
		{"piunicode", "π", math.Pi},
		{"e", "e", math.E},
		{"div", "1/4", 0.25},
		{"mixed", "2*pi - pi - pi", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := calq.NewEnv()
			r, err := calq.EvalString(c.src, env)
			require.NoError(t, err)
			require.Equal(t, c.want, r)
		})
	}
	approx := []struct {
		name string
		src  string
		want float64
	}{
		{"div", "4/5/6", 4.0 / 5.0 / 6.0},
		{"exp", "exp(1)", math.E},
		{"ln", "ln(e)", 1},
		{"log", "log(e)", 1},
		{"sin", "sin(pi/2)", 1},
	}
	for _, c := range approx {
		t.Run(c.name, func(t *testing.T) {
			env := calq.NewEnv()
			r, err := calq.EvalString(c.src, env)
			require.NoError(t, err)
			require.InDelta(t, c.want, r, 1e-12)
		})
	}
}

func TestEvalAssign(t *testing.T) {
	env := calq.NewEnv()
	r, err := calq.EvalString("x = 5", env)
	require.NoError(t, err)
	require.Equal(t, 5.0, r)
	r, err = calq.EvalString("x + 1", env)
	require.NoError(t, err)
	require.Equal(t, 6.0, r)
	// Assignments can use the variable they assign.
	r, err = calq.EvalString("x = x * 2", env)
	require.NoError(t, err)
	require.Equal(t, 10.0, r)
	v, ok := env.Lookup("x")
	require.True(t, ok)
	require.Equal(t, 10.0, v)
}

func TestEvalConstants(t *testing.T) {
	env := calq.NewEnv()
	r, err := calq.EvalString("pi", env)
	require.NoError(t, err)
	require.Equal(t, math.Pi, r)

	_, err = calq.EvalString("pi = 3", env)
	var cerr *calq.ConstantError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "pi", cerr.Name)

	// The failed assignment must not change the observed value.
	r, err = calq.EvalString("pi", env)
	require.NoError(t, err)
	require.Equal(t, math.Pi, r)

	_, err = calq.EvalString("e = 0", env)
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "e", cerr.Name)
}

func TestEvalDivisionByZero(t *testing.T) {
	env := calq.NewEnv()
	_, err := calq.EvalString("1 / 0", env)
	var derr *calq.DivisionError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, 1.0, derr.X)

	// A failing right side must not mutate the environment.
	_, err = calq.EvalString("x = 1 / 0", env)
	require.ErrorAs(t, err, &derr)
	_, ok := env.Lookup("x")
	require.False(t, ok)

	// Dividing zero is fine.
	r, err := calq.EvalString("0 / 5", env)
	require.NoError(t, err)
	require.Equal(t, 0.0, r)
}

func TestEvalUndefined(t *testing.T) {
	env := calq.NewEnv()
	_, err := calq.EvalString("y + 1", env)
	var nerr *calq.NameError
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, "y", nerr.Name)

	_, err = calq.EvalString("z = y + 1", env)
	require.ErrorAs(t, err, &nerr)
	_, ok := env.Lookup("z")
	require.False(t, ok)
}

func TestEvalIdempotent(t *testing.T) {
	env := calq.NewEnv()
	_, err := calq.EvalString("x = 3", env)
	require.NoError(t, err)
	e, err := calq.Parse(strings.NewReader("x^2 + sin(x)"))
	require.NoError(t, err)
	a, err := e.Eval(env)
	require.NoError(t, err)
	b, err := e.Eval(env)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, []string{"e", "pi", "x"}, env.Names())
}

func TestEnv(t *testing.T) {
	env := calq.NewEnv()
	require.Equal(t, []string{"e", "pi"}, env.Names())
	v, ok := env.Lookup("pi")
	require.True(t, ok)
	require.Equal(t, math.Pi, v)
	v, ok = env.Lookup("e")
	require.True(t, ok)
	require.Equal(t, math.E, v)

	require.NoError(t, env.Set("tau", 2*math.Pi))
	v, ok = env.Lookup("tau")
	require.True(t, ok)
	require.Equal(t, 2*math.Pi, v)
	require.Equal(t, []string{"e", "pi", "tau"}, env.Names())

	var cerr *calq.ConstantError
	require.ErrorAs(t, env.Set("pi", 3), &cerr)
	v, _ = env.Lookup("pi")
	require.Equal(t, math.Pi, v)

	_, ok = env.Lookup("missing")
	require.False(t, ok)
}
