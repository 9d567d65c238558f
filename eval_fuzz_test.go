package calq_test

import (
	"testing"

	"github.com/calq/calq"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("x = 1/0")
	f.Add("ln(-1)")
	f.Add("pi = 3")
	f.Fuzz(func(t *testing.T, s string) {
		env := calq.NewEnv()
		env.Set("x", 1)
		calq.EvalString(s, env)
	})
}
