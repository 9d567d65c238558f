package calq_test

import (
	"fmt"

	"github.com/calq/calq"
)

func ExampleEvalString() {
	env := calq.NewEnv()
	vals := []string{
		"x = 2 + 3",
		"x ^ 2",
		"2^3^2",
	}
	for _, src := range vals {
		r, err := calq.EvalString(src, env)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
	// Output:
	// 5
	// 25
	// 512
}

func ExampleEnv_Set() {
	env := calq.NewEnv()
	fmt.Println(env.Set("pi", 3))
	r, _ := calq.EvalString("pi", env)
	fmt.Printf("%.5f\n", r)
	// Output:
	// cannot assign to constant pi
	// 3.14159
}
