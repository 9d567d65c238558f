// Package calq implements a floating-point calculator with variables.
//
// An input line is an arithmetic expression over the operators + - * / ^,
// parentheses, one-argument functions like sin and ln, and the constants pi
// and e. Exponentiation is right-associative, so "2^3^2" is 512. A line of
// the form "name = expr" additionally stores the result in the environment,
// so later lines can use it.
//
// Parsing and evaluation are separate: Parse builds an expression once, and
// Eval computes it against an Env. The Env carries all mutable state, so
// evaluating the same expression against fresh environments is repeatable.
package calq
