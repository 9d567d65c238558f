package calq

import (
	"io"
	"strconv"
)

// Line = Expr | name '=' Expr
// Expr = num | name | Call | Neg | Plus | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Call = funcname '(' Expr ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr

// Expr is a parsed line that can be evaluated with an environment.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses a single line so it can be evaluated with an environment. An
// assignment may appear only at the start of the line; everywhere else the
// grammar is plain arithmetic.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	switch {
	case n == nil:
		// Only a close bracket produces an empty parse without an error.
		return nil, &BracketError{Col: tok.pos, Left: "", Right: tok.text}
	case tok.kind == tokenEOF:
		return &Expr{n: n}, nil
	case tok.kind == tokenClose:
		return nil, &BracketError{Col: tok.pos, Left: "", Right: tok.text}
	case tok.kind == tokenOp && tok.text == "=":
		if n.kind != nodeName {
			return nil, &AssignError{Col: tok.pos}
		}
		rhs, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		switch {
		case rhs == nil:
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		case end.kind == tokenEOF:
			return &Expr{n: &node{kind: nodeAssign, name: n.name, right: rhs}}, nil
		case end.kind == tokenClose:
			return nil, &BracketError{Col: end.pos, Left: "", Right: end.text}
		default:
			// A second = on the same line.
			return nil, &AssignError{Col: end.pos}
		}
	default:
		panic("calq: unknown token: " + tok.String())
	}
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, until operator) (*node, error) {
	n, err := parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			if tok.text == "=" {
				// Assignment binds loosest of all; only Parse may accept it.
				scan.push(tok)
				return n, nil
			}
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenNum, tokenIdent, tokenOpen:
			// A term directly following a term, e.g. "2 x" or "2 (3)".
			return nil, &ExpectedOperatorError{Col: tok.pos, Token: tok.text}
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("calq: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *lexer, until operator) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &BadTokenError{Text: tok.text, Kind: "number", Col: tok.pos}
		}
		n = &node{kind: nodeNum, val: v}
	case tokenIdent:
		fn := functions[tok.text]
		if fn == nil {
			n = &node{kind: nodeName, name: tok.text}
		} else {
			arg, err := parsecall(scan, tok)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeCall, name: tok.text, fn: fn, left: arg}
		}
	case tokenOp:
		// Unary operator.
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = &node{kind: prec.op, left: rhs}
	case tokenOpen:
		rhs, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, unclosed(end)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// Let the caller decide what to do, since it knows whether a bracket
		// is open.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("calq: unknown token: " + tok.String())
	}
	return n, nil
}

// parsecall parses the parenthesized argument to a call of a named function.
func parsecall(scan *lexer, fname lexToken) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOpen {
		return nil, &CallError{Col: tok.pos, Func: fname.text}
	}
	arg, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	end := scan.must()
	if end.kind != tokenClose {
		return nil, unclosed(end)
	}
	if arg == nil {
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	return arg, nil
}

// unclosed returns an error appropriate for a non-close token ending a
// bracketed subexpression.
func unclosed(tok lexToken) error {
	switch tok.kind {
	case tokenEOF:
		return &BracketError{Col: tok.pos, Left: "(", Right: ""}
	case tokenOp:
		// The only operator parseterm ends on is =.
		return &AssignError{Col: tok.pos}
	default:
		panic("calq: it really should not have ended this way: " + tok.String())
	}
}

// String creates a string representation of the parsed expression, with
// brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Lower is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
