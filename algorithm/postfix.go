package algorithm

import (
	"strings"
	"unicode"

	"github.com/ChainSafe/stackkit/common/lifo"
)

var precedence = map[rune]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
}

// InfixToPostfix converts an infix expression into space separated postfix
// tokens, e.g. "2+3*4" becomes "2 3 4 * +".
//
// Every digit is a separate operand, so multi-digit numbers are split into
// single digits. Parentheses are not supported. Characters other than digits
// and + - * / are skipped without error. Operators of equal precedence are
// applied left to right.
func InfixToPostfix(expression string) string {
	operators := lifo.New[rune]()
	var output []string

	for _, c := range expression {
		if unicode.IsDigit(c) {
			output = append(output, string(c))
			continue
		}
		rank, ok := precedence[c]
		if !ok {
			continue
		}
		for {
			top, ok := operators.Peek()
			if !ok || precedence[top] < rank {
				break
			}
			operators.Pop()
			output = append(output, string(top))
		}
		operators.Push(c)
	}

	for !operators.IsEmpty() {
		op, _ := operators.Pop()
		output = append(output, string(op))
	}
	return strings.Join(output, " ")
}
