// Package algorithm holds the classic stack exercises: bracket matching,
// string reversal, palindrome detection, infix to postfix conversion and
// sorting a stack with a second stack.
package algorithm

import "github.com/ChainSafe/stackkit/common/lifo"

// bracketPairs maps every closing bracket to the opening bracket it requires.
var bracketPairs = map[rune]rune{
	')': '(',
	'}': '{',
	']': '[',
}

func isOpeningBracket(c rune) bool {
	return c == '(' || c == '{' || c == '['
}

// IsBalanced reports whether round, curly and square brackets in input are
// properly nested. Any other character is ignored; empty input is balanced.
func IsBalanced(input string) bool {
	open := lifo.New[rune]()
	for _, c := range input {
		if isOpeningBracket(c) {
			open.Push(c)
			continue
		}
		want, closing := bracketPairs[c]
		if !closing {
			continue
		}
		top, ok := open.Pop()
		if !ok || top != want {
			return false
		}
	}
	return open.IsEmpty()
}
