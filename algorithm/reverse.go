package algorithm

import (
	"strings"
	"unicode/utf8"

	"github.com/ChainSafe/stackkit/common/lifo"
)

// Reverse returns input with its characters in reverse order.
// Bytes that are not valid UTF-8 are moved one at a time and kept as is.
func Reverse(input string) string {
	buffer := lifo.New[string]()
	for i := 0; i < len(input); {
		_, size := utf8.DecodeRuneInString(input[i:])
		buffer.Push(input[i : i+size])
		i += size
	}

	var reversed strings.Builder
	reversed.Grow(len(input))
	for !buffer.IsEmpty() {
		c, _ := buffer.Pop()
		reversed.WriteString(c)
	}
	return reversed.String()
}

// IsPalindrome reports whether input reads the same backwards.
// The comparison is exact: case, spaces and punctuation all count.
func IsPalindrome(input string) bool {
	return input == Reverse(input)
}
