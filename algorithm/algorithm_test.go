package algorithm

import (
	"testing"

	"github.com/ChainSafe/stackkit/common/lifo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBalanced(t *testing.T) {
	cases := map[string]struct {
		input string
		want  bool
	}{
		"empty":              {"", true},
		"all kinds":          {"(){}[]", true},
		"nested":             {"{[()()]}", true},
		"interleaved":        {"([)]", false},
		"unclosed":           {"(", false},
		"unopened":           {")", false},
		"closer first":       {"]()[", false},
		"text is ignored":    {"func(a[i]) { return }", true},
		"no brackets":        {"hello", true},
		"mismatched kinds":   {"(}", false},
		"extra opener later": {"()(", false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsBalanced(tc.input))
		})
	}
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "", Reverse(""))
	assert.Equal(t, "a", Reverse("a"))
	assert.Equal(t, "olleh", Reverse("hello"))
	assert.Equal(t, "тевирП", Reverse("Привет"))
}

func TestReverseRoundTrip(t *testing.T) {
	for _, s := range []string{"", "x", "stack", "a b c!", "日本語", "abba"} {
		reversed := Reverse(s)
		assert.Equal(t, len([]rune(s)), len([]rune(reversed)))
		assert.Equal(t, s, Reverse(reversed))
	}
}

func TestReverseKeepsInvalidUTF8(t *testing.T) {
	assert.Equal(t, "b\xffa", Reverse("a\xffb"))
	assert.Equal(t, "a\xffb", Reverse(Reverse("a\xffb")))
	assert.Equal(t, "\xff", Reverse("\xff"))
	assert.Equal(t, "\xfe\xff", Reverse("\xff\xfe"))
	assert.Equal(t, "é\xff", Reverse("\xffé"))
}

func TestIsPalindrome(t *testing.T) {
	assert.True(t, IsPalindrome(""))
	assert.True(t, IsPalindrome("a"))
	assert.True(t, IsPalindrome("aba"))
	assert.True(t, IsPalindrome("abba"))
	assert.False(t, IsPalindrome("abc"))
	assert.False(t, IsPalindrome("Aba"), "comparison is case sensitive")
	assert.False(t, IsPalindrome("a ba"), "spaces are significant")
	assert.True(t, IsPalindrome("\xff"))
	assert.True(t, IsPalindrome("a\xffa"))
	assert.False(t, IsPalindrome("\xff\xfe"))
}

func TestInfixToPostfix(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2+3*4", "2 3 4 * +"},
		{"2*3+4", "2 3 * 4 +"},
		{"1-2-3", "1 2 - 3 -"},
		{"8/4*2", "8 4 / 2 *"},
		{"1+2*3-4/2", "1 2 3 * + 4 2 / -"},
		{"2 + 3", "2 3 +"},
		{"12+3", "1 2 3 +"},
		{"(1+2)*3", "1 2 3 * +"},
		{"", ""},
		{"7", "7"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InfixToPostfix(tc.input), "input %q", tc.input)
	}
}

func TestSortStack(t *testing.T) {
	input := lifo.New(5, 3, 8, 1)

	sorted := SortStack(input)

	assert.True(t, input.IsEmpty(), "input is consumed")
	assert.Equal(t, []int{1, 3, 5, 8}, sorted.Values())
	top, ok := sorted.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, top)
}

func TestSortStackDuplicatesAndNegatives(t *testing.T) {
	sorted := SortStack(lifo.New(4, -2, 4, 0, -7, 9))
	assert.Equal(t, []int{-7, -2, 0, 4, 4, 9}, sorted.Values())
}

func TestSortStackEmpty(t *testing.T) {
	sorted := SortStack(lifo.New[int]())
	assert.True(t, sorted.IsEmpty())
}
