//go:build integration

package e2etest

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"strings"
	"testing"

	"github.com/ChainSafe/stackkit/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const binary = "../bin/stackkit"

type testcase struct {
	args  []string
	input string
	want  any
}

func run(t *testing.T, input string, args ...string) []byte {
	t.Helper()
	cmd := exec.Command(binary, args...)

	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	if err != nil {
		t.Fatalf("Failed to run CLI: %v. errorOutput: %s", err, errOut.String())
	}
	return out.Bytes()
}

func TestCommands(t *testing.T) {
	cases := map[string]testcase{
		"postfix":    {args: []string{"postfix", "--format", "json", "2+3*4"}, want: "2 3 4 * +"},
		"balanced":   {args: []string{"balanced", "--format", "json", "([)]"}, want: false},
		"palindrome": {args: []string{"palindrome", "--format", "json", "aba"}, want: true},
		"reverse":    {args: []string{"reverse", "--format", "json", "abc"}, want: "cba"},
		"sort": {
			args: []string{"stack", "--format", "json", "--value", "5", "--value", "3", "--value", "8", "--value", "1", "sort"},
			want: []any{float64(1), float64(3), float64(5), float64(8)},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var results []*renderer.Result
			require.NoError(t, json.Unmarshal(run(t, tc.input, tc.args...), &results))
			require.Len(t, results, 1)
			assert.Equal(t, tc.want, results[0].Value)
		})
	}
}

func TestInteractiveIsDefault(t *testing.T) {
	out := run(t, "1\n4\n4\n0\n")
	assert.Contains(t, string(out), "Minimum element in the stack: 4")
}
