package cmd

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/stackkit/algorithm"
	"github.com/ChainSafe/stackkit/common/lifo"
	"github.com/ChainSafe/stackkit/minstack"
	"github.com/ChainSafe/stackkit/renderer"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var ValueFlag = &cli.IntSliceFlag{
	Name:     "value",
	Usage:    "value to push onto the stack, repeatable. Pushed after the profile seed, in order",
	Required: false,
}

var stackOperations = []renderer.Operation{
	renderer.OpPop,
	renderer.OpPeek,
	renderer.OpMin,
	renderer.OpValues,
	renderer.OpSum,
	renderer.OpDedup,
	renderer.OpSort,
	renderer.OpCycle,
}

func CreateStackCommand(action cli.ActionFunc) *cli.Command {
	names := make([]string, len(stackOperations))
	for i, op := range stackOperations {
		names[i] = string(op)
	}
	return &cli.Command{
		Name:      "stack",
		Usage:     "Pushes values onto a min-tracking stack and runs operations on it",
		UsageText: "stack [--value N]... [operation]...",
		Description: "Runs the given operations in order against the stack. Operations: " +
			strings.Join(names, ", ") + ". Default: values, min, sum",
		Action: action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			LanguageFlag,
			LogLevelFlag,
			ReportOutputPathFlag,
			ValueFlag,
		},
	}
}

func RunStack(ctx *cli.Context) error {
	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	ops, err := parseStackOperations(ctx.Args().Slice())
	if err != nil {
		return err
	}

	stack := minstack.New(s.profile.Seed...)
	for _, v := range ctx.IntSlice(ValueFlag.Name) {
		stack.Push(v)
	}

	results := make([]*renderer.Result, 0, len(ops))
	for _, op := range ops {
		result := applyStackOperation(stack, op)
		s.logger.Debug("stack operation", zap.String("operation", string(op)), zap.Int("size", stack.Len()))
		results = append(results, result)
	}
	return s.writeReport(ctx, results)
}

func parseStackOperations(args []string) ([]renderer.Operation, error) {
	if len(args) == 0 {
		return []renderer.Operation{renderer.OpValues, renderer.OpMin, renderer.OpSum}, nil
	}
	ops := make([]renderer.Operation, 0, len(args))
	for _, arg := range args {
		op := renderer.Operation(strings.ToLower(arg))
		if !isStackOperation(op) {
			return nil, fmt.Errorf("unknown stack operation %q", arg)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func isStackOperation(op renderer.Operation) bool {
	for _, known := range stackOperations {
		if op == known {
			return true
		}
	}
	return false
}

// applyStackOperation runs one operation against stack. An empty stack is
// reported in the result, it never aborts the caller.
func applyStackOperation(stack *minstack.MinStack, op renderer.Operation) *renderer.Result {
	valueOrError := func(value int, err error) *renderer.Result {
		if err != nil {
			return renderer.Failed(op, err)
		}
		return renderer.NewResult(op, "", value)
	}

	switch op {
	case renderer.OpPop:
		return valueOrError(stack.Pop())
	case renderer.OpPeek:
		return valueOrError(stack.Peek())
	case renderer.OpMin:
		return valueOrError(stack.Min())
	case renderer.OpValues:
		return renderer.NewResult(op, "", stack.Values())
	case renderer.OpSum:
		return renderer.NewResult(op, "", stack.Sum())
	case renderer.OpDedup:
		stack.RemoveDuplicates()
		return renderer.NewResult(op, "", stack.Values())
	case renderer.OpSort:
		// sorts a copy, the stack itself is left as is
		sorted := algorithm.SortStack(lifo.New(stack.Values()...))
		return renderer.NewResult(op, "", sorted.Values())
	case renderer.OpCycle:
		return renderer.NewResult(op, "", stack.ContainsCycle())
	}
	return renderer.Failed(op, fmt.Errorf("unknown stack operation %q", op))
}
