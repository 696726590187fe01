package cmd

import (
	"errors"
	"strings"

	"github.com/ChainSafe/stackkit/algorithm"
	"github.com/ChainSafe/stackkit/renderer"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var errMissingInput = errors.New("missing input argument")

// textExercises maps every text command to the exercise it runs.
var textExercises = map[renderer.Operation]func(string) any{
	renderer.OpBalanced:   func(s string) any { return algorithm.IsBalanced(s) },
	renderer.OpReverse:    func(s string) any { return algorithm.Reverse(s) },
	renderer.OpPalindrome: func(s string) any { return algorithm.IsPalindrome(s) },
	renderer.OpPostfix:    func(s string) any { return algorithm.InfixToPostfix(s) },
}

func CreateTextCommand(op renderer.Operation, usage string, action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        string(op),
		Usage:       usage,
		UsageText:   string(op) + " <input>",
		Description: usage + ". Arguments are joined with single spaces",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			LanguageFlag,
			LogLevelFlag,
			ReportOutputPathFlag,
		},
	}
}

// RunTextExercise returns the action running op over the command arguments.
func RunTextExercise(op renderer.Operation) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if ctx.Args().Len() == 0 {
			return errMissingInput
		}
		s, err := newSession(ctx)
		if err != nil {
			return err
		}
		defer s.close()

		input := strings.Join(ctx.Args().Slice(), " ")
		result := renderer.NewResult(op, input, textExercises[op](input))
		s.logger.Debug("text exercise", zap.String("operation", string(op)), zap.String("input", input))
		return s.writeReport(ctx, []*renderer.Result{result})
	}
}
