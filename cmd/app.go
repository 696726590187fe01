package cmd

import (
	"github.com/ChainSafe/stackkit/renderer"
	"github.com/urfave/cli/v2"
)

// NewApp builds the stackkit application. Without a command name it runs
// the interactive console.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "stackkit"
	app.Usage = "Stack data structure exercises"
	app.UsageText = "stackkit [--profile FILE] [--format text|json] [--lang en|ru] [--log-level LEVEL] [command [options] [args...]]"
	app.Description = "Min-tracking stack, bracket matching, string reversal, palindromes, infix to postfix and stack sorting"
	app.Flags = SharedFlags
	app.Commands = []*cli.Command{
		CreateInteractiveCommand(RunInteractive),
		CreateStackCommand(RunStack),
		CreateTextCommand(renderer.OpBalanced,
			"Checks that (), {} and [] are properly nested", RunTextExercise(renderer.OpBalanced)),
		CreateTextCommand(renderer.OpReverse,
			"Reverses a string", RunTextExercise(renderer.OpReverse)),
		CreateTextCommand(renderer.OpPalindrome,
			"Checks whether a string reads the same backwards", RunTextExercise(renderer.OpPalindrome)),
		CreateTextCommand(renderer.OpPostfix,
			"Converts an infix expression of single digits and + - * / to postfix", RunTextExercise(renderer.OpPostfix)),
	}
	app.DefaultCommand = "interactive"
	return app
}
