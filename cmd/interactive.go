package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChainSafe/stackkit/messages"
	"github.com/ChainSafe/stackkit/minstack"
	"github.com/ChainSafe/stackkit/renderer"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

func CreateInteractiveCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "interactive",
		Usage:       "Runs the stack exercises from a numbered menu",
		Description: "Keeps one stack for the whole session. Enter 0 or close the input to exit",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			LanguageFlag,
			LogLevelFlag,
		},
	}
}

func RunInteractive(ctx *cli.Context) error {
	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	c := &console{
		stack:    minstack.New(s.profile.Seed...),
		input:    bufio.NewReader(inReader(ctx)),
		output:   outWriter(ctx),
		printer:  s.printer,
		renderer: s.renderer,
		logger:   s.logger,
	}
	return c.run()
}

// console is the menu driver. It owns the session stack.
type console struct {
	stack    *minstack.MinStack
	input    *bufio.Reader
	output   io.Writer
	printer  *message.Printer
	renderer renderer.Renderer
	logger   *zap.Logger
}

func (c *console) run() error {
	c.printMenu()
	for {
		c.say(messages.MenuPrompt)
		line, err := c.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 0 || choice > len(messages.MenuEntries) {
			c.say(messages.InvalidChoice)
			continue
		}
		if choice == 0 {
			return nil
		}

		c.logger.Debug("menu choice", zap.Int("choice", choice))
		result, err := c.execute(choice)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if result != nil {
			if err := c.renderer.Render([]*renderer.Result{result}, c.output); err != nil {
				return fmt.Errorf("unable to write result: %w", err)
			}
		}
		fmt.Fprintln(c.output)
	}
}

// execute runs one menu entry. A nil result means the entry already told the
// user what went wrong.
func (c *console) execute(choice int) (*renderer.Result, error) {
	switch choice {
	case 1:
		line, err := c.ask(messages.EnterValue)
		if err != nil {
			return nil, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.say(messages.InvalidValue)
			return nil, nil
		}
		c.stack.Push(value)
		return renderer.NewResult(renderer.OpPush, line, value), nil
	case 2:
		return c.textExercise(messages.EnterBrackets, renderer.OpBalanced)
	case 3:
		return c.textExercise(messages.EnterReverse, renderer.OpReverse)
	case 4:
		return applyStackOperation(c.stack, renderer.OpMin), nil
	case 5:
		return c.textExercise(messages.EnterPalindrome, renderer.OpPalindrome)
	case 6:
		return c.textExercise(messages.EnterInfix, renderer.OpPostfix)
	case 7:
		return applyStackOperation(c.stack, renderer.OpSort), nil
	case 8:
		return applyStackOperation(c.stack, renderer.OpSum), nil
	case 9:
		return applyStackOperation(c.stack, renderer.OpDedup), nil
	case 10:
		return applyStackOperation(c.stack, renderer.OpCycle), nil
	case 11:
		return applyStackOperation(c.stack, renderer.OpPop), nil
	case 12:
		return applyStackOperation(c.stack, renderer.OpPeek), nil
	case 13:
		return applyStackOperation(c.stack, renderer.OpValues), nil
	}
	return nil, fmt.Errorf("unknown menu entry %d", choice)
}

func (c *console) textExercise(prompt string, op renderer.Operation) (*renderer.Result, error) {
	input, err := c.ask(prompt)
	if err != nil {
		return nil, err
	}
	return renderer.NewResult(op, input, textExercises[op](input)), nil
}

func (c *console) printMenu() {
	c.say(messages.MenuHeader)
	for i, entry := range messages.MenuEntries {
		fmt.Fprintf(c.output, "%2d. %s\n", i+1, c.printer.Sprintf(entry))
	}
	fmt.Fprintln(c.output)
}

func (c *console) say(key string) {
	fmt.Fprintln(c.output, c.printer.Sprintf(key))
}

func (c *console) ask(prompt string) (string, error) {
	c.say(prompt)
	return c.readLine()
}

// readLine returns the next line of any length, or io.EOF once the input is exhausted.
func (c *console) readLine() (string, error) {
	line, err := c.input.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err == io.EOF {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
