// Package renderer provides a way to render operation results in different formats.
package renderer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ChainSafe/stackkit/messages"
	"github.com/ChainSafe/stackkit/minstack"
	"github.com/fatih/color"
	"golang.org/x/term"
	"golang.org/x/text/message"
)

var (
	positive = color.New(color.FgGreen).SprintFunc()
	negative = color.New(color.FgRed).SprintFunc()
)

// TextRenderer writes one localized line per result.
type TextRenderer struct {
	printer *message.Printer
}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer(printer *message.Printer) Renderer {
	return &TextRenderer{printer: printer}
}

// Render writes every result on its own line. Verdicts are colored when
// output is a terminal.
func (r *TextRenderer) Render(results []*Result, output io.Writer) error {
	colorize := isTerminalWriter(output) && !color.NoColor

	var report strings.Builder
	for _, result := range results {
		report.WriteString(r.line(result, colorize))
		report.WriteString("\n")
	}
	_, err := io.WriteString(output, report.String())
	return err
}

func (r *TextRenderer) line(result *Result, colorize bool) string {
	p := r.printer
	if result.Err != nil || result.Error != "" {
		msg := r.failure(result)
		if colorize {
			return negative(msg)
		}
		return msg
	}

	switch result.Operation {
	case OpPush:
		return p.Sprintf(messages.Pushed, formatInt(result.Value))
	case OpPop:
		return p.Sprintf(messages.Popped, formatInt(result.Value))
	case OpPeek:
		return p.Sprintf(messages.Top, formatInt(result.Value))
	case OpMin:
		return p.Sprintf(messages.Minimum, formatInt(result.Value))
	case OpSum:
		return p.Sprintf(messages.Sum, formatInt(result.Value))
	case OpValues:
		return p.Sprintf(messages.Contents, joinInts(result.Value))
	case OpSort:
		return p.Sprintf(messages.Sorted, joinInts(result.Value))
	case OpDedup:
		return p.Sprintf(messages.Deduplicated)
	case OpReverse:
		return p.Sprintf(messages.Reversed, result.Value)
	case OpPostfix:
		return p.Sprintf(messages.Postfix, result.Value)
	case OpBalanced:
		return r.verdict(result.Value, messages.Balanced, messages.Unbalanced, true, colorize)
	case OpPalindrome:
		return r.verdict(result.Value, messages.Palindrome, messages.NotPalindrome, true, colorize)
	case OpCycle:
		return r.verdict(result.Value, messages.CyclesFound, messages.NoCycles, false, colorize)
	}
	return fmt.Sprintf("%s: %v", result.Operation, result.Value)
}

func (r *TextRenderer) failure(result *Result) string {
	if errors.Is(result.Err, minstack.ErrEmptyStack) {
		return r.printer.Sprintf(messages.StackEmpty)
	}
	return r.printer.Sprintf(messages.Failure, result.Error)
}

// verdict picks yes or no by the boolean value; good is the value shown in green.
func (r *TextRenderer) verdict(value any, yes, no string, good, colorize bool) string {
	ok, _ := value.(bool)
	msg := r.printer.Sprintf(no)
	if ok {
		msg = r.printer.Sprintf(yes)
	}
	if !colorize {
		return msg
	}
	if ok == good {
		return positive(msg)
	}
	return negative(msg)
}

// formatInt writes value as plain digits, the same way joinInts does.
func formatInt(value any) string {
	v, _ := value.(int)
	return strconv.Itoa(v)
}

func joinInts(value any) string {
	values, _ := value.([]int)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}

func isTerminalWriter(w io.Writer) bool {
	type fdProvider interface {
		Fd() uintptr
	}
	if v, ok := w.(fdProvider); ok {
		return term.IsTerminal(int(v.Fd()))
	}
	return false
}
