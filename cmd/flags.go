// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/stackkit/logging"
	"github.com/ChainSafe/stackkit/messages"
	"github.com/ChainSafe/stackkit/profile"
	"github.com/ChainSafe/stackkit/renderer"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/text/message"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the YAML session profile",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: json, text",
		Required:    false,
		DefaultText: "text",
	}
	LanguageFlag = &cli.StringFlag{
		Name:        "lang",
		Usage:       "language of the messages. Options: en, ru",
		Required:    false,
		DefaultText: "en",
	}
	LogLevelFlag = &cli.StringFlag{
		Name:        "log-level",
		Usage:       "log level. Options: debug, info, warn, error",
		Required:    false,
		DefaultText: "warn",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for report. Default: stdout",
		Required: false,
	}
)

// SharedFlags are accepted both before and after the command name.
var SharedFlags = []cli.Flag{
	ProfileFlag,
	FormatFlag,
	LanguageFlag,
	LogLevelFlag,
}

// lookupFlag returns the value of a shared flag from the innermost context
// that set it, so a command flag wins over the same flag given to the app.
func lookupFlag(ctx *cli.Context, name string) (string, bool) {
	for _, c := range ctx.Lineage() {
		if c.IsSet(name) {
			return c.String(name), true
		}
	}
	return "", false
}

// session carries what every command needs, resolved from the profile and flags.
type session struct {
	profile  *profile.Profile
	printer  *message.Printer
	renderer renderer.Renderer
	logger   *zap.Logger
}

func newSession(ctx *cli.Context) (*session, error) {
	profilePath, _ := lookupFlag(ctx, ProfileFlag.Name)
	prof, err := profile.LoadProfile(profilePath)
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	if format, ok := lookupFlag(ctx, FormatFlag.Name); ok {
		prof.Format = format
	}
	if lang, ok := lookupFlag(ctx, LanguageFlag.Name); ok {
		prof.Language = lang
	}
	if level, ok := lookupFlag(ctx, LogLevelFlag.Name); ok {
		prof.LogLevel = level
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}

	printer, err := messages.NewPrinter(prof.Language)
	if err != nil {
		return nil, err
	}
	rendererInstance, err := renderer.New(prof.Format, printer)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(prof.LogLevel, errWriter(ctx))
	if err != nil {
		return nil, err
	}
	logger.Debug("session ready",
		zap.String("profile", prof.Name),
		zap.String("format", prof.Format),
		zap.String("language", prof.Language),
		zap.Ints("seed", prof.Seed),
	)
	return &session{
		profile:  prof,
		printer:  printer,
		renderer: rendererInstance,
		logger:   logger,
	}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// writeReport outputs the results to the report path, or to the app writer when unset.
func (s *session) writeReport(ctx *cli.Context, results []*renderer.Result) error {
	outputPath := ctx.Path(ReportOutputPathFlag.Name)
	output := outWriter(ctx)
	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		output = file
	}

	if err := s.renderer.Render(results, output); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

func outWriter(ctx *cli.Context) io.Writer {
	if ctx.App.Writer != nil {
		return ctx.App.Writer
	}
	return os.Stdout
}

func errWriter(ctx *cli.Context) io.Writer {
	if ctx.App.ErrWriter != nil {
		return ctx.App.ErrWriter
	}
	return os.Stderr
}

func inReader(ctx *cli.Context) io.Reader {
	if ctx.App.Reader != nil {
		return ctx.App.Reader
	}
	return os.Stdin
}
