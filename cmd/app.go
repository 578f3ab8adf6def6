package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/leonardinius/treelox/internal/config"
	"github.com/leonardinius/treelox/internal/interpreter"
	"github.com/leonardinius/treelox/internal/loxerrors"
	"github.com/leonardinius/treelox/internal/parser"
	"github.com/leonardinius/treelox/internal/scanner"
)

// Exit codes follow sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitNoInput  = 66
	ExitSoftware = 70
	ExitIOErr    = 74
)

const usage = "Usage: golox [script]"

// lineReader is the part of *readline.Instance the prompt needs.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

type LoxApp struct {
	stdin    io.ReadCloser
	stdout   io.Writer
	stderr   io.Writer
	getenv   func(string) string
	reporter loxerrors.ErrReporter

	cfg         *config.Config
	logger      *slog.Logger
	interpreter interpreter.Interpreter

	newLineReader func(cfg *config.Config) (lineReader, error)
}

type AppOption func(*LoxApp)

func WithStdin(stdin io.ReadCloser) AppOption {
	return func(app *LoxApp) {
		app.stdin = stdin
	}
}

func WithStdout(stdout io.Writer) AppOption {
	return func(app *LoxApp) {
		app.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(app *LoxApp) {
		app.stderr = stderr
	}
}

// WithGetenv replaces os.Getenv for config discovery.
func WithGetenv(getenv func(string) string) AppOption {
	return func(app *LoxApp) {
		app.getenv = getenv
	}
}

func NewLoxApp(options ...AppOption) *LoxApp {
	app := &LoxApp{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		getenv: os.Getenv,
	}
	for _, opt := range options {
		opt(app)
	}

	app.reporter = loxerrors.NewErrReporter(app.stderr)
	app.newLineReader = app.newReadline
	return app
}

// Main runs the command line and returns the process exit code.
func (app *LoxApp) Main(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			app.reporter.ReportPanic(fmt.Errorf("%v", r))
			code = ExitSoftware
		}
	}()

	flags := flag.NewFlagSet("golox", flag.ContinueOnError)
	flags.SetOutput(app.stderr)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), usage)
		flags.PrintDefaults()
	}
	configPath := flags.String("config", "", "YAML config file (default $"+config.EnvConfigPath+")")
	printMode := flags.String("print", "", "print the parsed program instead of running it: sexpr, rpn, source or dump")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	if err := app.configure(*configPath, *printMode, *logLevel); err != nil {
		app.reporter.ReportError(err)
		return ExitUsage
	}

	switch flags.NArg() {
	case 0:
		return app.runPrompt()
	case 1:
		return app.runFile(flags.Arg(0))
	default:
		fmt.Fprintln(app.stderr, usage)
		return ExitUsage
	}
}

func (app *LoxApp) configure(configPath, printMode, logLevel string) error {
	if configPath == "" {
		configPath = app.getenv(config.EnvConfigPath)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	if printMode != "" {
		cfg.Print = printMode
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.logger = slog.New(slog.NewTextHandler(app.stderr, &slog.HandlerOptions{Level: level}))
	app.interpreter = interpreter.NewInterpreter(
		interpreter.WithStdout(app.stdout),
		interpreter.WithLogger(app.logger),
	)
	return nil
}

func (app *LoxApp) runFile(scriptPath string) int {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		app.reporter.ReportError(err)
		return ExitNoInput
	}
	app.logger.Debug("running file", slog.String("path", scriptPath), slog.Int("bytes", len(bytes)))

	if app.cfg.Print != config.PrintNone {
		return app.printProgram(string(bytes))
	}

	result := app.interpreter.Run(string(bytes))
	app.reportErrors(result.Errors())

	switch {
	case result.HasSyntaxErrors():
		return ExitDataErr
	case result.HasRuntimeErrors():
		return ExitSoftware
	}
	return ExitOK
}

func (app *LoxApp) newReadline(cfg *config.Config) (lineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           app.stdin,
		Stdout:          app.stdout,
		Stderr:          app.stderr,
	})
}

// runPrompt reads lines until EOF. Errors are reported and the session
// goes on; they never change the exit code.
func (app *LoxApp) runPrompt() int {
	rl, err := app.newLineReader(app.cfg)
	if err != nil {
		app.reporter.ReportPanic(err)
		return ExitIOErr
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return ExitOK
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return ExitOK
		}
		if err != nil {
			app.reporter.ReportPanic(err)
			return ExitIOErr
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		app.runLine(line)
	}
}

// runLine evaluates a bare expression when the line is one, and runs it
// as a program otherwise. The value is echoed only for expressions.
func (app *LoxApp) runLine(line string) {
	if app.cfg.Print != config.PrintNone {
		if !app.printExpression(line) {
			app.printProgram(line)
		}
		return
	}

	result := app.interpreter.RunExpression(line)
	if result.HasSyntaxErrors() {
		result = app.interpreter.Run(line)
	}
	app.reportErrors(result.Errors())

	if result.Expression && result.Value != nil {
		fmt.Fprintln(app.stdout, app.interpreter.Stringify(result.Value))
	}
}

// printProgram writes the parsed form of source in the configured mode.
// rpn takes source as a single expression; the other modes take a program.
func (app *LoxApp) printProgram(source string) int {
	ctx := loxerrors.NewContext()
	tokens := scanner.NewScanner(source, ctx).Scan()
	p := parser.NewParser(tokens, ctx)

	var out string
	if app.cfg.Print == config.PrintRPN {
		expr := p.ParseExpression()
		if !ctx.HasSyntaxErrors() {
			out = app.formatExpression(expr) + "\n"
		}
	} else {
		stmts := p.Parse()
		if !ctx.HasSyntaxErrors() {
			out = app.formatProgram(stmts)
		}
	}

	if ctx.HasSyntaxErrors() {
		for _, err := range ctx.SyntaxErrors() {
			app.reporter.ReportError(err)
		}
		return ExitDataErr
	}

	fmt.Fprint(app.stdout, out)
	return ExitOK
}

// printExpression writes source in the configured mode when it is a bare
// expression. It reports nothing and returns false otherwise.
func (app *LoxApp) printExpression(source string) bool {
	ctx := loxerrors.NewContext()
	tokens := scanner.NewScanner(source, ctx).Scan()
	expr := parser.NewParser(tokens, ctx).ParseExpression()
	if ctx.HasSyntaxErrors() {
		return false
	}

	fmt.Fprintln(app.stdout, app.formatExpression(expr))
	return true
}

func (app *LoxApp) formatExpression(expr parser.Expr) string {
	switch app.cfg.Print {
	case config.PrintSexpr:
		return parser.NewAstPrinter().Print(expr)
	case config.PrintRPN:
		return parser.NewRPNPrinter().Print(expr)
	case config.PrintSource:
		return parser.NewSourcePrinter().PrintExpr(expr)
	case config.PrintDump:
		return parser.Dump(expr)
	}
	panic(fmt.Sprintf("unreachable: print mode %q", app.cfg.Print))
}

func (app *LoxApp) formatProgram(stmts []parser.Stmt) string {
	switch app.cfg.Print {
	case config.PrintSexpr:
		if len(stmts) == 0 {
			return ""
		}
		return parser.NewAstPrinter().PrintStmts(stmts) + "\n"
	case config.PrintSource:
		return parser.NewSourcePrinter().Print(stmts)
	case config.PrintDump:
		return parser.Dump(stmts) + "\n"
	}
	panic(fmt.Sprintf("unreachable: print mode %q", app.cfg.Print))
}

func (app *LoxApp) reportErrors(errs []error) {
	for _, err := range errs {
		app.reporter.ReportError(err)
	}
}
