package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"winvol/internal/adapter/secondary/volume"
	"winvol/internal/config"
	"winvol/internal/domain"
	"winvol/internal/logging"
	"winvol/internal/usecase"
)

// Exit codes. Usage and help are not failures.
const (
	ExitOK              = 0
	ExitInvalidArgument = 1
	ExitOutOfRange      = 2
	ExitPlatform        = 3
)

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"

// App is the primary adapter translating argv into a single VolumeSetter call.
type App struct {
	// Out receives every user-facing message. Defaults to os.Stdout.
	Out io.Writer
	// Getenv reads WINVOL_FLAGS. Nil disables environment defaults.
	Getenv config.Lookup
	// Platform builds the audio subsystem. Defaults to volume.NewPlatform.
	Platform func() domain.AudioSubsystem
	// Prompt reads one line for --prompt. Defaults to a readline prompt.
	Prompt func(prompt string) (string, error)
}

type options struct {
	verbosity int
	logLevel  string
	dryRun    bool
	prompt    bool
}

// flagError marks a command-line flag problem so it is reported with usage.
type flagError struct {
	err error
}

func (e *flagError) Error() string { return e.err.Error() }

func (e *flagError) Unwrap() error { return e.err }

// Run executes the command with args (without the program name) and
// returns the process exit code.
func (a *App) Run(args []string) int {
	out := a.out()
	args, err := config.Args(a.Getenv, args)
	if err != nil {
		fmt.Fprintln(out, err)
		return ExitInvalidArgument
	}

	cmd := a.NewRootCmd()
	cmd.SetArgs(separatePositionals(args, cmd.Flags()))
	return a.report(cmd.Execute())
}

// NewRootCmd creates the root CLI command.
func (a *App) NewRootCmd() *cobra.Command {
	opts := &options{}
	out := a.out()

	cmd := &cobra.Command{
		Use:           "winvol <volume>",
		Short:         "Sets the master volume of the default system audio device",
		Args:          cobra.ArbitraryArgs,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetVerbosity(opts.verbosity)
			if opts.logLevel != "" {
				if err := logging.SetLevel(opts.logLevel); err != nil {
					return &flagError{err: err}
				}
			}
			logging.Debugf("log level: %s (-v x%d)", logging.LevelName(), logging.Verbosity())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(opts, args)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetVersionTemplate("winvol {{.Version}}\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printUsage(c.OutOrStdout())
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		printUsage(c.OutOrStdout())
		return nil
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &flagError{err: err}
	})

	opts.bind(cmd.Flags())
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	return cmd
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.CountVarP(&o.verbosity, "verbose", "v", "increase log verbosity (-v, -vv, -vvv)")
	fs.StringVar(&o.logLevel, "log-level", "", "log level (error|warn|info|debug|trace)")
	fs.BoolVar(&o.dryRun, "dry-run", false, "walk the audio chain without changing the volume")
	fs.BoolVar(&o.prompt, "prompt", false, "read the volume from an interactive prompt")
}

func (a *App) run(opts *options, args []string) error {
	if opts.prompt {
		if len(args) != 0 {
			return domain.ErrUsage
		}
		line, err := a.prompt()
		if err != nil {
			return err
		}
		args = []string{line}
	}
	if len(args) != 1 {
		return domain.ErrUsage
	}

	level, err := domain.ParseLevel(args[0])
	if err != nil {
		return err
	}

	platform := a.platform(opts.dryRun)
	setter, err := usecase.NewVolumeSetter(platform)
	if err != nil {
		return err
	}
	if err := setter.SetVolume(level); err != nil {
		return err
	}

	fmt.Fprintf(a.out(), "Master volume set to %s\n", level)
	return nil
}

func (a *App) report(err error) int {
	out := a.out()
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, domain.ErrUsage) {
		printUsage(out)
		return ExitOK
	}

	var (
		parseErr    *domain.ParseError
		rangeErr    *domain.RangeError
		platformErr *domain.PlatformError
		flagErr     *flagError
	)
	switch {
	case errors.As(err, &parseErr):
		if parseErr.OutOfRange() {
			fmt.Fprintln(out, "Float out of range")
		} else {
			fmt.Fprintln(out, "Invalid floating point argument")
		}
		printUsage(out)
		return ExitInvalidArgument
	case errors.As(err, &rangeErr):
		fmt.Fprintln(out, "Value out of range. Expected value between 0 and 1.")
		return ExitOutOfRange
	case errors.As(err, &platformErr):
		printPlatformError(out, platformErr)
		return ExitPlatform
	case errors.As(err, &flagErr):
		fmt.Fprintln(out, "Error:", flagErr)
		printUsage(out)
		return ExitInvalidArgument
	default:
		fmt.Fprintln(out, "Error:", err)
		return ExitInvalidArgument
	}
}

func printPlatformError(w io.Writer, err *domain.PlatformError) {
	if err.Step == domain.StepInitialize {
		fmt.Fprintf(w, "%s. Error Code: %d\n", err.Step.Description(), err.Code.Signed())
		return
	}
	fmt.Fprintln(w, err.Step.Description())
	fmt.Fprintf(w, "HRESULT: %s\n", err.Code.Label())
}

func (a *App) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

func (a *App) platform(dryRun bool) domain.AudioSubsystem {
	if dryRun {
		return volume.NewNoopPlatform()
	}
	if a.Platform != nil {
		return a.Platform()
	}
	return volume.NewPlatform()
}

// prompt reads the volume argument interactively. A closed prompt or an
// empty line counts as no argument.
func (a *App) prompt() (string, error) {
	read := a.Prompt
	if read == nil {
		read = readlinePrompt
	}
	line, err := read("volume> ")
	if errors.Is(err, io.EOF) {
		return "", domain.ErrUsage
	}
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", domain.ErrUsage
	}
	return line, nil
}

func readlinePrompt(prompt string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     config.HistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

// separatePositionals moves single-dash tokens that are not registered
// shorthand flags, such as "-0.5" or "-abc", behind a "--" terminator so
// they reach float parsing instead of flag parsing.
func separatePositionals(args []string, fs *pflag.FlagSet) []string {
	rest := make([]string, 0, len(args)+1)
	var positionals []string
	for i, arg := range args {
		if arg == "--" {
			rest = append(rest, "--")
			rest = append(rest, positionals...)
			return append(rest, args[i+1:]...)
		}
		if !isShorthandFlags(arg, fs) {
			positionals = append(positionals, arg)
			continue
		}
		rest = append(rest, arg)
	}
	if len(positionals) == 0 {
		return rest
	}
	rest = append(rest, "--")
	return append(rest, positionals...)
}

// isShorthandFlags reports whether arg should be left to the flag parser:
// anything not shaped like "-xyz", or a "-xyz" group where every letter
// is a registered shorthand.
func isShorthandFlags(arg string, fs *pflag.FlagSet) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return true
	}
	name, _, _ := strings.Cut(arg[1:], "=")
	for _, r := range name {
		if r > 127 || fs.ShorthandLookup(string(r)) == nil {
			return false
		}
	}
	return true
}
