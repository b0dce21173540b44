// Package cli provides the Cobra command for peek.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/peek/internal/format"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Environment is what the command touches outside the file being shown.
// Zero fields fall back to the process terminal.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer

	// NewScreen returns an initialized screen for the pager.
	NewScreen func() (tcell.Screen, error)
	// IsTerminal reports whether Stdout is an interactive terminal.
	IsTerminal func() bool
	// TermWidth reports the terminal width in columns.
	TermWidth func() int
	// ColorProfile reports the colors images may use on Stdout.
	ColorProfile func() termenv.Profile
}

func (e Environment) withDefaults() Environment {
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	if e.NewScreen == nil {
		e.NewScreen = newTerminalScreen
	}
	if e.IsTerminal == nil {
		e.IsTerminal = stdoutIsTerminal
	}
	if e.TermWidth == nil {
		e.TermWidth = stdoutWidth
	}
	if e.ColorProfile == nil {
		e.ColorProfile = stdoutColorProfile
	}
	return e
}

func newTerminalScreen() (tcell.Screen, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stdoutWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// stdoutColorProfile downgrades image colors only for a terminal that
// cannot show them. Redirected output keeps full color.
func stdoutColorProfile() termenv.Profile {
	if !stdoutIsTerminal() {
		return termenv.TrueColor
	}
	return lipgloss.NewRenderer(os.Stdout).ColorProfile()
}

func versionString(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" && info.Date == "" {
		return info.Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.Date)
}

// documentFormats lists the registered formatters and their extensions.
func documentFormats() string {
	var b strings.Builder
	for _, f := range format.NewRegistry(format.Options{}).Formatters() {
		exts := make([]string, 0, len(f.Extensions()))
		for _, ext := range f.Extensions() {
			exts = append(exts, "."+ext)
		}
		fmt.Fprintf(&b, "  %-10s %s\n", f.Name(), strings.Join(exts, " "))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

type rootOptions struct {
	configPath string
	debug      bool
	logLevel   string
	plain      bool
}

// NewRootCommand creates the peek command wired to the process terminal.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return NewRootCommandWithEnvironment(info, Environment{})
}

// NewRootCommandWithEnvironment creates the peek command using env for
// output and terminal access.
func NewRootCommandWithEnvironment(info BuildInfo, env Environment) *cobra.Command {
	env = env.withDefaults()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "peek [flags] <file>",
		Short: "Preview a file in the terminal",
		Long: `peek shows a file in the terminal.

Markdown and PDF documents open in a scrollable pager, images are drawn
with colored half blocks, and other text is printed as is. When stdout
is not a terminal, or --plain is given, documents are printed instead of
paged.

Document formats:
` + documentFormats(),
		Args:          cobra.ExactArgs(1),
		Version:       versionString(info),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), env, opts, args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to config file")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.plain, "plain", false, "print documents instead of opening the pager")

	rootCmd.SetOut(env.Stdout)
	rootCmd.SetErr(env.Stderr)
	rootCmd.SetVersionTemplate("peek {{.Version}}\n")

	return rootCmd
}
