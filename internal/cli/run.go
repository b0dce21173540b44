package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/kk-code-lab/peek/internal/config"
	"github.com/kk-code-lab/peek/internal/direct"
	"github.com/kk-code-lab/peek/internal/document"
	"github.com/kk-code-lab/peek/internal/format"
	fsutil "github.com/kk-code-lab/peek/internal/fs"
	"github.com/kk-code-lab/peek/internal/logging"
	"github.com/kk-code-lab/peek/internal/ui/pager"
	renderui "github.com/kk-code-lab/peek/internal/ui/render"
)

var (
	// ErrNothingToShow reports a document that produced no lines.
	ErrNothingToShow = errors.New("file is empty or could not be parsed")
	// ErrUnsupported reports a file no previewer recognises.
	ErrUnsupported = errors.New("unsupported file format")
)

// FileError ties a failure to the file it happened on.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v - %s", e.Err, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func runPreview(ctx context.Context, env Environment, opts *rootOptions, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		if _, ok := logging.ParseLevel(opts.logLevel); !ok {
			return fmt.Errorf("invalid log level %q", opts.logLevel)
		}
		level = opts.logLevel
	}
	if opts.debug {
		level = "debug"
	}
	logger := logging.NewWithWriter(env.Stderr, level)
	ctx = logging.WithLogger(ctx, logger)
	if cfg.Path != "" {
		logger.Debug("loaded config", logging.FieldConfig, cfg.Path)
	}

	entry, err := fsutil.Stat(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	registry := format.NewRegistry(format.Options{RuleWidth: cfg.Markdown.RuleWidth})
	detection, err := registry.Detect(ctx, entry.FullPath)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}

	switch detection.Kind {
	case format.KindImage:
		err = direct.Image(env.Stdout, entry.FullPath, direct.ImageOptions{
			MaxWidth:  cfg.Image.MaxWidth,
			TermWidth: env.TermWidth,
			Profile:   env.ColorProfile(),
		})
	case format.KindText:
		err = direct.Text(env.Stdout, entry.FullPath, cfg.TabWidth)
	case format.KindDocument:
		err = showDocument(ctx, env, opts, cfg, detection.Formatter, entry)
	default:
		err = ErrUnsupported
	}
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

func showDocument(ctx context.Context, env Environment, opts *rootOptions, cfg *config.Config, formatter format.Formatter, entry fsutil.Entry) error {
	doc, err := formatter.Parse(ctx, entry.FullPath)
	if err != nil {
		return err
	}
	if doc.Len() == 0 {
		return ErrNothingToShow
	}
	logging.FromContext(ctx).Debug("parsed document",
		logging.FieldFormat, formatter.Name(),
		logging.FieldLines, doc.Len(),
	)

	if opts.plain || !env.IsTerminal() {
		return direct.Document(env.Stdout, doc)
	}
	return page(ctx, env, cfg, doc, entry.Name)
}

func page(ctx context.Context, env Environment, cfg *config.Config, doc *document.Document, name string) error {
	theme, err := renderui.NewColorTheme(cfg.Theme)
	if err != nil {
		return err
	}

	screen, err := env.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()

	p, err := pager.New(screen, doc, name, pager.Options{Theme: theme, TabWidth: cfg.TabWidth})
	if err != nil {
		return err
	}
	return p.Run(ctx)
}

// Execute runs the command with args and reports failures on env.Stderr.
// It returns the process exit code.
func Execute(ctx context.Context, info BuildInfo, env Environment, args []string) int {
	env = env.withDefaults()
	cmd := NewRootCommandWithEnvironment(info, env)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 1
		}
		_, _ = fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
