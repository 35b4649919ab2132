// Command massrename opens a window listing files to rename. Paths come
// from the arguments and, with --stdin, one per line from standard input.
// Select rows with the mouse and press Delete to drop them from the list.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/BrandonKowalski/massrename/internal/logging"
	"github.com/BrandonKowalski/massrename/internal/sdlhost"
	"github.com/BrandonKowalski/massrename/pkg/massrename"
	"github.com/BrandonKowalski/massrename/pkg/massrename/constants"
	"github.com/BrandonKowalski/massrename/pkg/widget"
	"github.com/BrandonKowalski/massrename/pkg/widget/headless"
)

type options struct {
	configPath string
	lang       string
	logLevel   string
	style      string
	highlight  string
	stdin      bool
	dump       bool
}

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	logging.CloseLogger()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "massrename [path...]",
		Short: "Pick files to rename in bulk",
		Example: `
# List a few files
massrename a.jpg b.jpg c.jpg

# List everything find prints
find . -name '*.jpg' | massrename --stdin`,
		Version:       constants.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dump {
				// The dump owns stdout.
				logging.SetConsole(cmd.ErrOrStderr())
			}
			err := run(cmd.Context(), opts, args, cmd.OutOrStdout())
			if err != nil {
				logging.GetLogger().Error("massrename failed", "error", err,
					"infrastructure", massrename.IsInfrastructureError(err))
				fmt.Fprintln(cmd.ErrOrStderr(), "massrename:", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", constants.DefaultConfigFile, "configuration file")
	flags.StringVar(&opts.lang, "lang", "", "interface language, such as de or en-GB")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&opts.style, "style", "", "list style preset: light or dark")
	flags.StringVar(&opts.highlight, "highlight", "", "text shown as the current highlight filter")
	flags.BoolVar(&opts.stdin, "stdin", false, "read paths from standard input")
	flags.BoolVar(&opts.dump, "dump", false, "print the draw commands of one frame instead of opening a window")

	return cmd
}

func loadConfig(opts options) (massrename.Config, error) {
	cfg, err := massrename.LoadConfigIfExists(opts.configPath)
	if err != nil {
		return cfg, err
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.style != "" {
		cfg.Style.Preset = opts.style
	}
	if opts.lang != "" {
		cfg.Locale = opts.lang
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, opts options, paths []string, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logging.SetLogPath(cfg.LogPath)
	logging.SetRawLogLevel(cfg.LogLevel)
	if logging.ParseLevel(cfg.LogLevel) == slog.LevelDebug {
		logging.SetInternalLogLevel(slog.LevelDebug)
	}

	invalidEnv := cfg.ApplyDevEnvironment()

	logger := logging.GetLogger()
	if len(invalidEnv) > 0 {
		logger.Warn("Invalid window size; using configured size", "variables", invalidEnv)
	}
	if len(cfg.Ignored) > 0 {
		logger.Warn("Ignoring unknown config keys", "path", opts.configPath, "keys", cfg.Ignored)
	}

	loc, err := massrename.NewLocalizer(
		cfg.Locale,
		massrename.LocaleFromEnv(os.Getenv(constants.LangEnvVar)),
		constants.DefaultLocale,
	)
	if err != nil {
		return err
	}

	app, err := massrename.New(cfg, loc, paths)
	if err != nil {
		return err
	}
	if opts.highlight != "" {
		app.Update(massrename.HighlightChanged{Value: opts.highlight})
	}

	logger.Info("Starting massrename", "version", constants.Version, "paths", len(paths), "stdin", opts.stdin)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if opts.dump {
		return dump(ctx, app, cfg, opts.stdin, stdout)
	}
	return show(ctx, app, cfg, opts.stdin)
}

// dump reads every path first, then renders one frame with the headless
// renderer and writes its draw commands to out.
func dump(ctx context.Context, app *massrename.App, cfg massrename.Config, stdin bool, out io.Writer) error {
	if stdin {
		received := make(chan massrename.Message)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer close(received)
			return massrename.ReadPaths(gctx, os.Stdin, received)
		})
		for msg := range received {
			app.Update(msg)
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	r := headless.NewWithTextSize(float32(cfg.FontSize))
	view := app.View()
	size := widget.Size{Width: float32(cfg.WindowWidth), Height: float32(cfg.WindowHeight)}
	node := view.Layout(r, widget.NewLimits(widget.ZeroSize, size))
	layout := widget.NewLayout(&node)

	theme := app.Theme()
	r.FillQuad(widget.Quad{Bounds: layout.Bounds()}, theme.Background)
	view.Draw(r, widget.RenderStyle{TextColor: theme.Text}, layout, widget.Point{X: -1, Y: -1}, layout.Bounds())

	return r.Dump(out)
}

// show runs the window on the calling goroutine, which must be the main
// one.
func show(ctx context.Context, app *massrename.App, cfg massrename.Config, stdin bool) error {
	theme := app.Theme()
	window := sdlhost.DefaultWindowOptions()
	window.TopLeft = constants.IsDevMode()

	host, err := sdlhost.Init(sdlhost.Options{
		Title:      app.Title(),
		Width:      cfg.WindowWidth,
		Height:     cfg.WindowHeight,
		FontPaths:  []string{os.Getenv(constants.FontPathEnvVar), cfg.FontPath},
		FontSize:   cfg.FontSize,
		Background: theme.Background,
		TextColor:  theme.Text,
		Window:     window,
	})
	if err != nil {
		return err
	}
	defer host.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	received := make(chan massrename.Message, 4)
	if stdin {
		// Not waited for: the read may stay blocked on an open stdin. A
		// failed read leaves the window open with what arrived so far.
		go func() {
			err := massrename.ReadPaths(ctx, os.Stdin, received)
			if err != nil && !errors.Is(err, context.Canceled) {
				logging.GetLogger().Error("Reading paths failed", "error", err)
			}
		}()
	}

	err = sdlhost.Run[massrename.Message](ctx, host, app, received)

	if errors.Is(err, context.Canceled) {
		logging.GetLogger().Info("Interrupted")
		return nil
	}
	return err
}
