// talkdeck renders slide decks described in YAML
// into static HTML presentations.
//
// See talkdeck -help for usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"go.abhg.dev/talkdeck/internal/highlight"
	"go.abhg.dev/talkdeck/internal/slides"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	// Stops watch mode when done.
	// Defaults to a context canceled on SIGINT or SIGTERM.
	ctx context.Context

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.NewWithOptions(cmd.Stderr, log.Options{
		ReportTimestamp: false,
	})

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		fmt.Fprintf(cmd.Stderr, "talkdeck: %v\n", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()
	if opts.Debug.Bool() {
		cmd.log.SetOutput(debugw)
		cmd.log.SetLevel(log.DebugLevel)
	}

	// Parse has already verified the style.
	style, _ := highlight.Style(opts.Style)

	gen := Generator{
		Log: cmd.log,
		Renderer: &slides.Renderer{
			Highlighter: &highlight.Highlighter{
				Style:      style,
				UseClasses: !opts.InlineStyles,
			},
		},
		OutDir: opts.OutputDir,
	}
	for _, s := range opts.Stylesheets {
		gen.Stylesheets = append(gen.Stylesheets, string(s))
	}

	for _, deck := range opts.Decks {
		if err := gen.Generate(deck); err != nil {
			return err
		}
	}

	if !opts.Watch {
		return nil
	}

	ctx := cmd.ctx
	if ctx == nil {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	watcher := Watcher{
		Log:       cmd.log,
		Generator: &gen,
	}
	return watcher.Watch(ctx, opts.Decks)
}
