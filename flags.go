package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/talkdeck/internal/flagvalue"
	"go.abhg.dev/talkdeck/internal/highlight"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that may be used in place of flags.
const _envPrefix = "TALKDECK"

// params holds all arguments for talkdeck.
type params struct {
	version bool
	help    Help

	Debug flagvalue.FileSwitch

	OutputDir string

	Style        string
	InlineStyles bool
	Stylesheets  []stylesheet

	Watch bool

	Decks []string
}

// cliParser parses the command line arguments for talkdeck.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("talkdeck", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	flag.StringVar(&p.OutputDir, "out", ".", "")

	// HTML output:
	flag.StringVar(&p.Style, "style", highlight.PlainStyle.Name, "")
	flag.BoolVar(&p.InlineStyles, "inline-styles", false, "")
	flag.Var(flagvalue.ListOf(&p.Stylesheets), "stylesheet", "")

	// Program-level:
	flag.BoolVar(&p.Watch, "watch", false, "")
	flag.String("config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if !errors.Is(err, errHelp) {
			// Errors from the flag package are already printed.
			// Those from ff are not.
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "talkdeck", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if _, ok := highlight.Style(p.Style); !ok {
		fmt.Fprintf(cmd.Stderr, "Unknown highlighting style %q.\n", p.Style)
		return nil, errInvalidArguments
	}

	p.Decks = args
	if len(p.Decks) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one deck file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// stylesheet is the address of a stylesheet linked from a deck.
type stylesheet string

var _ flag.Getter = (*stylesheet)(nil)

func (s *stylesheet) Get() any { return string(*s) }

func (s *stylesheet) String() string { return string(*s) }

func (s *stylesheet) Set(v string) error {
	if v == "" {
		return errors.New("stylesheet must not be empty")
	}
	*s = stylesheet(v)
	return nil
}
