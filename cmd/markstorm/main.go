// Package main is the command-line front end for the markstorm
// formatting engine: it applies a named formatting command to a document
// at a given selection, or reports the format state there, and prints the
// result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/markstorm/internal/engine/buffer"
	"github.com/dshills/markstorm/internal/engine/format"
	"github.com/dshills/markstorm/internal/locale"
	"github.com/dshills/markstorm/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// commandNewline is handled outside format.Apply because it also reports
// whether the keypress was consumed.
const commandNewline = "newline"

type options struct {
	command     string
	start       int
	end         int
	file        string
	localeFile  string
	scriptFile  string
	state       bool
	listCmds    bool
	showVersion bool
}

type result struct {
	Text           string `json:"text"`
	SelectionStart int    `json:"selectionStart"`
	SelectionEnd   int    `json:"selectionEnd"`
	Handled        *bool  `json:"handled,omitempty"`
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("markstorm %s (%s)\n", version, commit)
		return 0
	}

	eng, err := newEngine(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.listCmds {
		for _, name := range eng.Commands() {
			fmt.Println(name)
		}
		return 0
	}

	text, err := readInput(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	buf := buffer.New(text, buffer.Select(opts.start, opts.end))

	var out any
	switch {
	case opts.state:
		out = eng.Detect(buf)

	case opts.command == commandNewline:
		nb, handled := eng.HandleNewline(buf)
		out = result{
			Text:           nb.Text,
			SelectionStart: nb.Sel.Start,
			SelectionEnd:   nb.Sel.End,
			Handled:        &handled,
		}

	case opts.command != "":
		nb, err := eng.Apply(buf, opts.command)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		out = result{
			Text:           nb.Text,
			SelectionStart: nb.Sel.Start,
			SelectionEnd:   nb.Sel.End,
		}

	default:
		fmt.Fprintln(os.Stderr, "Error: one of -cmd, -state, or -commands is required")
		return 2
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// newEngine builds the engine from the locale and script flags.
func newEngine(opts options) (*format.Engine, error) {
	var engineOpts []format.Option

	if opts.localeFile != "" {
		cat := locale.NewCatalog()
		if err := cat.LoadFile(opts.localeFile); err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, format.WithPlaceholders(cat))
	}

	eng := format.New(engineOpts...)

	if opts.scriptFile != "" {
		if err := script.Register(eng, opts.scriptFile); err != nil {
			return nil, err
		}
	}

	return eng, nil
}

// readInput reads the document from a file, or stdin when path is "-" or
// empty.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.command, "cmd", "", "formatting command to apply (see -commands)")
	flag.IntVar(&opts.start, "start", 0, "selection start (UTF-16 code units)")
	flag.IntVar(&opts.end, "end", 0, "selection end (UTF-16 code units)")
	flag.StringVar(&opts.file, "file", "-", "input file ('-' for stdin)")
	flag.StringVar(&opts.localeFile, "locale", "", "TOML placeholder catalog")
	flag.StringVar(&opts.scriptFile, "script", "", "Lua command script")
	flag.BoolVar(&opts.state, "state", false, "print the format state at the selection")
	flag.BoolVar(&opts.listCmds, "commands", false, "list available commands")
	flag.BoolVar(&opts.showVersion, "version", false, "print version")

	flag.Parse()
	return opts
}
