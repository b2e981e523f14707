// Package cmd implements the acct command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/bankaccount"
	"github.com/google/subcommands"
)

// Commands is the list of acct subcommands, in help order.
var Commands = []subcommands.Command{
	&demoCmd{},
	&runCmd{},
	&queryCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		group := "accounts"
		if cmd.Name() == "topic" {
			group = "documentation"
		}
		c.Register(cmd, group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "bankaccount.yaml", "Path to the configuration file (YAML)")
var verbose = flag.Bool("v", false, "Log account operations on stderr")

// stdout receives the command output.
var stdout io.Writer = os.Stdout

// logger is the application logger, on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "acct"})

// setup loads the configuration and applies its log level.
func setup() (Config, error) {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	if *verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return cfg, nil
}

// newRegistry creates the registry of a command run.
func newRegistry(cfg Config) *bankaccount.Registry {
	return bankaccount.NewRegistry(
		bankaccount.WithStart(cfg.Start),
		bankaccount.WithLogger(logger),
	)
}

// decodeSession reads a session script from file, or from stdin when file is "" or "-".
func decodeSession(file string) (*bankaccount.Session, error) {
	if file == "" || file == "-" {
		return bankaccount.DecodeSession(os.Stdin)
	}
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("session file %q does not exist", file)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bankaccount.DecodeSession(f)
}

// printMarkdown renders md for the terminal. The raw markdown is printed if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	logger.Warn("cannot render markdown", "err", err)
	fmt.Fprint(stdout, md)
}
