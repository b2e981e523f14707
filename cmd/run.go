package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/bankaccount"
	"github.com/etnz/bankaccount/renderer"
	"github.com/google/subcommands"
)

// runCmd replays a session script.
type runCmd struct {
	sessionFile string
	format      string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "replay a session script" }
func (*runCmd) Usage() string {
	return `acct run [-f <session.jsonl>] [-format text|markdown|json]

  Replays a session script, one JSON command per line, against a fresh
  sequence of account numbers. See 'acct topic session'.

  With the text format, balance and statement commands print as they are
  replayed. The markdown and json formats print every opened account once
  the script is over.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sessionFile, "f", "", "Session script to replay. Defaults to stdin.")
	f.StringVar(&c.format, "format", "", "Output format: text, markdown or json. Defaults to the configured format.")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	format := c.format
	if format == "" {
		format = cfg.Format
	}
	switch format {
	case FormatText, FormatMarkdown, FormatJSON:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", format)
		return subcommands.ExitUsageError
	}

	session, err := decodeSession(c.sessionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding session: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = io.Discard
	if format == FormatText {
		w = stdout
	}
	accounts, err := session.Replay(newRegistry(cfg), w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying session: %v\n", err)
		return subcommands.ExitFailure
	}

	switch format {
	case FormatMarkdown:
		var b strings.Builder
		for _, a := range accounts {
			b.WriteString(renderer.StatementMarkdown(a))
			b.WriteString("\n")
		}
		printMarkdown(b.String())
	case FormatJSON:
		if err := encodeAccounts(stdout, accounts); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding accounts: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// encodeAccounts writes accounts as an indented JSON document.
func encodeAccounts(w io.Writer, accounts []*bankaccount.Account) error {
	if accounts == nil {
		accounts = []*bankaccount.Account{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Accounts []*bankaccount.Account `json:"accounts"`
	}{accounts})
}
