package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankaccount"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	sessionFile string
	write       bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats a session script into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `acct fmt -f <session.jsonl> [-w]

  Validates a session script and prints it in its canonical JSONL form:
  one command per line, keys in a fixed order, no blank lines.

Usage Examples:
# Rewrites the script in place.
$ acct fmt -f session.jsonl -w
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sessionFile, "f", "", "Session script to format. Defaults to stdin.")
	f.BoolVar(&c.write, "w", false, "Write the result back to the session file instead of stdout.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.write && (c.sessionFile == "" || c.sessionFile == "-") {
		fmt.Fprintln(os.Stderr, "Error: -w requires a session file")
		return subcommands.ExitUsageError
	}
	if _, err := setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	session, err := decodeSession(c.sessionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding session: %v\n", err)
		return subcommands.ExitFailure
	}

	var b bytes.Buffer
	if err := bankaccount.EncodeSession(&b, session); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding session: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		stdout.Write(b.Bytes())
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.sessionFile, b.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing session file %q: %v\n", c.sessionFile, err)
		return subcommands.ExitFailure
	}
	logger.Info("session formatted", "file", c.sessionFile, "commands", len(session.Commands()))
	return subcommands.ExitSuccess
}
