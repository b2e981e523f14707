package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/bankaccount"
	"github.com/google/subcommands"
)

// queryCmd replays a session script then evaluates a JSONPath expression on its accounts.
type queryCmd struct {
	sessionFile string
	query       string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the accounts of a session with JSONPath" }
func (*queryCmd) Usage() string {
	return `acct query -q <jsonpath> [-f <session.jsonl>]

  Replays a session script and prints the result of the JSONPath query as
  JSON. See 'acct topic query'.

Usage Examples:
# Balances of every account.
$ acct query -f session.jsonl -q '$.accounts[*].balance'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sessionFile, "f", "", "Session script to replay. Defaults to stdin.")
	f.StringVar(&c.query, "q", "", "JSONPath query (required)")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.query == "" {
		fmt.Fprintln(os.Stderr, "Error: -q is required")
		return subcommands.ExitUsageError
	}
	cfg, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	session, err := decodeSession(c.sessionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding session: %v\n", err)
		return subcommands.ExitFailure
	}
	accounts, err := session.Replay(newRegistry(cfg), io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying session: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := bankaccount.Query(accounts, c.query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
