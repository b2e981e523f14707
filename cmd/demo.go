package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankaccount"
	"github.com/google/subcommands"
)

// demoCmd walks through the account operations on a few sample accounts.
type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "demonstrate deposits, withdrawals and statements" }
func (*demoCmd) Usage() string {
	return `acct demo

  Opens an account with $100.00, tries a few valid and invalid operations
  printing the balance after each of them, then prints the statement.
  Three more accounts are opened to show the account numbering.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	reg := newRegistry(cfg)

	account := reg.OpenWithBalance(bankaccount.M(100))
	fmt.Fprintf(stdout, "New Account Balance: %s\n", account.FormattedBalance())

	steps := []struct {
		label string
		op    func(bankaccount.Money)
		value int
	}{
		{"Withdrawing", account.Withdraw, 200},
		{"Withdrawing", account.Withdraw, -100},
		{"Depositing", account.Deposit, -100},
		{"Depositing", account.Deposit, 1000},
		{"Withdrawing", account.Withdraw, 200},
	}
	for _, s := range steps {
		fmt.Fprintf(stdout, "%s %d\n", s.label, s.value)
		s.op(bankaccount.M(s.value))
		fmt.Fprintf(stdout, "New Balance: %s\n", account.FormattedBalance())
	}
	fmt.Fprintln(stdout, "*************************************")
	fmt.Fprintln(stdout, account.Statement())

	accounts := []*bankaccount.Account{
		account,
		reg.OpenWithBalance(bankaccount.M(50)),
		reg.OpenWithBalance(bankaccount.M(150)),
		reg.Open(),
	}
	for i, a := range accounts {
		fmt.Fprintf(stdout, "Account %d Number: %s   Balance: %s\n", i+1, a.Number(), a.FormattedBalance())
	}
	return subcommands.ExitSuccess
}
