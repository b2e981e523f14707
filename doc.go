// Package bankaccount models a single bank account: deposits, withdrawals,
// balance queries and a timestamped transaction log.
//
// Accounts are opened through a Registry, which hands out account numbers
// ("ACCT100000", "ACCT100001", ...) from a sequence shared by every account
// it opens:
//
//	reg := bankaccount.NewRegistry()
//	acct := reg.OpenWithBalance(bankaccount.M(100))
//	acct.Withdraw(bankaccount.M(200)) // rejected, insufficient funds
//	acct.Deposit(bankaccount.M(1000))
//	fmt.Print(acct.Statement())
//
// Account operations never return errors. A rejected operation leaves the
// balance unchanged and is recorded in the transaction log like any other,
// so the log is a complete audit trail of attempts.
//
// The package also provides session scripts (JSONL lists of commands
// replayed against a fresh Registry), JSON exports of statements and
// JSONPath queries over them. They are the foundation of the `acct`
// command-line tool.
package bankaccount
