package bankaccount

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Account is a single bank account: a balance and the log of every
// operation attempted on it.
//
// Operations never fail. Invalid amounts and insufficient funds leave the
// balance untouched and are recorded in the log, which is the only way for a
// caller to learn that an operation was rejected.
type Account struct {
	mu      sync.Mutex
	number  string
	balance Money
	entries []Entry

	now    func() time.Time
	logger *log.Logger
}

// record appends an entry. Callers hold a.mu, or own a not yet published account.
func (a *Account) record(kind EntryKind, amount Money, rejected bool, msg string) {
	a.entries = append(a.entries, Entry{
		ID:       uuid.New(),
		Time:     a.now(),
		Kind:     kind,
		Amount:   amount,
		Rejected: rejected,
		Message:  msg,
	})
}

// Number returns the account number, e.g. "ACCT100000".
func (a *Account) Number() string { return a.number }

// Deposit adds amount to the balance. Non-positive amounts are rejected.
func (a *Account) Deposit(amount Money) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !amount.IsPositive() {
		a.record(KindDeposit, amount, true, "Attempted to deposit invalid amount: "+amount.Natural())
		a.logger.Debug("deposit rejected", "account", a.number, "amount", amount, "reason", "invalid amount")
		return
	}
	a.balance = a.balance.Add(amount)
	a.record(KindDeposit, amount, false, "Deposited: "+amount.Display())
	a.logger.Debug("deposit", "account", a.number, "amount", amount, "balance", a.balance)
}

// Withdraw removes amount from the balance. Non-positive amounts and amounts
// above the balance are rejected.
func (a *Account) Withdraw(amount Money) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !amount.IsPositive() {
		a.record(KindWithdraw, amount, true, "Attempted to withdraw invalid amount: "+amount.Natural())
		a.logger.Debug("withdraw rejected", "account", a.number, "amount", amount, "reason", "invalid amount")
		return
	}
	if amount.GreaterThan(a.balance) {
		a.record(KindWithdraw, amount, true, "Attempted to withdraw "+amount.Display()+" but insufficient funds.")
		a.logger.Debug("withdraw rejected", "account", a.number, "amount", amount, "reason", "insufficient funds")
		return
	}
	a.balance = a.balance.Sub(amount)
	a.record(KindWithdraw, amount, false, "Withdrew: "+amount.Display())
	a.logger.Debug("withdraw", "account", a.number, "amount", amount, "balance", a.balance)
}

// Balance returns the current balance.
func (a *Account) Balance() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// FormattedBalance returns the balance as "$<amount>" with two decimals.
func (a *Account) FormattedBalance() string {
	return a.Balance().Display()
}

// Snapshot is a consistent copy of an account: its balance is the result of
// the accepted entries of its log.
type Snapshot struct {
	Number  string
	Balance Money
	Entries []Entry
}

// Snapshot returns the number, balance and log of a, read under a single lock.
func (a *Account) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	entries := make([]Entry, len(a.entries))
	copy(entries, a.entries)
	return Snapshot{
		Number:  a.number,
		Balance: a.balance,
		Entries: entries,
	}
}

// Entries returns a copy of the transaction log, oldest first.
func (a *Account) Entries() []Entry {
	return a.Snapshot().Entries
}

// Statement returns the transaction log, one timestamped entry per line.
func (a *Account) Statement() string {
	var b strings.Builder
	for _, e := range a.Snapshot().Entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface for Account.
func (a *Account) MarshalJSON() ([]byte, error) {
	s := a.Snapshot()
	var w jsonObjectWriter
	w.Append("number", s.Number)
	w.Append("balance", s.Balance)
	w.Append("entries", s.Entries)
	return w.MarshalJSON()
}
