package bankaccount

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// FirstAccountNumber is the number given to the first account of a new Registry.
const FirstAccountNumber = 100000

// Registry hands out account numbers and opens accounts.
//
// All accounts opened by the same Registry share its number sequence; numbers
// are never reused. A Registry is safe for concurrent use.
type Registry struct {
	next   atomic.Int64
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithStart sets the number of the first account.
func WithStart(n int64) Option {
	return func(r *Registry) { r.next.Store(n) }
}

// WithClock sets the clock used to timestamp entries of every account opened by the Registry.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithLogger sets the logger receiving debug records of account operations.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry creates a Registry starting at FirstAccountNumber.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		now:    Now,
		logger: log.New(io.Discard),
	}
	r.next.Store(FirstAccountNumber)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Peek returns the number the next opened account will receive.
func (r *Registry) Peek() int64 { return r.next.Load() }

// nextNumber reserves the next account number.
func (r *Registry) nextNumber() string {
	n := r.next.Add(1) - 1
	return fmt.Sprintf("ACCT%d", n)
}

// newAccount reserves a number and returns an empty account bound to the Registry clock and logger.
func (r *Registry) newAccount() *Account {
	return &Account{
		number: r.nextNumber(),
		now:    r.now,
		logger: r.logger,
	}
}

// Open creates an account with a zero balance.
func (r *Registry) Open() *Account {
	a := r.newAccount()
	var zero Money
	a.record(KindOpen, zero, false, fmt.Sprintf("Account %s created with balance: %s", a.number, zero.Display()))
	a.logger.Debug("account opened", "account", a.number, "balance", zero)
	return a
}

// OpenWithBalance creates an account holding initial. A negative initial
// balance is not an error: the account is opened with a zero balance and
// the adjustment is recorded.
func (r *Registry) OpenWithBalance(initial Money) *Account {
	a := r.newAccount()
	if initial.IsNegative() {
		var zero Money
		a.record(KindOpen, initial, true, fmt.Sprintf("Attempted to create account with negative balance. Set to %s", zero.Display()))
		a.logger.Debug("account opened", "account", a.number, "balance", zero, "requested", initial, "reason", "negative balance")
		return a
	}
	a.balance = initial
	a.record(KindOpen, initial, false, fmt.Sprintf("Account %s created with balance: %s", a.number, initial.Display()))
	a.logger.Debug("account opened", "account", a.number, "balance", initial)
	return a
}
