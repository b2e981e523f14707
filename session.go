package bankaccount

import (
	"fmt"
	"io"
)

// CommandType is a typed string identifying session commands.
type CommandType string

// Command types of a session script.
const (
	CmdOpen      CommandType = "open"
	CmdDeposit   CommandType = "deposit"
	CmdWithdraw  CommandType = "withdraw"
	CmdBalance   CommandType = "balance"
	CmdStatement CommandType = "statement"
)

// Command is one step of a session script.
type Command struct {
	Command CommandType `json:"command" validate:"required"`
	// Account is the number of an account opened earlier in the session.
	Account string `json:"account,omitempty" validate:"required_unless=Command open"`
	// Balance is the optional initial balance of an open command.
	Balance *Money `json:"balance,omitempty"`
	Amount  *Money `json:"amount,omitempty" validate:"required_if=Command deposit,required_if=Command withdraw"`
}

// NewOpen creates a command opening an account with a zero balance.
func NewOpen() Command { return Command{Command: CmdOpen} }

// NewOpenWithBalance creates a command opening an account holding initial.
func NewOpenWithBalance(initial Money) Command {
	return Command{Command: CmdOpen, Balance: &initial}
}

// NewDeposit creates a deposit command.
func NewDeposit(account string, amount Money) Command {
	return Command{Command: CmdDeposit, Account: account, Amount: &amount}
}

// NewWithdraw creates a withdraw command.
func NewWithdraw(account string, amount Money) Command {
	return Command{Command: CmdWithdraw, Account: account, Amount: &amount}
}

// NewBalance creates a command printing the balance of account.
func NewBalance(account string) Command { return Command{Command: CmdBalance, Account: account} }

// NewStatement creates a command printing the statement of account.
func NewStatement(account string) Command { return Command{Command: CmdStatement, Account: account} }

// MarshalJSON implements the json.Marshaler interface for Command.
func (c Command) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", c.Command)
	w.Optional("account", c.Account)
	w.Optional("balance", c.Balance)
	w.Optional("amount", c.Amount)
	return w.MarshalJSON()
}

// Session is an ordered list of commands, replayed against a Registry.
type Session struct {
	commands []Command
}

// NewSession creates a session from commands.
func NewSession(commands ...Command) *Session {
	return &Session{commands: commands}
}

// Commands returns the commands of the session in order.
func (s *Session) Commands() []Command { return s.commands }

// Append adds commands at the end of the session.
func (s *Session) Append(commands ...Command) { s.commands = append(s.commands, commands...) }

// Replay executes the session in order against reg and returns the accounts
// it opened, in opening order.
//
// Balance and statement commands print to w. Rejected deposits and
// withdrawals are not errors: they end up in the account log. Only
// references to accounts the session never opened are.
func (s *Session) Replay(reg *Registry, w io.Writer) ([]*Account, error) {
	opened := make([]*Account, 0)
	byNumber := make(map[string]*Account)

	lookup := func(i int, c Command) (*Account, error) {
		a, ok := byNumber[c.Account]
		if !ok {
			return nil, fmt.Errorf("command %d (%s): %w %q", i+1, c.Command, ErrUnknownAccount, c.Account)
		}
		return a, nil
	}

	for i, c := range s.commands {
		switch c.Command {
		case CmdOpen:
			var a *Account
			if c.Balance == nil {
				a = reg.Open()
			} else {
				a = reg.OpenWithBalance(*c.Balance)
			}
			opened = append(opened, a)
			byNumber[a.Number()] = a

		case CmdDeposit, CmdWithdraw:
			a, err := lookup(i, c)
			if err != nil {
				return opened, err
			}
			var amount Money
			if c.Amount != nil {
				amount = *c.Amount
			}
			if c.Command == CmdDeposit {
				a.Deposit(amount)
			} else {
				a.Withdraw(amount)
			}

		case CmdBalance:
			a, err := lookup(i, c)
			if err != nil {
				return opened, err
			}
			if _, err := fmt.Fprintf(w, "%s %s\n", a.Number(), a.Balance()); err != nil {
				return opened, err
			}

		case CmdStatement:
			a, err := lookup(i, c)
			if err != nil {
				return opened, err
			}
			if _, err := io.WriteString(w, a.Statement()); err != nil {
				return opened, err
			}

		default:
			return opened, fmt.Errorf("command %d: %w %q", i+1, ErrUnknownCommand, c.Command)
		}
	}
	return opened, nil
}
