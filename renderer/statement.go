package renderer

import (
	"strings"

	"github.com/etnz/bankaccount"
)

// Statement is the data of a rendered account statement.
type Statement struct {
	Number  string
	Balance string
	Entries []StatementLine
}

// StatementLine is one row of the statement table.
type StatementLine struct {
	Time      string
	Operation string
	Amount    string
	Status    string
	Message   string
}

// NewStatement collects the statement data of a. Amounts are grouped by thousands.
func NewStatement(a *bankaccount.Account) *Statement {
	snap := a.Snapshot()
	s := &Statement{
		Number:  snap.Number,
		Balance: snap.Balance.Grouped(),
	}
	for _, e := range snap.Entries {
		status := "ok"
		if e.Rejected {
			status = "rejected"
		}
		s.Entries = append(s.Entries, StatementLine{
			Time:      e.Time.Format(bankaccount.TimestampLayout),
			Operation: string(e.Kind),
			Amount:    e.Amount.Grouped(),
			Status:    status,
			Message:   strings.ReplaceAll(e.Message, "|", `\|`),
		})
	}
	return s
}

// StatementMarkdown renders the statement of a as markdown.
func StatementMarkdown(a *bankaccount.Account) string {
	return RenderStatement(NewStatement(a))
}
