package bankaccount

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind identifies the operation an Entry records.
type EntryKind string

// Entry kinds.
const (
	KindOpen     EntryKind = "open"
	KindDeposit  EntryKind = "deposit"
	KindWithdraw EntryKind = "withdraw"
)

// Entry is one line of an account transaction log. Rejected attempts are
// recorded as well: the log is an audit trail of attempts, not of mutations.
type Entry struct {
	ID       uuid.UUID
	Time     time.Time
	Kind     EntryKind
	Amount   Money // amount requested by the caller, even when rejected
	Rejected bool
	Message  string
}

// String returns the statement line, without the trailing newline.
func (e Entry) String() string {
	return "[" + e.Time.Format(TimestampLayout) + "] " + e.Message
}

// MarshalJSON implements the json.Marshaler interface for Entry.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("time", e.Time.Format(TimestampLayout))
	w.Append("kind", e.Kind)
	w.Append("amount", e.Amount)
	w.Optional("rejected", e.Rejected)
	w.Append("message", e.Message)
	return w.MarshalJSON()
}
