package bankaccount

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSession_Replay(t *testing.T) {
	session := NewSession(
		NewOpen(),
		NewOpenWithBalance(M(50)),
		NewWithdraw("ACCT100000", M(200)),
		NewDeposit("ACCT100000", M(1000)),
		NewWithdraw("ACCT100000", M(200)),
		NewBalance("ACCT100000"),
		NewBalance("ACCT100001"),
		NewStatement("ACCT100001"),
	)

	var out bytes.Buffer
	accounts, err := session.Replay(NewRegistry(WithClock(fixedClock(epoch))), &out)
	if err != nil {
		t.Fatalf("Replay() returned an unexpected error: %v", err)
	}

	if len(accounts) != 2 {
		t.Fatalf("Replay() opened %d accounts, want 2", len(accounts))
	}
	if got := len(accounts[0].Entries()); got != 4 {
		t.Errorf("first account has %d entries, want 4", got)
	}

	want := `ACCT100000 800
ACCT100001 50
[2025-10-07 09:30:00.000] Account ACCT100001 created with balance: $50.00
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("Replay() output mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ReplayUnknownAccount(t *testing.T) {
	session := NewSession(
		NewOpen(),
		NewDeposit("ACCT999999", M(1)),
	)
	accounts, err := session.Replay(NewRegistry(), &bytes.Buffer{})
	if !errors.Is(err, ErrUnknownAccount) {
		t.Fatalf("Replay() error = %v, want %v", err, ErrUnknownAccount)
	}
	if len(accounts) != 1 {
		t.Errorf("Replay() returned %d accounts, want the one opened before the failure", len(accounts))
	}
}

func TestSession_ReplayUnknownCommand(t *testing.T) {
	session := NewSession(Command{Command: "transfer"})
	if _, err := session.Replay(NewRegistry(), &bytes.Buffer{}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("Replay() error = %v, want %v", err, ErrUnknownCommand)
	}
}

func TestSession_ReplayUsesRegistrySequence(t *testing.T) {
	// Two replays on the same registry never reuse numbers.
	reg := NewRegistry()
	session := NewSession(NewOpen())
	first, _ := session.Replay(reg, &bytes.Buffer{})
	second, _ := session.Replay(reg, &bytes.Buffer{})
	if first[0].Number() == second[0].Number() {
		t.Errorf("both replays opened %s", first[0].Number())
	}
}
