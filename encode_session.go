package bankaccount

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

var validate = validator.New()

// DecodeSession decodes a session script from a stream of JSONL data, one
// command per line. Empty lines are skipped.
func DecodeSession(r io.Reader) (*Session, error) {
	session := NewSession()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue // Skip empty lines
		}

		var cmd Command
		if err := json.Unmarshal(lineBytes, &cmd); err != nil {
			return nil, fmt.Errorf("line %d: could not decode %q: %w", line, string(lineBytes), err)
		}

		switch cmd.Command {
		case CmdOpen, CmdDeposit, CmdWithdraw, CmdBalance, CmdStatement:
		default:
			return nil, fmt.Errorf("line %d: %w %q", line, ErrUnknownCommand, cmd.Command)
		}

		if err := validateCommand(cmd); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		session.Append(cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return session, nil
}

// validateCommand checks the shape of a command: which fields it needs for
// its type. Amount values are not checked, accounts record invalid amounts.
func validateCommand(cmd Command) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required", "required_if", "required_unless":
			msgs = append(msgs, fmt.Sprintf("%s command requires field %q", cmd.Command, strings.ToLower(e.Field())))
		default:
			msgs = append(msgs, fmt.Sprintf("field %q failed on %q", strings.ToLower(e.Field()), e.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidCommand, strings.Join(msgs, "; "))
}

// EncodeSession writes the session as JSONL, one command per line.
func EncodeSession(w io.Writer, s *Session) error {
	enc := json.NewEncoder(w)
	for _, cmd := range s.Commands() {
		if err := enc.Encode(cmd); err != nil {
			return err
		}
	}
	return nil
}

// EncodeStatement writes the entries of a as JSONL, one entry per line.
func EncodeStatement(w io.Writer, a *Account) error {
	enc := json.NewEncoder(w)
	for _, e := range a.Entries() {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
