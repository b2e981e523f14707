package bankaccount

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression over the accounts, exported as
//
//	{"accounts":[{"number":..., "balance":..., "entries":[...]}, ...]}
//
// Numbers come back as float64, as encoding/json decodes them.
func Query(accounts []*Account, path string) (any, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyQuery
	}
	if accounts == nil {
		accounts = []*Account{}
	}
	raw, err := json.Marshal(struct {
		Accounts []*Account `json:"accounts"`
	}{accounts})
	if err != nil {
		return nil, fmt.Errorf("could not export accounts: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("could not export accounts: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
