// Package strategy holds the decision table consulted by the player policy.
//
// A table maps a situation key to an Action. Two key shapes exist:
//
//	"{total},{up}"             hard totals, e.g. "12,6"
//	"{pair},{pair},{up}"       two-card pairs, e.g. "8,8,10" or "A,A,6"
//
// up is the dealer up-card value (2..11, ace counts 11). Pairs are labelled by
// point value, so any two ten-valued cards use the "10,10,*" row.
//
// Tables are validated for completeness when built and never change
// afterwards, so any number of games may read one concurrently.
package strategy

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	MinHardTotal = 5
	MaxHardTotal = 17
	MinUpValue   = 2
	MaxUpValue   = 11
	MinPairValue = 2
	MaxPairValue = 11
)

// MissingEntryError reports a lookup for a situation the table does not cover.
// It signals an incomplete table, not a game condition.
type MissingEntryError struct {
	Table string
	Key   string
}

func (e *MissingEntryError) Error() string {
	return fmt.Sprintf("strategy %q has no move for situation %s", e.Table, e.Key)
}

// IsMissingEntry reports whether err wraps a MissingEntryError.
func IsMissingEntry(err error) bool {
	var missing *MissingEntryError
	return errors.As(err, &missing)
}

// HardKey builds the key for a non-pair hand.
func HardKey(total, up int) string {
	return strconv.Itoa(total) + "," + strconv.Itoa(up)
}

// PairKey builds the key for a two-card pair whose cards are each worth value.
func PairKey(value, up int) string {
	label := PairLabel(value)
	return label + "," + label + "," + strconv.Itoa(up)
}

// PairLabel renders a pair's point value as it appears in keys and files.
func PairLabel(value int) string {
	if value == 11 {
		return "A"
	}
	return strconv.Itoa(value)
}

// Table is an immutable situation → action mapping.
type Table struct {
	name    string
	entries map[string]Action
}

// New builds a table from entries after checking it covers every reachable
// situation. The map is copied.
func New(name string, entries map[string]Action) (*Table, error) {
	t := &Table{
		name:    name,
		entries: make(map[string]Action, len(entries)),
	}
	for k, v := range entries {
		t.entries[k] = v
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Lookup returns the recommended action for key.
func (t *Table) Lookup(key string) (Action, error) {
	action, ok := t.entries[key]
	if !ok {
		return 0, &MissingEntryError{Table: t.name, Key: key}
	}
	return action, nil
}

// Name identifies where the table came from.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) validate() error {
	for total := MinHardTotal; total <= MaxHardTotal; total++ {
		for up := MinUpValue; up <= MaxUpValue; up++ {
			key := HardKey(total, up)
			action, ok := t.entries[key]
			if !ok {
				return fmt.Errorf("incomplete table: %w", &MissingEntryError{Table: t.name, Key: key})
			}
			if action == Split {
				return fmt.Errorf("strategy %q: situation %s recommends split on a non-pair", t.name, key)
			}
		}
	}
	for value := MinPairValue; value <= MaxPairValue; value++ {
		for up := MinUpValue; up <= MaxUpValue; up++ {
			key := PairKey(value, up)
			if _, ok := t.entries[key]; !ok {
				return fmt.Errorf("incomplete table: %w", &MissingEntryError{Table: t.name, Key: key})
			}
		}
	}
	return nil
}
