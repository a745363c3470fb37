package strategy

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed basic.hcl
var basicHCL []byte

// tableFile is the HCL shape of a strategy chart. Each row lists one action
// per dealer up-card, in the order 2, 3, ..., 10, A.
type tableFile struct {
	Hard  []rowBlock `hcl:"hard,block"`
	Pairs []rowBlock `hcl:"pair,block"`
}

type rowBlock struct {
	Label   string   `hcl:"label,label"`
	Actions []string `hcl:"actions"`
}

const columns = MaxUpValue - MinUpValue + 1

var (
	basicOnce  sync.Once
	basicTable *Table
	basicErr   error
)

// Basic returns the built-in basic strategy chart. It is parsed once per
// process; every caller shares the same immutable table.
func Basic() (*Table, error) {
	basicOnce.Do(func() {
		basicTable, basicErr = Parse(basicHCL, "basic.hcl")
	})
	return basicTable, basicErr
}

// Load reads a strategy chart from an HCL file.
func Load(filename string) (*Table, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy file: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes an HCL strategy chart and validates it.
func Parse(src []byte, filename string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var chart tableFile
	diags = gohcl.DecodeBody(file.Body, nil, &chart)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	entries := make(map[string]Action, (len(chart.Hard)+len(chart.Pairs))*columns)

	for _, row := range chart.Hard {
		total, err := strconv.Atoi(row.Label)
		if err != nil {
			return nil, fmt.Errorf("%s: hard %q: total must be a number", filename, row.Label)
		}
		if err := addRow(entries, row, func(up int) string { return HardKey(total, up) }); err != nil {
			return nil, fmt.Errorf("%s: hard %q: %w", filename, row.Label, err)
		}
	}

	for _, row := range chart.Pairs {
		value, err := pairValue(row.Label)
		if err != nil {
			return nil, fmt.Errorf("%s: pair %q: %w", filename, row.Label, err)
		}
		if err := addRow(entries, row, func(up int) string { return PairKey(value, up) }); err != nil {
			return nil, fmt.Errorf("%s: pair %q: %w", filename, row.Label, err)
		}
	}

	return New(filename, entries)
}

func addRow(entries map[string]Action, row rowBlock, key func(up int) string) error {
	if len(row.Actions) != columns {
		return fmt.Errorf("expected %d actions (dealer 2..A), got %d", columns, len(row.Actions))
	}
	for i, code := range row.Actions {
		action, err := ParseAction(code)
		if err != nil {
			return err
		}
		k := key(MinUpValue + i)
		if _, dup := entries[k]; dup {
			return fmt.Errorf("duplicate situation %s", k)
		}
		entries[k] = action
	}
	return nil
}

func pairValue(label string) (int, error) {
	switch label {
	case "A", "a":
		return 11, nil
	case "T", "t", "J", "j", "Q", "q", "K", "k":
		return 10, nil
	}
	value, err := strconv.Atoi(label)
	if err != nil || value < MinPairValue || value > 10 {
		return 0, fmt.Errorf("pair label must be 2..10 or A")
	}
	return value, nil
}
