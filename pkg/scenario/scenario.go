package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/Asutorufa/dlist/pkg/metrics"
	"go.yaml.in/yaml/v3"
)

type Op string

const (
	OpAddFirst    Op = "addFirst"
	OpAddLast     Op = "addLast"
	OpAddAfter    Op = "addAfter"
	OpAddBefore   Op = "addBefore"
	OpContains    Op = "contains"
	OpCount       Op = "count"
	OpFirst       Op = "first"
	OpLast        Op = "last"
	OpIsBefore    Op = "isBefore"
	OpIsAfter     Op = "isAfter"
	OpRemove      Op = "remove"
	OpRemoveFirst Op = "removeFirst"
	OpRemoveLast  Op = "removeLast"
	OpClear       Op = "clear"
)

// error reasons used by Expect.Error, shared with the failure metrics
const (
	ReasonInvalidArgument = metrics.ReasonInvalidArgument
	ReasonAnchorNotFound  = metrics.ReasonAnchorNotFound
)

type opKind int

const (
	kindPlain opKind = iota
	kindQuery
	kindLookup
)

var ops = map[Op]opKind{
	OpAddFirst:    kindPlain,
	OpAddLast:     kindPlain,
	OpAddAfter:    kindPlain,
	OpAddBefore:   kindPlain,
	OpClear:       kindPlain,
	OpCount:       kindPlain,
	OpContains:    kindQuery,
	OpIsBefore:    kindQuery,
	OpIsAfter:     kindQuery,
	OpFirst:       kindLookup,
	OpLast:        kindLookup,
	OpRemove:      kindLookup,
	OpRemoveFirst: kindLookup,
	OpRemoveLast:  kindLookup,
}

type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one list call. Value is the operand, Anchor the anchor of
// addAfter/addBefore or the second operand of isBefore/isAfter.
// A missing or null operand is passed to the list as nil.
type Step struct {
	Op     Op      `yaml:"op"`
	Value  *string `yaml:"value"`
	Anchor *string `yaml:"anchor"`
	Expect Expect  `yaml:"expect"`
}

type Expect struct {
	Error  string  `yaml:"error"`
	Found  *bool   `yaml:"found"`
	Value  *string `yaml:"value"`
	Result *bool   `yaml:"result"`
	Count  *int    `yaml:"count"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s failed: %w", path, err)
	}

	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("scenario has no steps")
	}

	for i, st := range s.Steps {
		kind, ok := ops[st.Op]
		if !ok {
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}

		switch st.Expect.Error {
		case "", ReasonInvalidArgument, ReasonAnchorNotFound:
		default:
			return fmt.Errorf("step %d: unknown error %q", i, st.Expect.Error)
		}

		if kind != kindLookup && (st.Expect.Found != nil || st.Expect.Value != nil) {
			return fmt.Errorf("step %d: %s does not return a value", i, st.Op)
		}

		if kind != kindQuery && st.Expect.Result != nil {
			return fmt.Errorf("step %d: %s does not return a result", i, st.Op)
		}
	}

	return nil
}
