package listedit

import (
	"fmt"
	"strings"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// Operation names a list edit that Apply can dispatch.
type Operation int

// Supported operations.
const (
	OpFillMissing Operation = iota
	OpDuplicate
	OpCopy
)

func (op Operation) String() string {
	switch op {
	case OpFillMissing:
		return "fill-missing"
	case OpDuplicate:
		return "duplicate"
	case OpCopy:
		return "copy"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// ParseOperation returns the operation with the given name.
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(name) {
	case "fill-missing", "fill":
		return OpFillMissing, nil
	case "duplicate":
		return OpDuplicate, nil
	case "copy":
		return OpCopy, nil
	default:
		return 0, fmt.Errorf("%w: unknown list operation %q", syntax.ErrInvalidArgument, name)
	}
}

// Apply runs op on element index. element is only used by OpFillMissing.
func Apply(list syntax.SeparatedList, index int, op Operation, element syntax.Node) (syntax.SeparatedList, error) {
	switch op {
	case OpFillMissing:
		return FillMissing(list, index, element)
	case OpDuplicate:
		return Duplicate(list, index)
	case OpCopy:
		return Copy(list, index)
	default:
		return list, fmt.Errorf("%w: unknown list operation %s", syntax.ErrInvalidArgument, op)
	}
}

// ApplyAt resolves span to a list and an element inside root, applies op,
// and returns the edited tree. For OpFillMissing span must fall in the slot
// of a missing element; for the other operations it must lie within an
// element. ErrNotApplicable is returned when no such element exists.
func ApplyAt(root syntax.Node, span syntax.Span, op Operation, element syntax.Node) (syntax.Node, error) {
	list, ok := FindList(root, span)
	if !ok {
		return root, fmt.Errorf("no list encloses %s: %w", span, ErrNotApplicable)
	}

	index := IndexAt(list, span)
	if op == OpFillMissing {
		index = FindMissing(list, span)
	}
	if index < 0 {
		return root, fmt.Errorf("no %s target at %s: %w", op, span, ErrNotApplicable)
	}

	edited, err := Apply(list, index, op, element)
	if err != nil {
		return root, err
	}
	return ReplaceList(root, list, edited), nil
}
