package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/triviakit/pkg/syntax"
)

// spanValue is a pflag.Value for "start:end" byte ranges. "start:" runs to
// the end of the input and ":end" starts at 0.
type spanValue struct {
	start, end int
	set        bool
}

func (v *spanValue) String() string {
	if !v.set {
		return ""
	}
	if v.end < 0 {
		return fmt.Sprintf("%d:", v.start)
	}
	return fmt.Sprintf("%d:%d", v.start, v.end)
}

func (v *spanValue) Type() string {
	return "start:end"
}

func (v *spanValue) Set(s string) error {
	startText, endText, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("span %q: expected start:end", s)
	}

	start, end := 0, -1
	var err error
	if startText != "" {
		if start, err = strconv.Atoi(startText); err != nil {
			return fmt.Errorf("span %q: bad start: %w", s, err)
		}
	}
	if endText != "" {
		if end, err = strconv.Atoi(endText); err != nil {
			return fmt.Errorf("span %q: bad end: %w", s, err)
		}
	}
	if start < 0 || (end >= 0 && end < start) {
		return fmt.Errorf("span %q: need 0 <= start <= end", s)
	}

	v.start, v.end, v.set = start, end, true
	return nil
}

// resolve returns the span over a text of the given length, or the whole
// text when no span was given.
func (v *spanValue) resolve(length int) syntax.Span {
	if !v.set {
		return syntax.FromBounds(0, length)
	}
	end := v.end
	if end < 0 {
		end = length
	}
	return syntax.FromBounds(v.start, end)
}
