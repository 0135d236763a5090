package chain

import (
	"fmt"
	"strings"

	"type-caster/descriptor"
)

// Outcome is what a strategy did with the pair it was given.
type Outcome int

const (
	OutcomePending  Outcome = iota
	OutcomeMatched          // returned its own converter
	OutcomeDeclined         // returned no converter without delegating
	OutcomePassed           // handed the pair on with Cursor.Next
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeDeclined:
		return "declined"
	case OutcomePassed:
		return "passed"
	default:
		return "pending"
	}
}

// Step is one strategy invocation.
type Step struct {
	Depth    int
	Position int
	Strategy string
	From, To descriptor.Descriptor
	Outcome  Outcome
	// Found reports whether the invocation, delegations included, produced a converter.
	Found     bool
	delegated bool
}

func (s Step) String() string {
	found := "no converter"
	if s.Found {
		found = "converter"
	}

	return fmt.Sprintf("%s%s %s -> %s: %s (%s)",
		strings.Repeat("  ", s.Depth), s.Strategy, s.From, s.To, s.Outcome, found)
}

// Trace lists the steps of one resolution in invocation order.
type Trace struct {
	Steps []Step
}

// Matched returns the step whose strategy produced the top-level converter.
func (t Trace) Matched() (Step, bool) {
	for _, s := range t.Steps {
		if s.Depth == 0 && s.Outcome == OutcomeMatched {
			return s, true
		}
	}

	return Step{}, false
}

func (t Trace) String() string {
	lines := make([]string, len(t.Steps))
	for i, s := range t.Steps {
		lines[i] = s.String()
	}

	return strings.Join(lines, "\n")
}

// begin records a step and returns its index, or -1 when not tracing.
func (r *resolution) begin(s Step) int {
	if r.trace == nil {
		return -1
	}

	r.trace.Steps = append(r.trace.Steps, s)

	return len(r.trace.Steps) - 1
}

func (r *resolution) delegate(step int) {
	if r.trace == nil || step < 0 {
		return
	}

	r.trace.Steps[step].delegated = true
}

// end settles the outcome of a step.
func (r *resolution) end(step int, found bool) Step {
	if r.trace == nil || step < 0 {
		return Step{Outcome: outcomeOf(found, false), Found: found}
	}

	s := &r.trace.Steps[step]
	s.Found = found
	s.Outcome = outcomeOf(found, s.delegated)

	return *s
}

func outcomeOf(found, delegated bool) Outcome {
	switch {
	case delegated:
		return OutcomePassed
	case found:
		return OutcomeMatched
	default:
		return OutcomeDeclined
	}
}
