package trace

import (
	"fmt"
	"time"
)

// Stage records what one filter stage did: a human-readable effect plus
// the candidate counts before and after.
type Stage struct {
	Name   string `json:"name"`
	Effect string `json:"effect"`
	Before int    `json:"before"`
	After  int    `json:"after"`
}

// String renders the stage the way it appears in diagnostics, e.g.
// "maxPrice: ≤ $500 USD (1835 AED) (120 → 47)".
func (s Stage) String() string {
	return fmt.Sprintf("%s: %s (%d → %d)", s.Name, s.Effect, s.Before, s.After)
}

// Trace is the explainability record accompanying a filtered result set.
// It is built incrementally while the pipeline runs and read-only once
// returned.
type Trace struct {
	TotalReceived int     `json:"totalReceived"`
	Matching      int     `json:"matching"`
	Excluded      int     `json:"excluded"`
	FilterTimeMs  int64   `json:"filterTimeMs"`
	Stages        []Stage `json:"stages"`
}

// New starts a trace for a candidate set of the given size.
func New(totalReceived int) Trace {
	return Trace{
		TotalReceived: totalReceived,
		Matching:      totalReceived,
		Stages:        []Stage{},
	}
}

// Record appends a stage entry and updates the running match count.
func (t *Trace) Record(name, effect string, before, after int) {
	t.Stages = append(t.Stages, Stage{Name: name, Effect: effect, Before: before, After: after})
	t.Matching = after
	t.Excluded = t.TotalReceived - after
}

// Note appends an informational entry that did not narrow the set.
func (t *Trace) Note(name, effect string) {
	t.Stages = append(t.Stages, Stage{Name: name, Effect: effect, Before: t.Matching, After: t.Matching})
}

// Finish stamps the total filter duration.
func (t *Trace) Finish(elapsed time.Duration) {
	t.FilterTimeMs = elapsed.Milliseconds()
}
