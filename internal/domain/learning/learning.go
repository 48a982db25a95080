// Package learning holds the read-only context supplied by an external
// learning collaborator. The engine never writes it; failures to load it
// are silently ignored.
package learning

// Context is prior knowledge about similar queries. Hints are free-text
// lines injected into the enhancer prompt.
type Context struct {
	HasPriorLearning bool
	Hints            []string
}

// Empty reports whether the context carries nothing useful.
func (c Context) Empty() bool {
	return !c.HasPriorLearning && len(c.Hints) == 0
}
